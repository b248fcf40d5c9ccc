package api

// Recipe mirrors the recipes resource. Optional references to the owning
// person and country of origin arrive as identifiers or null.
type Recipe struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Servings    *int      `json:"servings"`
	PrepTime    *Duration `json:"prep_time"`
	CookTime    *Duration `json:"cook_time"`
	TotalTime   *Duration `json:"total_time"`
	MealType    string    `json:"meal_type"`
	CuisineType string    `json:"cuisine_type"`
	Difficulty  string    `json:"difficulty"`
	SourceName  string    `json:"source_name"`
	SourceURL   string    `json:"source_url"`
	Rating      *float64  `json:"rating"`
	TimesCooked int       `json:"times_cooked"`
	Person      ID        `json:"person"`
	Country     ID        `json:"country"`
}

// Person mirrors the people resource. Dates use YYYY-MM-DD strings.
type Person struct {
	ID               ID     `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	BirthDate        string `json:"birth_date"`
	DeathDate        string `json:"death_date"`
	FamilySearchID   string `json:"familysearch_id"`
	AncestryTreeID   string `json:"ancestry_tree_id"`
	AncestryPersonID string `json:"ancestry_person_id"`
	Notes            string `json:"notes"`
}

// DisplayName joins the person's names for presentation.
func (p Person) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Country mirrors the countries resource.
type Country struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Ingredient mirrors the ingredients resource.
type Ingredient struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Notes string `json:"notes"`
}

// RecipeIngredient joins a recipe to an ingredient with an optional quantity.
type RecipeIngredient struct {
	ID         ID       `json:"id"`
	Recipe     ID       `json:"recipe"`
	Ingredient ID       `json:"ingredient"`
	Quantity   *float64 `json:"quantity"`
}
