package api

import "context"

// recipePayload is the wire form of a recipe for create and update calls.
// Optional fields are sent as explicit nulls rather than omitted, and
// durations travel as integer seconds.
type recipePayload struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Servings    *int      `json:"servings"`
	PrepTime    *Duration `json:"prep_time"`
	CookTime    *Duration `json:"cook_time"`
	TotalTime   *Duration `json:"total_time"`
	MealType    *string   `json:"meal_type"`
	CuisineType *string   `json:"cuisine_type"`
	Difficulty  *string   `json:"difficulty"`
	SourceName  *string   `json:"source_name"`
	SourceURL   *string   `json:"source_url"`
	Rating      *float64  `json:"rating"`
	TimesCooked int       `json:"times_cooked"`
	Person      *ID       `json:"person"`
	Country     *ID       `json:"country"`
}

func formatRecipe(r Recipe) recipePayload {
	return recipePayload{
		Title:       r.Title,
		Description: nullString(r.Description),
		Servings:    r.Servings,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime,
		MealType:    nullString(r.MealType),
		CuisineType: nullString(r.CuisineType),
		Difficulty:  nullString(r.Difficulty),
		SourceName:  nullString(r.SourceName),
		SourceURL:   nullString(r.SourceURL),
		Rating:      r.Rating,
		TimesCooked: r.TimesCooked,
		Person:      nullID(r.Person),
		Country:     nullID(r.Country),
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullID(id ID) *ID {
	if !id.Valid() {
		return nil
	}
	return &id
}

// FetchRecipes retrieves the full recipe collection.
func (c *Client) FetchRecipes(ctx context.Context) ([]Recipe, error) {
	var items []Recipe
	if err := c.get(ctx, "recipes", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchRecipe retrieves a single recipe by identifier.
func (c *Client) FetchRecipe(ctx context.Context, id ID) (Recipe, error) {
	var item Recipe
	if err := c.get(ctx, "recipes/"+id.String(), &item); err != nil {
		return Recipe{}, err
	}
	return item, nil
}

// CreateRecipe submits a new recipe and returns the server's representation.
func (c *Client) CreateRecipe(ctx context.Context, r Recipe) (Recipe, error) {
	var item Recipe
	if err := c.post(ctx, "recipes", formatRecipe(r), &item); err != nil {
		return Recipe{}, err
	}
	return item, nil
}

// UpdateRecipe replaces a recipe and returns the server's representation.
func (c *Client) UpdateRecipe(ctx context.Context, id ID, r Recipe) (Recipe, error) {
	var item Recipe
	if err := c.put(ctx, "recipes/"+id.String(), formatRecipe(r), &item); err != nil {
		return Recipe{}, err
	}
	return item, nil
}

// DeleteRecipe removes a recipe. Cascading removal of its ingredient links is
// the caller's responsibility; the server does not enforce it.
func (c *Client) DeleteRecipe(ctx context.Context, id ID) error {
	return c.delete(ctx, "recipes/"+id.String())
}
