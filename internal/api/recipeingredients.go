package api

import "context"

type recipeIngredientPayload struct {
	Recipe     ID       `json:"recipe"`
	Ingredient ID       `json:"ingredient"`
	Quantity   *float64 `json:"quantity"`
}

func formatRecipeIngredient(ri RecipeIngredient) recipeIngredientPayload {
	return recipeIngredientPayload{
		Recipe:     ri.Recipe,
		Ingredient: ri.Ingredient,
		Quantity:   ri.Quantity,
	}
}

// FetchRecipeIngredients retrieves the full recipe-ingredient collection.
func (c *Client) FetchRecipeIngredients(ctx context.Context) ([]RecipeIngredient, error) {
	var items []RecipeIngredient
	if err := c.get(ctx, "recipe-ingredients", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchRecipeIngredient retrieves a single recipe-ingredient link by
// identifier.
func (c *Client) FetchRecipeIngredient(ctx context.Context, id ID) (RecipeIngredient, error) {
	var item RecipeIngredient
	if err := c.get(ctx, "recipe-ingredients/"+id.String(), &item); err != nil {
		return RecipeIngredient{}, err
	}
	return item, nil
}

// CreateRecipeIngredient submits a new recipe-ingredient link and returns the
// server's representation.
func (c *Client) CreateRecipeIngredient(ctx context.Context, ri RecipeIngredient) (RecipeIngredient, error) {
	var item RecipeIngredient
	if err := c.post(ctx, "recipe-ingredients", formatRecipeIngredient(ri), &item); err != nil {
		return RecipeIngredient{}, err
	}
	return item, nil
}

// UpdateRecipeIngredient replaces a recipe-ingredient link and returns the
// server's representation.
func (c *Client) UpdateRecipeIngredient(ctx context.Context, id ID, ri RecipeIngredient) (RecipeIngredient, error) {
	var item RecipeIngredient
	if err := c.put(ctx, "recipe-ingredients/"+id.String(), formatRecipeIngredient(ri), &item); err != nil {
		return RecipeIngredient{}, err
	}
	return item, nil
}

// DeleteRecipeIngredient removes a recipe-ingredient link.
func (c *Client) DeleteRecipeIngredient(ctx context.Context, id ID) error {
	return c.delete(ctx, "recipe-ingredients/"+id.String())
}

// FetchRecipeIngredientsByRecipe returns the links belonging to one recipe.
// The backend has no filter endpoint, so the full collection is fetched and
// filtered here. Fine while the dataset stays small.
func (c *Client) FetchRecipeIngredientsByRecipe(ctx context.Context, recipeID ID) ([]RecipeIngredient, error) {
	all, err := c.FetchRecipeIngredients(ctx)
	if err != nil {
		return nil, err
	}
	var matched []RecipeIngredient
	for _, ri := range all {
		if ri.Recipe == recipeID {
			matched = append(matched, ri)
		}
	}
	return matched, nil
}
