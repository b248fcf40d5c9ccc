package api

import "context"

type ingredientPayload struct {
	Name  string  `json:"name"`
	Unit  *string `json:"unit"`
	Notes *string `json:"notes"`
}

func formatIngredient(i Ingredient) ingredientPayload {
	return ingredientPayload{
		Name:  i.Name,
		Unit:  nullString(i.Unit),
		Notes: nullString(i.Notes),
	}
}

// FetchIngredients retrieves the full ingredient collection.
func (c *Client) FetchIngredients(ctx context.Context) ([]Ingredient, error) {
	var items []Ingredient
	if err := c.get(ctx, "ingredients", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchIngredient retrieves a single ingredient by identifier.
func (c *Client) FetchIngredient(ctx context.Context, id ID) (Ingredient, error) {
	var item Ingredient
	if err := c.get(ctx, "ingredients/"+id.String(), &item); err != nil {
		return Ingredient{}, err
	}
	return item, nil
}

// CreateIngredient submits a new ingredient and returns the server's
// representation.
func (c *Client) CreateIngredient(ctx context.Context, i Ingredient) (Ingredient, error) {
	var item Ingredient
	if err := c.post(ctx, "ingredients", formatIngredient(i), &item); err != nil {
		return Ingredient{}, err
	}
	return item, nil
}

// UpdateIngredient replaces an ingredient and returns the server's
// representation.
func (c *Client) UpdateIngredient(ctx context.Context, id ID, i Ingredient) (Ingredient, error) {
	var item Ingredient
	if err := c.put(ctx, "ingredients/"+id.String(), formatIngredient(i), &item); err != nil {
		return Ingredient{}, err
	}
	return item, nil
}

// DeleteIngredient removes an ingredient.
func (c *Client) DeleteIngredient(ctx context.Context, id ID) error {
	return c.delete(ctx, "ingredients/"+id.String())
}
