package api

import "context"

type personPayload struct {
	FirstName        string  `json:"first_name"`
	LastName         *string `json:"last_name"`
	BirthDate        *string `json:"birth_date"`
	DeathDate        *string `json:"death_date"`
	FamilySearchID   *string `json:"familysearch_id"`
	AncestryTreeID   *string `json:"ancestry_tree_id"`
	AncestryPersonID *string `json:"ancestry_person_id"`
	Notes            *string `json:"notes"`
}

func formatPerson(p Person) personPayload {
	return personPayload{
		FirstName:        p.FirstName,
		LastName:         nullString(p.LastName),
		BirthDate:        nullString(p.BirthDate),
		DeathDate:        nullString(p.DeathDate),
		FamilySearchID:   nullString(p.FamilySearchID),
		AncestryTreeID:   nullString(p.AncestryTreeID),
		AncestryPersonID: nullString(p.AncestryPersonID),
		Notes:            nullString(p.Notes),
	}
}

// FetchPeople retrieves the full people collection.
func (c *Client) FetchPeople(ctx context.Context) ([]Person, error) {
	var items []Person
	if err := c.get(ctx, "people", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchPerson retrieves a single person by identifier.
func (c *Client) FetchPerson(ctx context.Context, id ID) (Person, error) {
	var item Person
	if err := c.get(ctx, "people/"+id.String(), &item); err != nil {
		return Person{}, err
	}
	return item, nil
}

// CreatePerson submits a new person and returns the server's representation.
func (c *Client) CreatePerson(ctx context.Context, p Person) (Person, error) {
	var item Person
	if err := c.post(ctx, "people", formatPerson(p), &item); err != nil {
		return Person{}, err
	}
	return item, nil
}

// UpdatePerson replaces a person and returns the server's representation.
func (c *Client) UpdatePerson(ctx context.Context, id ID, p Person) (Person, error) {
	var item Person
	if err := c.put(ctx, "people/"+id.String(), formatPerson(p), &item); err != nil {
		return Person{}, err
	}
	return item, nil
}

// DeletePerson removes a person.
func (c *Client) DeletePerson(ctx context.Context, id ID) error {
	return c.delete(ctx, "people/"+id.String())
}
