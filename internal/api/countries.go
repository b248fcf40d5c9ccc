package api

import "context"

type countryPayload struct {
	Name   string  `json:"name"`
	Region *string `json:"region"`
}

// FetchCountries retrieves the full country collection.
func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	var items []Country
	if err := c.get(ctx, "countries", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchCountry retrieves a single country by identifier.
func (c *Client) FetchCountry(ctx context.Context, id ID) (Country, error) {
	var item Country
	if err := c.get(ctx, "countries/"+id.String(), &item); err != nil {
		return Country{}, err
	}
	return item, nil
}

// CreateCountry submits a new country and returns the server's
// representation. Countries are never updated or deleted from this client;
// there are deliberately no corresponding methods.
func (c *Client) CreateCountry(ctx context.Context, country Country) (Country, error) {
	var item Country
	payload := countryPayload{Name: country.Name, Region: nullString(country.Region)}
	if err := c.post(ctx, "countries", payload, &item); err != nil {
		return Country{}, err
	}
	return item, nil
}
