package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// ResourceClient defines the subset of API operations the store layer needs.
// This interface is implemented by *Client and can be used for testing.
type ResourceClient interface {
	FetchRecipes(ctx context.Context) ([]Recipe, error)
	FetchRecipe(ctx context.Context, id ID) (Recipe, error)
	CreateRecipe(ctx context.Context, r Recipe) (Recipe, error)
	UpdateRecipe(ctx context.Context, id ID, r Recipe) (Recipe, error)
	DeleteRecipe(ctx context.Context, id ID) error

	FetchPeople(ctx context.Context) ([]Person, error)
	FetchPerson(ctx context.Context, id ID) (Person, error)
	CreatePerson(ctx context.Context, p Person) (Person, error)
	UpdatePerson(ctx context.Context, id ID, p Person) (Person, error)
	DeletePerson(ctx context.Context, id ID) error

	FetchCountries(ctx context.Context) ([]Country, error)
	FetchCountry(ctx context.Context, id ID) (Country, error)
	CreateCountry(ctx context.Context, c Country) (Country, error)

	FetchIngredients(ctx context.Context) ([]Ingredient, error)
	FetchIngredient(ctx context.Context, id ID) (Ingredient, error)
	CreateIngredient(ctx context.Context, i Ingredient) (Ingredient, error)
	UpdateIngredient(ctx context.Context, id ID, i Ingredient) (Ingredient, error)
	DeleteIngredient(ctx context.Context, id ID) error

	FetchRecipeIngredients(ctx context.Context) ([]RecipeIngredient, error)
	FetchRecipeIngredient(ctx context.Context, id ID) (RecipeIngredient, error)
	CreateRecipeIngredient(ctx context.Context, ri RecipeIngredient) (RecipeIngredient, error)
	UpdateRecipeIngredient(ctx context.Context, id ID, ri RecipeIngredient) (RecipeIngredient, error)
	DeleteRecipeIngredient(ctx context.Context, id ID) error
	FetchRecipeIngredientsByRecipe(ctx context.Context, recipeID ID) ([]RecipeIngredient, error)
}

// Ensure Client implements ResourceClient at compile time.
var _ ResourceClient = (*Client)(nil)

// Client talks to the family history REST API.
type Client struct {
	baseURL   *url.URL
	http      *retryablehttp.Client
	userAgent string
}

const defaultUserAgent = "hearth/0.1"

// NewClient builds a Client for the given API base URL (including any path
// prefix such as /api). The scheme defaults to http when omitted.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	rc := retryablehttp.NewClient()
	// Every call is a single attempt; the caller decides what a failure means.
	// The passthrough handler hands back 5xx responses instead of replacing
	// them with a gave-up error, so the body is still readable.
	rc.RetryMax = 0
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	return &Client{
		baseURL:   base,
		http:      rc,
		userAgent: defaultUserAgent,
	}, nil
}

// Error describes a failed API response. The message is extracted from the
// response body when possible.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, dest)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, dest any) error {
	return c.do(ctx, http.MethodPost, endpoint, payload, dest)
}

func (c *Client) put(ctx context.Context, endpoint string, payload, dest any) error {
	return c.do(ctx, http.MethodPut, endpoint, payload, dest)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.endpointURL(endpoint), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// endpointURL joins the base URL with an endpoint. The backend requires a
// trailing slash on every endpoint.
func (c *Client) endpointURL(endpoint string) string {
	clean := strings.Trim(endpoint, "/")
	base := strings.TrimRight(c.baseURL.String(), "/")
	return base + "/" + clean + "/"
}

// responseError extracts a human-readable message from a failed response:
// a JSON body's "detail" or "message" field, else the raw body text, else a
// generic message carrying the status code.
func responseError(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("http error: status %d", resp.StatusCode),
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			apiErr.Message = parsed.Detail
			return apiErr
		case parsed.Message != "":
			apiErr.Message = parsed.Message
			return apiErr
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
