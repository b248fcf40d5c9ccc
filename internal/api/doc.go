// Package api provides an HTTP client for the family history REST API.
//
// # Overview
//
// The client covers five resources: recipes, people, countries, ingredients,
// and recipe-ingredient links. Every operation issues exactly one request and
// either returns the decoded server representation or an error. There is no
// retry loop and no caching here; the state layer owns both concerns.
//
// # Resources
//
// Each resource exposes fetch-all, fetch-one, create, update, and delete,
// with two deliberate gaps that mirror the backend surface:
//
//   - Countries support only fetch and create; there is no update or delete.
//   - Recipe-ingredient links have no server-side by-recipe filter, so
//     FetchRecipeIngredientsByRecipe fetches the whole collection and filters
//     locally.
//
// # Wire conventions
//
//   - Bodies are JSON with snake_case field names.
//   - Endpoints carry a trailing slash, which the backend requires.
//   - Optional fields in create/update payloads are explicit nulls, never
//     omitted.
//   - Durations are integer seconds on the wire; the Duration type converts
//     to and from H:MM:SS clock strings and whole minutes for editing.
//   - Identifiers arrive inconsistently as numbers or strings. The ID type
//     normalizes them to a canonical string at the boundary and marshals
//     numeric values back as numbers.
//
// # Error handling
//
// A non-2xx response becomes an *Error whose message is taken from the JSON
// body's "detail" or "message" field, falling back to the raw body text,
// falling back to a generic message carrying the status code. Transport
// failures are wrapped with context about what failed.
package api
