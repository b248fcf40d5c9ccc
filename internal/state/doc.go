// Package state provides the in-memory resource store for the Hearth client.
//
// # Overview
//
// The Store is the sole owner of the "current" value of every resource
// collection during a session: recipes, people, countries, ingredients, and
// recipe-ingredient links. The UI reads snapshots; all mutation flows through
// the Store's operation methods, each of which wraps one remote API call.
//
// # Operation lifecycle
//
// Every operation moves its collection through three states:
//
//	pending:   Loading=true, Err cleared
//	fulfilled: Loading=false, Items mutated per the operation's semantics
//	rejected:  Loading=false, Err=message, Items untouched
//
// Mutation semantics on fulfillment:
//
//   - fetch-all replaces Items wholesale with the server response, in
//     response order
//   - create appends the returned entity
//   - update replaces the entity whose identifier matches; no-op if absent
//   - delete removes the entity whose identifier matches
//   - mark-cooked reads the recipe from the server, writes back the count
//     plus one, then applies update semantics to the result
//
// Identifier comparison always happens in canonical string form (api.ID),
// because the form layer and the API do not agree on identifier types.
//
// # Persistence sink
//
// A Sink, when configured, receives a full snapshot after every state
// transition, pending and rejected included. The sink is how the local cache
// stays a passive mirror of memory: it is unconditional, side-effect-only,
// and can never fail an operation. Note that nothing serializes sink calls
// across overlapping operations, so a slower earlier action can persist over
// a faster later one; each slot simply reflects the in-memory value at the
// time of the last transition. This matches the source system's behavior and
// is acceptable because the in-memory store, not the cache, is authoritative.
//
// # Concurrency
//
// A single RWMutex guards the collections. The lock is held only while
// copying state, never across network calls. Snapshots are deep copies, so
// the UI can hold one across renders without racing the next operation.
//
// # Intentional asymmetries
//
// Countries are create-only and ingredients/links follow the full CRUD set,
// mirroring the backend surface. Deleting a recipe does not implicitly delete
// its links; callers pair DeleteRecipe with DeleteRecipeIngredientsByRecipe.
package state
