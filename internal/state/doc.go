// Package state owns the in-memory data behind every page: the temple
// collection from the most recent fetch (or fallback) and the favorites set.
//
// # Favorites
//
// Favorites are an ordered set of temple ids persisted through
// storage.Local under FavoritesKey as a JSON array:
//
//	temple-favorites = '["angkor-wat","bayon"]'
//
// The set is read once by NewStore. A missing value, or one that is not a
// JSON array of strings, starts an empty set; the corrupt value is replaced
// on the next toggle. ToggleFavorite is the only mutator and writes the full
// set through on every call.
//
// Ids whose temple is no longer in the collection are retained; they are
// filtered out by FavoriteItems rather than dropped.
//
// # Concurrency
//
// Store is guarded by a sync.RWMutex. The collection arrives from a Bubble
// Tea command goroutine while rendering reads from the update loop, so every
// accessor returns copies.
package state
