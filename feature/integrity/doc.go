// Package integrity checks the cached item catalog.
//
// The cache is inspected without calling the Steam API unless a fix is requested.
//
// # Checks Provided
//
//   - Cache: whether a snapshot is stored, how many items it holds and whether it
//     is older than the configured TTL.
//   - Schema: indices listed twice, quality values and slot names the engine does
//     not know, and whether any unique weapon remains to build need lists from.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks (supports ?fix=true).
//   - GET /integrity/cache : Runs the cache check only.
package integrity
