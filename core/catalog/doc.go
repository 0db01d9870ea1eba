// Package catalog owns the item schema: decoding it into inventory definitions, deriving the
// reference set every account is expected to own, and caching it between runs.
//
// # Schema
//
// Schema implements inventory.Catalog. Lookups are by canonical index, and ReferenceSet returns
// the "uniques": Unique-quality weapons that have no stock (Normal-quality) counterpart of the
// same name, minus promotional and festive variants.
//
// # Stores
//
// Fetching the schema is slow, so snapshots are cached in one of three backends:
//
//   - FileStore: a JSON file on disk (the default, schema.json).
//   - ObjectStore: an object in the configured bucket.
//   - DBStore: the catalog_items table.
//
// # Loader
//
// Loader keeps the decoded Schema in memory. On a miss or once the snapshot is older than the
// configured TTL it fetches a fresh schema from the Steam API and writes it back to the store.
// Concurrent loads share a single fetch.
package catalog
