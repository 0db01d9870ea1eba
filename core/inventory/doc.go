// Package inventory models game items and the collections they live in.
//
// An item has two identities that must never be conflated:
//   - Canonical identity (Index): shared by every instance of the same catalog entry.
//     Duplicate grouping and need sets work on this.
//   - Instance identity (ID): unique to one physical copy. Removing a specific copy from a
//     pool always matches on this.
//
// # Components
//
//   - Quality, Slot, Role and Affinity: the enumerations an item is described by.
//   - Definition: immutable catalog metadata for a canonical index.
//   - Item: one owned instance, combining a Definition with per-instance state.
//   - Set: a generic ordered multiset with grouping, filtering and removal helpers.
//   - Catalog and Ordering: the contract the reconcile engine consumes from the catalog.
//
// # Usage
//
//	weapons := inventory.Weapons(inv.Items)
//	groups := inventory.GroupBy(weapons, func(i inventory.Item) int { return i.Index })
package inventory
