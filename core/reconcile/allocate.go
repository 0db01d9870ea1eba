package reconcile

import (
	"backpack-manager/core/inventory"

	"github.com/samber/lo"
)

// Allocate distributes surplus to recipients. Recipients are served in slice order, and
// each one receives at most one copy of every canonical index in its need set, taken from
// the pool at assignment time. Earlier recipients therefore win items in short supply.
// Items nobody needs stay in the pool.
func Allocate(pool *TradePool, recipients []Recipient) []Allocation {
	allocations := make([]Allocation, 0, len(recipients))

	for _, r := range recipients {
		given := make([]inventory.Item, 0)
		for _, index := range lo.Uniq(r.Need) {
			if item, ok := pool.Pop(index); ok {
				given = append(given, item)
			}
		}
		allocations = append(allocations, Allocation{Recipient: r, Items: given})
	}

	return allocations
}
