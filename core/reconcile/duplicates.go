package reconcile

import (
	"errors"
	"fmt"

	"backpack-manager/core/inventory"

	"github.com/samber/lo"
)

// ErrCatalogInconsistent means an item references a canonical index the catalog does not know.
// It cannot happen when inventories are built from the same catalog and is not recoverable.
var ErrCatalogInconsistent = errors.New("catalog inconsistent")

// DetectDuplicates groups items by canonical index and returns the groups holding more
// than one instance, in order of first appearance.
//
// For each group, Surplus keeps the tradable instances. If every instance is tradable the
// last one is withheld, so at most Count-1 instances may ever leave the owner.
func DetectDuplicates(items *inventory.Set[inventory.Item], catalog inventory.Catalog) ([]DuplicateGroup, error) {
	var groups []DuplicateGroup

	for _, g := range inventory.GroupBy(items, func(i inventory.Item) int { return i.Index }) {
		if g.Items.Len() < 2 {
			continue
		}

		def, ok := catalog.Lookup(g.Key)
		if !ok {
			return nil, fmt.Errorf("%w: index %d missing", ErrCatalogInconsistent, g.Key)
		}

		instances := g.Items.Items()
		tradable := lo.Filter(instances, func(i inventory.Item, _ int) bool { return i.WillTrade() })
		if len(tradable) == len(instances) {
			// save at least one
			tradable = tradable[:len(tradable)-1]
		}

		groups = append(groups, DuplicateGroup{
			Item:      def,
			Instances: instances,
			Surplus:   tradable,
		})
	}

	return groups, nil
}

// countDuplicates returns the presentation counts of groups that have spare copies.
func countDuplicates(groups []DuplicateGroup) []DuplicateCount {
	counts := make([]DuplicateCount, 0, len(groups))
	for _, g := range groups {
		if len(g.Surplus) == 0 {
			continue
		}
		counts = append(counts, DuplicateCount{Item: g.Item, Count: len(g.Surplus)})
	}
	return counts
}
