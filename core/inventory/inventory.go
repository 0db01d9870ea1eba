package inventory

import "sort"

// Inventory is the set of item instances owned by one account.
type Inventory struct {
	// Owner is the account identifier.
	Owner string
	// Items are the owned instances in backpack order.
	Items *Set[Item]
}

// Owns reports whether the inventory holds any copy of the canonical index.
func (inv Inventory) Owns(index int) bool {
	return inv.Items.Any(func(i Item) bool { return i.Index == index })
}

// Combine concatenates the items of several inventories in argument order.
func Combine(invs ...Inventory) *Set[Item] {
	out := NewSet[Item]()
	for _, inv := range invs {
		out.Append(inv.Items.Items()...)
	}
	return out
}

// GroupByMinClass buckets items by the lowest-ordered class they are usable by,
// returning the buckets sorted by the class table.
func GroupByMinClass(s *Set[Item], o Ordering) []Group[Role, Item] {
	groups := GroupBy(s, func(i Item) Role { return o.MinClass(i.Roles) })
	sort.SliceStable(groups, func(i, j int) bool {
		return o.ClassRank(groups[i].Key) < o.ClassRank(groups[j].Key)
	})
	return groups
}
