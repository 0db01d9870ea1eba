package reconcile

import "backpack-manager/core/inventory"

// stubCatalog is an in-memory catalog keyed by canonical index.
type stubCatalog struct {
	defs      map[int]inventory.Definition
	reference []int
}

func newStubCatalog(defs ...inventory.Definition) *stubCatalog {
	c := &stubCatalog{defs: make(map[int]inventory.Definition)}
	for _, d := range defs {
		c.defs[d.Index] = d
		c.reference = append(c.reference, d.Index)
	}
	return c
}

func (c *stubCatalog) Lookup(index int) (inventory.Definition, bool) {
	d, ok := c.defs[index]
	return d, ok
}

func (c *stubCatalog) Ordering() inventory.Ordering { return inventory.DefaultOrdering() }

func (c *stubCatalog) ReferenceSet() []int { return c.reference }

func weapon(index int, name string, roles ...string) inventory.Definition {
	return inventory.Definition{
		Index:    index,
		BaseName: name,
		Quality:  inventory.QualityUnique,
		Roles:    inventory.NewAffinity(roles...),
		Slot:     inventory.SlotPrimary,
	}
}

// copies returns n tradable Unique instances of def with ids starting at firstID.
func copies(def inventory.Definition, firstID uint64, n int) []inventory.Item {
	out := make([]inventory.Item, n)
	for i := range out {
		out[i] = inventory.NewItem(def, firstID+uint64(i), inventory.QualityUnique, true, 0)
	}
	return out
}

func ids(items []inventory.Item) []uint64 {
	out := make([]uint64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
