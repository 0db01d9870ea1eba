package reconcile

import "backpack-manager/core/inventory"

// TradePool is the surplus left after reservation, keyed by canonical index.
// It is the only shared mutable state of a run: allocation and crafting both draw from it,
// and an instance drawn once can never be drawn again.
type TradePool struct {
	order   []int
	buckets map[int]*inventory.Set[inventory.Item]
}

// NewTradePool builds a pool from the surplus of each group.
// The groups themselves are not modified.
func NewTradePool(groups []DuplicateGroup) *TradePool {
	p := &TradePool{buckets: make(map[int]*inventory.Set[inventory.Item])}
	for _, g := range groups {
		if len(g.Surplus) == 0 {
			continue
		}
		if _, ok := p.buckets[g.Item.Index]; !ok {
			p.order = append(p.order, g.Item.Index)
			p.buckets[g.Item.Index] = inventory.NewSet[inventory.Item]()
		}
		p.buckets[g.Item.Index].Append(g.Surplus...)
	}
	return p
}

// Has reports whether the pool still holds a copy of the canonical index.
func (p *TradePool) Has(index int) bool {
	return !p.buckets[index].Empty()
}

// Pop removes and returns the last copy of the canonical index.
func (p *TradePool) Pop(index int) (inventory.Item, bool) {
	bucket, ok := p.buckets[index]
	if !ok {
		return inventory.Item{}, false
	}
	return bucket.Pop()
}

// Remove deletes the specific instance from the pool.
// It reports false when the instance is not (or no longer) in the pool.
func (p *TradePool) Remove(item inventory.Item) bool {
	bucket, ok := p.buckets[item.Index]
	if !ok {
		return false
	}
	return inventory.RemoveInstance(bucket, item)
}

// Items returns the remaining instances grouped by index in pool order.
func (p *TradePool) Items() []inventory.Item {
	var out []inventory.Item
	for _, index := range p.order {
		out = append(out, p.buckets[index].Items()...)
	}
	return out
}

// Len returns the number of remaining instances.
func (p *TradePool) Len() int {
	n := 0
	for _, b := range p.buckets {
		n += b.Len()
	}
	return n
}
