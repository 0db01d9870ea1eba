package reconcile

import "backpack-manager/core/inventory"

// summarize builds the aggregate counts of a finished plan. pool is what is left after
// every enabled stage ran.
func summarize(items *inventory.Set[inventory.Item], plan *Plan, pool *TradePool) PlanSummary {
	summary := PlanSummary{
		Items:           items.Len(),
		DuplicateGroups: len(plan.Groups),
		Leftover:        pool.Len(),
	}

	for _, g := range plan.Groups {
		summary.Surplus += len(g.Surplus)
	}
	for _, a := range plan.Allocations {
		summary.Allocated += len(a.Items)
	}
	if plan.Craft != nil {
		summary.Pairs = len(plan.Craft.Pairs)
	}

	return summary
}

// Allocated returns the allocation for the given account, if any.
func (p *Plan) Allocated(account string) (Allocation, bool) {
	for _, a := range p.Allocations {
		if a.Recipient.Account == account {
			return a, true
		}
	}
	return Allocation{}, false
}

// Tradable returns every surplus instance across all groups, in group order.
func (p *Plan) Tradable() []inventory.Item {
	var out []inventory.Item
	for _, g := range p.Groups {
		out = append(out, g.Surplus...)
	}
	return out
}
