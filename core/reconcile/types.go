package reconcile

import "backpack-manager/core/inventory"

// DuplicateGroup is every instance of one canonical item found more than once.
type DuplicateGroup struct {
	// Item is the catalog definition shared by the instances.
	Item inventory.Definition `json:"item"`

	// Instances are all copies found, tradable or not, in inventory order.
	Instances []inventory.Item `json:"instances"`

	// Surplus are the tradable copies that may leave the owning pool.
	// It never holds every instance when all of them are tradable.
	Surplus []inventory.Item `json:"surplus"`
}

// Count returns the number of instances sharing the canonical index.
func (g DuplicateGroup) Count() int {
	return len(g.Instances)
}

// DuplicateCount is the presentation view of a group: the item and how many spare copies it has.
type DuplicateCount struct {
	Item  inventory.Definition `json:"item"`
	Count int                  `json:"count"`
}

// Recipient is an account that may receive surplus items.
type Recipient struct {
	// Account is the account identifier.
	Account string `json:"account"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Need lists canonical indices the account lacks, in catalog order.
	Need []int `json:"need"`
}

// Allocation is the set of items planned for one recipient.
type Allocation struct {
	Recipient Recipient        `json:"recipient"`
	Items     []inventory.Item `json:"items"`
}

// CraftPair is two compatible surplus instances consumed together.
// First sorts before Second by display name.
type CraftPair struct {
	First  inventory.Item `json:"first"`
	Second inventory.Item `json:"second"`
}

// CraftResult holds the chosen pairs and the instances left unmatched.
type CraftResult struct {
	Pairs    []CraftPair      `json:"pairs"`
	Leftover []inventory.Item `json:"leftover"`
}

// Currency is a pair count expressed in the three currency tiers.
type Currency struct {
	// Pairs is the number of craft pairs converted.
	Pairs int `json:"pairs"`

	// Value is Pairs expressed in high-tier units as a real number.
	Value float64 `json:"value"`

	High int `json:"high"`
	Mid  int `json:"mid"`
	Low  int `json:"low"`
}

// Options selects which stages of the plan are computed.
type Options struct {
	// Allocate enables distributing surplus to recipients.
	Allocate bool

	// Craft enables the pairing search and currency conversion.
	Craft bool
}

// Plan contains the derived results of one run.
type Plan struct {
	// Groups are the duplicate groups in first-appearance order.
	Groups []DuplicateGroup `json:"groups"`

	// Duplicates are the groups with spare copies, counted before allocation.
	Duplicates []DuplicateCount `json:"duplicates"`

	// Allocations holds one entry per recipient when allocation ran.
	Allocations []Allocation `json:"allocations,omitempty"`

	// Craft holds the pairing result when crafting ran.
	Craft *CraftResult `json:"craft,omitempty"`

	// Value is the currency breakdown of Craft.
	Value *Currency `json:"value,omitempty"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Items is the number of instances considered.
	Items int `json:"items"`

	// DuplicateGroups counts canonical items held more than once.
	DuplicateGroups int `json:"duplicate_groups"`

	// Surplus counts instances available after reservation.
	Surplus int `json:"surplus"`

	// Allocated counts instances planned for recipients.
	Allocated int `json:"allocated"`

	// Pairs counts craft pairs.
	Pairs int `json:"pairs"`

	// Leftover counts surplus instances left after allocation and crafting.
	Leftover int `json:"leftover"`
}
