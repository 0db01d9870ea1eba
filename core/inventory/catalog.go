package inventory

// Catalog is the read-only view of the item catalog the engine depends on.
type Catalog interface {
	// Lookup returns the definition of a canonical index.
	Lookup(index int) (Definition, bool)
	// Ordering returns the fixed ordering tables used for deterministic sorting.
	Ordering() Ordering
	// ReferenceSet returns the canonical indices every account is expected to own,
	// in catalog order.
	ReferenceSet() []int
}

// Ordering holds the fixed sort tables of the catalog.
type Ordering struct {
	// Classes orders roles for grouping items by their lowest class.
	Classes []Role
	// Roles orders roles for class-by-class reports.
	Roles []Role
	// Slots orders slot categories.
	Slots []Slot
}

// DefaultOrdering returns fresh copies of the game's ordering tables.
func DefaultOrdering() Ordering {
	return Ordering{
		Classes: []Role{
			RoleAll, RoleScout, RoleSniper, RoleSoldier, RoleDemoman,
			RoleMedic, RoleHeavy, RolePyro, RoleSpy, RoleEngineer,
		},
		Roles: []Role{
			RoleScout, RoleSoldier, RolePyro, RoleDemoman, RoleHeavy,
			RoleEngineer, RoleMedic, RoleSniper, RoleSpy,
		},
		Slots: []Slot{
			SlotNone, SlotPrimary, SlotSecondary, SlotMelee, SlotPDA,
			SlotPDA2, SlotHead, SlotMisc, SlotAction,
		},
	}
}

// ClassRank returns the position of r in the class table; unknown roles sort last.
func (o Ordering) ClassRank(r Role) int {
	return rank(o.Classes, r)
}

// RoleRank returns the position of r in the role table; unknown roles sort last.
func (o Ordering) RoleRank(r Role) int {
	return rank(o.Roles, r)
}

// SlotRank returns the position of s in the slot table; unknown slots sort last.
func (o Ordering) SlotRank(s Slot) int {
	return rank(o.Slots, s)
}

// MinClass returns the lowest-ranked role of an affinity set.
func (o Ordering) MinClass(a Affinity) Role {
	best := RoleAll
	bestRank := -1
	for _, r := range a {
		if rk := o.ClassRank(r); bestRank < 0 || rk < bestRank {
			best, bestRank = r, rk
		}
	}
	return best
}

func rank[T comparable](table []T, v T) int {
	for i, t := range table {
		if t == v {
			return i
		}
	}
	return len(table)
}
