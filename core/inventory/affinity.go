package inventory

import (
	"sort"
	"strings"
)

// Role is a player class an item can be used by.
type Role string

const (
	// RoleAll is the sentinel for items usable by every class.
	RoleAll      Role = "All"
	RoleScout    Role = "Scout"
	RoleSoldier  Role = "Soldier"
	RolePyro     Role = "Pyro"
	RoleDemoman  Role = "Demoman"
	RoleHeavy    Role = "Heavy"
	RoleEngineer Role = "Engineer"
	RoleMedic    Role = "Medic"
	RoleSniper   Role = "Sniper"
	RoleSpy      Role = "Spy"
)

// Affinity is the set of roles an item is usable by. It is kept sorted and free
// of duplicates so that equal sets compare equal through Key.
type Affinity []Role

// NewAffinity builds an Affinity from raw class names. An empty input yields {All}.
func NewAffinity(roles ...string) Affinity {
	if len(roles) == 0 {
		return Affinity{RoleAll}
	}
	seen := make(map[Role]struct{}, len(roles))
	out := make(Affinity, 0, len(roles))
	for _, r := range roles {
		role := Role(r)
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a stable string form used to collapse equal affinity sets.
func (a Affinity) Key() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

// Has reports whether the role is a member of the set.
func (a Affinity) Has(role Role) bool {
	for _, r := range a {
		if r == role {
			return true
		}
	}
	return false
}

// Intersects reports whether two affinity sets share a role.
// The All sentinel intersects everything.
func (a Affinity) Intersects(b Affinity) bool {
	if a.Has(RoleAll) || b.Has(RoleAll) {
		return len(a) > 0 && len(b) > 0
	}
	for _, r := range a {
		if b.Has(r) {
			return true
		}
	}
	return false
}
