package catalog

import (
	"regexp"

	"backpack-manager/core/inventory"
	"backpack-manager/core/steamapi"

	"github.com/samber/lo"
)

// excluded matches promotional and reskinned weapons that are not part of the reference set.
var excluded = regexp.MustCompile(`Botkiller|Token|Deflector|Festive|Saxxy|Promo`)

// Schema is the decoded item schema.
type Schema struct {
	defs     []inventory.Definition
	byIndex  map[int]int
	uniques  []int
	ordering inventory.Ordering
}

// NewDefinition converts a raw schema entry into an inventory definition.
func NewDefinition(item steamapi.SchemaItem) inventory.Definition {
	return inventory.Definition{
		Index:        item.Defindex,
		InternalName: item.Name,
		BaseName:     item.ItemName,
		ProperName:   item.ProperName,
		Quality:      inventory.Quality(item.ItemQuality),
		Roles:        inventory.NewAffinity(item.UsedByClasses...),
		Slot:         inventory.NewSlot(item.ItemSlot),
	}
}

// NewSchema builds a schema from raw entries, keeping their order.
// A repeated index keeps its first entry.
func NewSchema(items []steamapi.SchemaItem) *Schema {
	s := &Schema{
		defs:     make([]inventory.Definition, 0, len(items)),
		byIndex:  make(map[int]int, len(items)),
		ordering: inventory.DefaultOrdering(),
	}

	for _, item := range items {
		if _, ok := s.byIndex[item.Defindex]; ok {
			continue
		}
		s.byIndex[item.Defindex] = len(s.defs)
		s.defs = append(s.defs, NewDefinition(item))
	}

	s.uniques = referenceSet(s.defs)
	return s
}

func referenceSet(defs []inventory.Definition) []int {
	stock := make(map[string]struct{})
	for _, d := range defs {
		if d.Slot.IsWeapon() && d.Quality == inventory.QualityNormal {
			stock[d.Name()] = struct{}{}
		}
	}

	uniques := lo.Filter(defs, func(d inventory.Definition, _ int) bool {
		if !d.Slot.IsWeapon() || d.Quality != inventory.QualityUnique {
			return false
		}
		if _, ok := stock[d.Name()]; ok {
			return false
		}
		return !excluded.MatchString(d.Name() + " " + d.InternalName)
	})

	return lo.Map(uniques, func(d inventory.Definition, _ int) int { return d.Index })
}

// Lookup returns the definition of a canonical index.
func (s *Schema) Lookup(index int) (inventory.Definition, bool) {
	i, ok := s.byIndex[index]
	if !ok {
		return inventory.Definition{}, false
	}
	return s.defs[i], true
}

// Ordering returns the fixed ordering tables.
func (s *Schema) Ordering() inventory.Ordering {
	return s.ordering
}

// ReferenceSet returns the canonical indices of the uniques in catalog order.
func (s *Schema) ReferenceSet() []int {
	out := make([]int, len(s.uniques))
	copy(out, s.uniques)
	return out
}

// Definitions returns every definition in catalog order.
func (s *Schema) Definitions() []inventory.Definition {
	out := make([]inventory.Definition, len(s.defs))
	copy(out, s.defs)
	return out
}

// Len returns the number of definitions.
func (s *Schema) Len() int {
	return len(s.defs)
}
