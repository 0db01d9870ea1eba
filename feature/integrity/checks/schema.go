package checks

import (
	"sort"

	"backpack-manager/core/catalog"
	"backpack-manager/core/inventory"
	"backpack-manager/core/steamapi"

	"github.com/samber/lo"
)

var knownSlots = []inventory.Slot{
	inventory.SlotNone, inventory.SlotPrimary, inventory.SlotSecondary, inventory.SlotMelee,
	inventory.SlotPDA, inventory.SlotPDA2, inventory.SlotHead, inventory.SlotMisc, inventory.SlotAction,
}

// SchemaReport lists what in a snapshot the engine cannot fully interpret.
type SchemaReport struct {
	Items   int `json:"items"`
	Weapons int `json:"weapons"`
	Uniques int `json:"uniques"`

	// DuplicateIndices are indices listed more than once; only the first entry is used.
	DuplicateIndices []int `json:"duplicate_indices"`

	// UnknownQualities are quality values missing from the quality table.
	UnknownQualities []int `json:"unknown_qualities"`

	// UnknownSlots are slot names outside the slot order.
	UnknownSlots []string `json:"unknown_slots"`
}

// Healthy reports whether nothing was flagged and at least one unique weapon exists.
func (r SchemaReport) Healthy() bool {
	return r.Uniques > 0 &&
		len(r.DuplicateIndices) == 0 &&
		len(r.UnknownQualities) == 0 &&
		len(r.UnknownSlots) == 0
}

// CheckSchema inspects the raw schema items of a snapshot.
func CheckSchema(items []steamapi.SchemaItem) SchemaReport {
	schema := catalog.NewSchema(items)
	report := SchemaReport{
		Items:   len(items),
		Uniques: len(schema.ReferenceSet()),
		Weapons: lo.CountBy(schema.Definitions(), func(d inventory.Definition) bool {
			return d.Slot.IsWeapon()
		}),
	}

	seen := make(map[int]int, len(items))
	qualities := make(map[int]struct{})
	slots := make(map[string]struct{})
	for _, item := range items {
		seen[item.Defindex]++
		if !inventory.Quality(item.ItemQuality).Known() {
			qualities[item.ItemQuality] = struct{}{}
		}
		if !lo.Contains(knownSlots, inventory.NewSlot(item.ItemSlot)) {
			slots[item.ItemSlot] = struct{}{}
		}
	}

	for index, n := range seen {
		if n > 1 {
			report.DuplicateIndices = append(report.DuplicateIndices, index)
		}
	}
	sort.Ints(report.DuplicateIndices)

	report.UnknownQualities = lo.Keys(qualities)
	sort.Ints(report.UnknownQualities)
	report.UnknownSlots = lo.Keys(slots)
	sort.Strings(report.UnknownSlots)

	return report
}
