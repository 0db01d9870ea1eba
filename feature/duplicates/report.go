package duplicates

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"backpack-manager/core/inventory"
	"backpack-manager/core/reconcile"

	"github.com/shopspring/decimal"
)

const tab = "    "

var slotTitles = map[inventory.Slot]string{
	inventory.SlotPrimary:   "Primary",
	inventory.SlotSecondary: "Secondary",
	inventory.SlotMelee:     "Melee",
	inventory.SlotPDA:       "PDA",
	inventory.SlotPDA2:      "Watch",
}

// Title boxes s between two rules of stars.
func Title(s string) string {
	line := "|| " + s + " ||"
	stars := strings.Repeat("*", len(line))
	return stars + "\n" + line + "\n" + stars
}

// Underline puts a rule of und under s, as long as s without surrounding whitespace.
func Underline(s, und string) string {
	return s + "\n" + strings.Repeat(und, len(strings.TrimSpace(s)))
}

// PrependLines prefixes every line of s.
func PrependLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// FormatValue renders a currency value with two decimals.
func FormatValue(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}

// FormatBreakdown lists the non-zero tiers, highest first.
func FormatBreakdown(c reconcile.Currency) string {
	var parts []string
	for _, tier := range []struct {
		n    int
		unit string
	}{{c.High, "ref"}, {c.Mid, "rec"}, {c.Low, "scrap"}} {
		if tier.n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", tier.n, tier.unit))
		}
	}
	return strings.Join(parts, ", ")
}

// WriteText renders the report the way the command line prints it.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	if r.list {
		r.writeLists(&b)
	}
	if len(r.Plan.Allocations) > 0 {
		r.writeAllocations(&b)
	}
	if r.scrap && r.Plan.Craft != nil {
		r.writeCraft(&b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) writeLists(b *strings.Builder) {
	b.WriteString("\n" + Title("Duplicate Lists") + "\n")

	counts := make([]reconcile.DuplicateCount, len(r.Plan.Duplicates))
	copy(counts, r.Plan.Duplicates)
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Item.BaseName < counts[j].Item.BaseName })

	total, widest := 0, 0
	for _, c := range counts {
		total += c.Count
		widest = max(widest, c.Count)
	}

	b.WriteString(Underline(fmt.Sprintf("\nDuplicates by name [%d]", total), "=") + "\n")
	space := widest*3 + 1
	for _, c := range counts {
		fmt.Fprintf(b, "%s%s| %s\n", strings.Repeat("|_|", c.Count), strings.Repeat(" ", space-c.Count*3), c.Item.Name())
	}

	b.WriteString(Underline(fmt.Sprintf("\nDuplicates by class [%d]", total), "=") + "\n")
	for _, group := range r.byRole(counts) {
		b.WriteString(PrependLines(Underline(string(group.role), "="), tab) + "\n")
		for _, slot := range group.slots {
			b.WriteString(PrependLines(Underline(slotTitle(slot.slot), "-"), tab+tab) + "\n")
			for _, c := range slot.counts {
				fmt.Fprintf(b, "%s%d| %s\n", tab+tab+tab, c.Count, c.Item.Name())
			}
		}
	}
}

func (r *Report) writeAllocations(b *strings.Builder) {
	for _, a := range r.Plan.Allocations {
		b.WriteString("\n" + Underline(fmt.Sprintf("%s [%d]", a.Recipient.Name, len(a.Items)), "=") + "\n")

		for _, group := range inventory.GroupByMinClass(inventory.NewSet(a.Items...), r.ordering) {
			b.WriteString(PrependLines(Underline(string(group.Key), "="), "\t") + "\n")
			inventory.SortByName(group.Items).Each(func(i inventory.Item) {
				b.WriteString("\t\t" + i.Name() + "\n")
			})
		}
	}
}

func (r *Report) writeCraft(b *strings.Builder) {
	b.WriteString("\n" + Title("Calculating scrap") + "\n")

	craft := r.Plan.Craft
	b.WriteString(Underline(fmt.Sprintf("\nCraft combinations [%d]", len(craft.Pairs)), "=") + "\n")
	if len(craft.Pairs) == 0 {
		b.WriteString("No crafting possible\n")
	}
	for _, p := range craft.Pairs {
		b.WriteString(p.First.Name() + " + " + p.Second.Name() + "\n")
	}

	b.WriteString(Underline("\nValue in Metal", "=") + "\n")
	b.WriteString(FormatValue(r.Plan.Value.Value) + " ref\n")
	b.WriteString(FormatBreakdown(*r.Plan.Value) + "\n")

	b.WriteString(Underline(fmt.Sprintf("\nRemaining Duplicates [%d]", len(craft.Leftover)), "=") + "\n")
	for _, item := range craft.Leftover {
		b.WriteString(item.Name() + "\n")
	}
}

type roleGroup struct {
	role  inventory.Role
	slots []slotGroup
}

type slotGroup struct {
	slot   inventory.Slot
	counts []reconcile.DuplicateCount
}

// byRole lists every count under each role that can use it, roles and slots in table order.
// counts must already be sorted by name.
func (r *Report) byRole(counts []reconcile.DuplicateCount) []roleGroup {
	var roles []inventory.Role
	byRole := make(map[inventory.Role][]reconcile.DuplicateCount)
	for _, c := range counts {
		for _, role := range c.Item.Roles {
			if _, ok := byRole[role]; !ok {
				roles = append(roles, role)
			}
			byRole[role] = append(byRole[role], c)
		}
	}
	sort.SliceStable(roles, func(i, j int) bool {
		return r.ordering.RoleRank(roles[i]) < r.ordering.RoleRank(roles[j])
	})

	out := make([]roleGroup, 0, len(roles))
	for _, role := range roles {
		var slots []inventory.Slot
		bySlot := make(map[inventory.Slot][]reconcile.DuplicateCount)
		for _, c := range byRole[role] {
			if _, ok := bySlot[c.Item.Slot]; !ok {
				slots = append(slots, c.Item.Slot)
			}
			bySlot[c.Item.Slot] = append(bySlot[c.Item.Slot], c)
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return r.ordering.SlotRank(slots[i]) < r.ordering.SlotRank(slots[j])
		})

		group := roleGroup{role: role}
		for _, slot := range slots {
			group.slots = append(group.slots, slotGroup{slot: slot, counts: bySlot[slot]})
		}
		out = append(out, group)
	}
	return out
}

func slotTitle(s inventory.Slot) string {
	if t, ok := slotTitles[s]; ok {
		return t
	}
	return string(s)
}
