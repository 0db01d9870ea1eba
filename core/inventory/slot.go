package inventory

// Slot is the loadout slot category of an item.
type Slot string

const (
	SlotNone      Slot = "none"
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
	SlotMelee     Slot = "melee"
	SlotPDA       Slot = "pda"
	SlotPDA2      Slot = "pda2"
	SlotHead      Slot = "head"
	SlotMisc      Slot = "misc"
	SlotAction    Slot = "action"
)

// NewSlot normalizes a raw slot name; empty means none.
func NewSlot(s string) Slot {
	if s == "" {
		return SlotNone
	}
	return Slot(s)
}

// IsWeapon reports whether the slot holds a weapon.
func (s Slot) IsWeapon() bool {
	switch s {
	case SlotPrimary, SlotSecondary, SlotMelee, SlotPDA, SlotPDA2:
		return true
	default:
		return false
	}
}

// IsCosmetic reports whether the slot holds a cosmetic.
func (s Slot) IsCosmetic() bool {
	switch s {
	case SlotHead, SlotMisc, SlotAction:
		return true
	default:
		return false
	}
}
