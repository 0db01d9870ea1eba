package inventory

// Definition is the immutable catalog metadata for one canonical index.
type Definition struct {
	// Index is the canonical catalog index (defindex).
	Index int `json:"index"`
	// InternalName is the catalog's internal item name.
	InternalName string `json:"internal_name"`
	// BaseName is the localized item name without quality or article.
	BaseName string `json:"base_name"`
	// ProperName marks items displayed with a leading "The".
	ProperName bool `json:"proper_name"`
	// Quality is the catalog default quality.
	Quality Quality `json:"quality"`
	// Roles is the set of classes the item is usable by.
	Roles Affinity `json:"roles"`
	// Slot is the loadout slot category.
	Slot Slot `json:"slot"`
}

// Name returns the display name of the catalog entry.
func (d Definition) Name() string {
	return DisplayName(d.ProperName, d.Quality, d.BaseName)
}

func (d Definition) String() string {
	return d.Name()
}

// Item is one owned instance of a catalog entry.
type Item struct {
	// ID is the unique instance id.
	ID uint64 `json:"id"`
	// Index is the canonical catalog index shared by all copies.
	Index int `json:"index"`
	// BaseName is the localized item name without quality or article.
	BaseName string `json:"base_name"`
	// ProperName marks items displayed with a leading "The".
	ProperName bool `json:"proper_name"`
	// Quality is the quality of this instance, which may differ from the catalog default.
	Quality Quality `json:"quality"`
	// Roles is the set of classes the item is usable by.
	Roles Affinity `json:"roles"`
	// Slot is the loadout slot category.
	Slot Slot `json:"slot"`
	// Tradable is false when the instance is flagged as not tradable.
	Tradable bool `json:"tradable"`
	// Position is the raw backpack position word.
	Position uint32 `json:"-"`
}

// NewItem builds an instance from its catalog definition and per-instance fields.
func NewItem(def Definition, id uint64, quality Quality, tradable bool, position uint32) Item {
	return Item{
		ID:         id,
		Index:      def.Index,
		BaseName:   def.BaseName,
		ProperName: def.ProperName,
		Quality:    quality,
		Roles:      def.Roles,
		Slot:       def.Slot,
		Tradable:   tradable,
		Position:   position,
	}
}

// Name returns the display name of the instance.
func (i Item) Name() string {
	return DisplayName(i.ProperName, i.Quality, i.BaseName)
}

func (i Item) String() string {
	return i.Name()
}

// WillTrade reports whether the instance may be offered to others or crafted.
// Only tradable Unique-quality copies qualify.
func (i Item) WillTrade() bool {
	return i.Quality == QualityUnique && i.Tradable
}

// IsWeapon reports whether the item sits in a weapon slot.
func (i Item) IsWeapon() bool {
	return i.Slot.IsWeapon()
}

// SameInstance compares instance identity.
func (i Item) SameInstance(o Item) bool {
	return i.ID == o.ID
}

// SameIndex compares canonical identity.
func (i Item) SameIndex(o Item) bool {
	return i.Index == o.Index
}

// BackpackSlot returns the backpack cell encoded in the low 16 bits of Position.
func (i Item) BackpackSlot() uint32 {
	return i.Position & 0xFFFF
}

// IsNew reports whether the item has not been placed in the backpack yet.
func (i Item) IsNew() bool {
	return i.Position == 0
}

// DisplayName composes an item name the way the game shows it.
func DisplayName(proper bool, quality Quality, base string) string {
	name := ""
	if proper {
		name = "The "
	}
	if quality != QualityNormal && quality != QualityUnique {
		name += quality.Name() + " "
	}
	return name + base
}
