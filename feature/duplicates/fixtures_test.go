package duplicates

import (
	"path/filepath"
	"testing"

	"backpack-manager/core/catalog"
	"backpack-manager/core/steamapi"
	"backpack-manager/core/steamapi/mocks"
	"backpack-manager/feature/accounts"

	"github.com/stretchr/testify/mock"
)

const (
	robinID = "76561197960287930"
	alexID  = "76561197960435530"
)

func schemaItems() []steamapi.SchemaItem {
	scout := []string{"Scout"}
	return []steamapi.SchemaItem{
		{Defindex: 13, ItemName: "Scattergun", ItemSlot: "primary", ItemQuality: 0, UsedByClasses: scout},
		{Defindex: 45, ItemName: "Force-A-Nature", ProperName: true, ItemSlot: "primary", ItemQuality: 6, UsedByClasses: scout},
		{Defindex: 44, ItemName: "Sandman", ProperName: true, ItemSlot: "melee", ItemQuality: 6, UsedByClasses: scout},
		{Defindex: 220, ItemName: "Shortstop", ProperName: true, ItemSlot: "primary", ItemQuality: 6, UsedByClasses: scout},
		{Defindex: 6, ItemName: "Shovel", ItemSlot: "melee", ItemQuality: 0, UsedByClasses: []string{"Soldier"}},
		{Defindex: 128, ItemName: "Equalizer", ProperName: true, ItemSlot: "melee", ItemQuality: 6, UsedByClasses: []string{"Soldier"}},
		{Defindex: 5000, ItemName: "Scrap Metal", ItemQuality: 6},
		{Defindex: 264, ItemName: "Frying Pan", ProperName: true, ItemSlot: "melee", ItemQuality: 6},
	}
}

func robinItems() []steamapi.PlayerItem {
	return []steamapi.PlayerItem{
		{ID: 1, Defindex: 45, Quality: 6},
		{ID: 2, Defindex: 45, Quality: 6},
		{ID: 3, Defindex: 45, Quality: 6},
		{ID: 4, Defindex: 44, Quality: 6},
		{ID: 5, Defindex: 44, Quality: 6},
		{ID: 6, Defindex: 128, Quality: 6},
		{ID: 7, Defindex: 128, Quality: 6, FlagCannotTrade: true},
		{ID: 8, Defindex: 5000, Quality: 6},
		{ID: 9, Defindex: 5000, Quality: 6},
		{ID: 11, Defindex: 220, Quality: 6},
	}
}

func alexItems() []steamapi.PlayerItem {
	return []steamapi.PlayerItem{
		{ID: 100, Defindex: 44, Quality: 6},
		{ID: 101, Defindex: 264, Quality: 6},
	}
}

// newTestService wires a service over a mocked Steam API and a file-backed catalog.
func newTestService(t *testing.T) (*Service, *mocks.API) {
	t.Helper()

	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(schemaItems(), nil)
	api.On("ResolveVanityURL", mock.Anything, "robin").Return(robinID, nil)
	api.On("ResolveVanityURL", mock.Anything, "alex").Return(alexID, nil)
	api.On("ResolveVanityURL", mock.Anything, "ghost").Return("", nil)
	api.On("GetPlayerItems", mock.Anything, robinID).Return(robinItems(), nil)
	api.On("GetPlayerItems", mock.Anything, alexID).Return(alexItems(), nil)
	api.On("GetPlayerSummary", mock.Anything, alexID).Return(&steamapi.PlayerSummary{PersonaName: "alex", RealName: "Alex"}, nil)

	store := catalog.NewFileStore(filepath.Join(t.TempDir(), "schema.json"))
	loader := catalog.NewLoader(store, api, "en", 0, nil)

	return NewService(loader, accounts.NewService(api, nil), nil), api
}
