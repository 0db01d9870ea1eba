package steamapi

// privateBackpack is the GetPlayerItems status for a private or unavailable backpack.
const privateBackpack = 15

// SchemaItem is one entry of the item schema.
type SchemaItem struct {
	// Name is the internal item name.
	Name          string   `json:"name"`
	Defindex      int      `json:"defindex"`
	ItemName      string   `json:"item_name"`
	ProperName    bool     `json:"proper_name"`
	ItemSlot      string   `json:"item_slot"`
	ItemQuality   int      `json:"item_quality"`
	UsedByClasses []string `json:"used_by_classes"`
}

// PlayerItem is one owned item as reported by GetPlayerItems.
type PlayerItem struct {
	ID              uint64 `json:"id"`
	OriginalID      uint64 `json:"original_id"`
	Defindex        int    `json:"defindex"`
	Level           int    `json:"level"`
	Quality         int    `json:"quality"`
	Inventory       uint32 `json:"inventory"`
	Quantity        int    `json:"quantity"`
	FlagCannotTrade bool   `json:"flag_cannot_trade"`
}

// PlayerSummary is the public profile of an account.
type PlayerSummary struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	RealName    string `json:"realname"`
	AvatarFull  string `json:"avatarfull"`
}

// DisplayName prefers the real name and falls back to the persona name.
func (p PlayerSummary) DisplayName() string {
	if p.RealName != "" {
		return p.RealName
	}
	return p.PersonaName
}

type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

type summariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

type playerItemsResponse struct {
	Result *struct {
		Status int          `json:"status"`
		Items  []PlayerItem `json:"items"`
	} `json:"result"`
}

type schemaResponse struct {
	Result struct {
		Status int          `json:"status"`
		Items  []SchemaItem `json:"items"`
		Next   *int         `json:"next"`
	} `json:"result"`
}
