package schema

// CardsCardMetadataTable represents the 'cards.card_metadata' table
type CardsCardMetadataTable struct {
	Table        string
	CardID       string
	SuperSortKey string
	IsCommander  string
	IsVanilla    string
	HasIndicator string
	UpdatedAt    string
}

// CardsCardMetadata is the schema definition for cards.card_metadata
var CardsCardMetadata = CardsCardMetadataTable{
	Table:        "cards.card_metadata",
	CardID:       "cardid",
	SuperSortKey: "supersortkey",
	IsCommander:  "iscommander",
	IsVanilla:    "isvanilla",
	HasIndicator: "hasindicator",
	UpdatedAt:    "updatedat",
}

func (t CardsCardMetadataTable) Columns() []string {
	return []string{t.CardID, t.SuperSortKey, t.IsCommander, t.IsVanilla, t.HasIndicator, t.UpdatedAt}
}
