package schema

// CardsCardSetTable represents the 'cards.card_set' table
type CardsCardSetTable struct {
	Table        string
	ID           string
	BlockID      string
	Code         string
	Name         string
	Type         string
	ReleaseDate  string
	CardCount    string
	IsOnlineOnly string
	IsFoilOnly   string
	CreatedAt    string
	UpdatedAt    string
}

// CardsCardSet is the schema definition for cards.card_set
var CardsCardSet = CardsCardSetTable{
	Table:        "cards.card_set",
	ID:           "id",
	BlockID:      "blockid",
	Code:         "code",
	Name:         "name",
	Type:         "settype",
	ReleaseDate:  "releasedate",
	CardCount:    "cardcount",
	IsOnlineOnly: "isonlineonly",
	IsFoilOnly:   "isfoilonly",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CardsCardSetTable) Columns() []string {
	return []string{
		t.ID, t.BlockID, t.Code, t.Name, t.Type, t.ReleaseDate, t.CardCount,
		t.IsOnlineOnly, t.IsFoilOnly, t.CreatedAt, t.UpdatedAt,
	}
}
