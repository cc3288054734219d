package schema

// CardsCardTable represents the 'cards.card' table
type CardsCardTable struct {
	Table             string
	ID                string
	Name              string
	Slug              string
	Layout            string
	ManaValue         string
	ColourFlags       string
	ColourIdentity    string
	ColourCount       string
	ColourIdentityCnt string
	IsReservedList    string
	ScryfallOracleID  string
	CreatedAt         string
	UpdatedAt         string
}

// CardsCard is the schema definition for cards.card
var CardsCard = CardsCardTable{
	Table:             "cards.card",
	ID:                "id",
	Name:              "name",
	Slug:              "slug",
	Layout:            "layout",
	ManaValue:         "manavalue",
	ColourFlags:       "colourflags",
	ColourIdentity:    "colouridentityflags",
	ColourCount:       "colourcount",
	ColourIdentityCnt: "colouridentitycount",
	IsReservedList:    "isreservedlist",
	ScryfallOracleID:  "scryfalloracleid",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

func (t CardsCardTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Layout, t.ManaValue, t.ColourFlags, t.ColourIdentity,
		t.ColourCount, t.ColourIdentityCnt, t.IsReservedList, t.ScryfallOracleID,
		t.CreatedAt, t.UpdatedAt,
	}
}
