package schema

// CardsCardPrintingTable represents the 'cards.card_printing' table
type CardsCardPrintingTable struct {
	Table           string
	ID              string
	CardID          string
	SetID           string
	RarityID        string
	Number          string
	NumericalNumber string
	Artist          string
	FlavourText     string
	Watermark       string
	FrameVersion    string
	BorderColour    string
	IsReprint       string
	IsPromo         string
	ScryfallID      string
	CreatedAt       string
	UpdatedAt       string
}

// CardsCardPrinting is the schema definition for cards.card_printing
var CardsCardPrinting = CardsCardPrintingTable{
	Table:           "cards.card_printing",
	ID:              "id",
	CardID:          "cardid",
	SetID:           "setid",
	RarityID:        "rarityid",
	Number:          "number",
	NumericalNumber: "numericalnumber",
	Artist:          "artist",
	FlavourText:     "flavourtext",
	Watermark:       "watermark",
	FrameVersion:    "frameversion",
	BorderColour:    "bordercolour",
	IsReprint:       "isreprint",
	IsPromo:         "ispromo",
	ScryfallID:      "scryfallid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CardsCardPrintingTable) Columns() []string {
	return []string{
		t.ID, t.CardID, t.SetID, t.RarityID, t.Number, t.NumericalNumber, t.Artist,
		t.FlavourText, t.Watermark, t.FrameVersion, t.BorderColour, t.IsReprint,
		t.IsPromo, t.ScryfallID, t.CreatedAt, t.UpdatedAt,
	}
}
