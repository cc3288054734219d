package schema

// CardsCardLegalityTable represents the 'cards.card_legality' table
type CardsCardLegalityTable struct {
	Table       string
	ID          string
	CardID      string
	FormatID    string
	Restriction string
}

// CardsCardLegality is the schema definition for cards.card_legality
var CardsCardLegality = CardsCardLegalityTable{
	Table:       "cards.card_legality",
	ID:          "id",
	CardID:      "cardid",
	FormatID:    "formatid",
	Restriction: "restriction",
}

func (t CardsCardLegalityTable) Columns() []string {
	return []string{t.ID, t.CardID, t.FormatID, t.Restriction}
}
