package schema

// UsersDeckCardTable represents the 'users.deck_card' table
type UsersDeckCardTable struct {
	Table  string
	ID     string
	DeckID string
	CardID string
	Count  string
	Board  string
}

// UsersDeckCard is the schema definition for users.deck_card
var UsersDeckCard = UsersDeckCardTable{
	Table:  "users.deck_card",
	ID:     "id",
	DeckID: "deckid",
	CardID: "cardid",
	Count:  "count",
	Board:  "board",
}

func (t UsersDeckCardTable) Columns() []string {
	return []string{t.ID, t.DeckID, t.CardID, t.Count, t.Board}
}
