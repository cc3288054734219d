package schema

// CardsRarityTable represents the 'cards.rarity' table
type CardsRarityTable struct {
	Table        string
	ID           string
	Symbol       string
	Name         string
	DisplayOrder string
}

// CardsRarity is the schema definition for cards.rarity
var CardsRarity = CardsRarityTable{
	Table:        "cards.rarity",
	ID:           "id",
	Symbol:       "symbol",
	Name:         "name",
	DisplayOrder: "displayorder",
}

func (t CardsRarityTable) Columns() []string {
	return []string{t.ID, t.Symbol, t.Name, t.DisplayOrder}
}
