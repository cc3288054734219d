package schema

// CardsCardBlockTable represents the 'cards.card_block' table
type CardsCardBlockTable struct {
	Table       string
	ID          string
	Name        string
	ReleaseDate string
	CreatedAt   string
	UpdatedAt   string
}

// CardsCardBlock is the schema definition for cards.card_block
var CardsCardBlock = CardsCardBlockTable{
	Table:       "cards.card_block",
	ID:          "id",
	Name:        "name",
	ReleaseDate: "releasedate",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CardsCardBlockTable) Columns() []string {
	return []string{t.ID, t.Name, t.ReleaseDate, t.CreatedAt, t.UpdatedAt}
}
