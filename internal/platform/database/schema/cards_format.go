package schema

// CardsFormatTable represents the 'cards.format' table
type CardsFormatTable struct {
	Table string
	ID    string
	Code  string
	Name  string
}

// CardsFormat is the schema definition for cards.format
var CardsFormat = CardsFormatTable{
	Table: "cards.format",
	ID:    "id",
	Code:  "code",
	Name:  "name",
}

func (t CardsFormatTable) Columns() []string {
	return []string{t.ID, t.Code, t.Name}
}
