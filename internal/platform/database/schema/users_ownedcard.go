package schema

// UsersOwnedCardTable represents the 'users.owned_card' table
type UsersOwnedCardTable struct {
	Table      string
	ID         string
	OwnerID    string
	PrintingID string
	Count      string
	CreatedAt  string
	UpdatedAt  string
}

// UsersOwnedCard is the schema definition for users.owned_card
var UsersOwnedCard = UsersOwnedCardTable{
	Table:      "users.owned_card",
	ID:         "id",
	OwnerID:    "ownerid",
	PrintingID: "printingid",
	Count:      "count",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t UsersOwnedCardTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.PrintingID, t.Count, t.CreatedAt, t.UpdatedAt}
}
