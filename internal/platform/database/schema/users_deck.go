package schema

// UsersDeckTable represents the 'users.deck' table
type UsersDeckTable struct {
	Table     string
	ID        string
	OwnerID   string
	Name      string
	Format    string
	CreatedAt string
	UpdatedAt string
}

// UsersDeck is the schema definition for users.deck
var UsersDeck = UsersDeckTable{
	Table:     "users.deck",
	ID:        "id",
	OwnerID:   "ownerid",
	Name:      "name",
	Format:    "format",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t UsersDeckTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.Name, t.Format, t.CreatedAt, t.UpdatedAt}
}
