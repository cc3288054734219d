package schema

// UserPreferencesTable represents the 'users.search_preference' table
type UserPreferencesTable struct {
	Table             string
	UserID            string
	DefaultSort       string
	PageSize          string
	PreferredPrinting string
	ShowOwnedOnly     string
}

// UserPreferences is the schema definition for users.search_preference
var UserPreferences = UserPreferencesTable{
	Table:             "users.search_preference",
	UserID:            "userid",
	DefaultSort:       "defaultsort",
	PageSize:          "pagesize",
	PreferredPrinting: "preferredprinting",
	ShowOwnedOnly:     "showownedonly",
}

// Columns returns all standard column names
func (t UserPreferencesTable) Columns() []string {
	return []string{t.UserID, t.DefaultSort, t.PageSize, t.PreferredPrinting, t.ShowOwnedOnly}
}
