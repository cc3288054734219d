package schema

// CardsCardFaceTable represents the 'cards.card_face' table
type CardsCardFaceTable struct {
	Table            string
	ID               string
	CardID           string
	Name             string
	Side             string
	ManaCost         string
	ManaValue        string
	ColourFlags      string
	ColourIndicator  string
	ColourCount      string
	ColourSortKey    string
	Power            string
	NumPower         string
	Toughness        string
	NumToughness     string
	Loyalty          string
	NumLoyalty       string
	RulesText        string
	TypeLine         string
	Types            string
	Subtypes         string
	Supertypes       string
	HandModifier     string
	LifeModifier     string
	CreatedAt        string
	UpdatedAt        string
}

// CardsCardFace is the schema definition for cards.card_face
var CardsCardFace = CardsCardFaceTable{
	Table:           "cards.card_face",
	ID:              "id",
	CardID:          "cardid",
	Name:            "name",
	Side:            "side",
	ManaCost:        "manacost",
	ManaValue:       "manavalue",
	ColourFlags:     "colourflags",
	ColourIndicator: "colourindicatorflags",
	ColourCount:     "colourcount",
	ColourSortKey:   "coloursortkey",
	Power:           "power",
	NumPower:        "numpower",
	Toughness:       "toughness",
	NumToughness:    "numtoughness",
	Loyalty:         "loyalty",
	NumLoyalty:      "numloyalty",
	RulesText:       "rulestext",
	TypeLine:        "typeline",
	Types:           "types",
	Subtypes:        "subtypes",
	Supertypes:      "supertypes",
	HandModifier:    "handmodifier",
	LifeModifier:    "lifemodifier",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CardsCardFaceTable) Columns() []string {
	return []string{
		t.ID, t.CardID, t.Name, t.Side, t.ManaCost, t.ManaValue, t.ColourFlags,
		t.ColourIndicator, t.ColourCount, t.ColourSortKey, t.Power, t.NumPower, t.Toughness, t.NumToughness,
		t.Loyalty, t.NumLoyalty, t.RulesText, t.TypeLine, t.Types, t.Subtypes, t.Supertypes,
		t.HandModifier, t.LifeModifier, t.CreatedAt, t.UpdatedAt,
	}
}
