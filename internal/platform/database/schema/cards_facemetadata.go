package schema

import "strings"

// CardsFaceMetadataTable represents the 'cards.card_face_metadata' table.
//
// The table carries one symbol count column per mana symbol plus one for
// generic costs. Symbol columns are addressed through SymbolColumn rather
// than listed as fields.
type CardsFaceMetadataTable struct {
	Table             string
	FaceID            string
	GenericCount      string
	ProducesW         string
	ProducesU         string
	ProducesB         string
	ProducesR         string
	ProducesG         string
	ProducesC         string
	RulesNoReminders  string
	UpdatedAt         string
	symbolCountPrefix string
}

// CardsFaceMetadata is the schema definition for cards.card_face_metadata
var CardsFaceMetadata = CardsFaceMetadataTable{
	Table:             "cards.card_face_metadata",
	FaceID:            "faceid",
	GenericCount:      "symbolcountgeneric",
	ProducesW:         "producesw",
	ProducesU:         "producesu",
	ProducesB:         "producesb",
	ProducesR:         "producesr",
	ProducesG:         "producesg",
	ProducesC:         "producesc",
	RulesNoReminders:  "rulesnoreminders",
	UpdatedAt:         "updatedat",
	symbolCountPrefix: "symbolcount",
}

// SymbolColumn maps a canonical mana symbol to its count column, e.g.
// "w/u" to "symbolcountwu".
func (t CardsFaceMetadataTable) SymbolColumn(symbol string) string {
	return t.symbolCountPrefix + strings.ReplaceAll(symbol, "/", "")
}

// ProducesColumn maps a colour code ("w".."g", "c") to its flag column.
func (t CardsFaceMetadataTable) ProducesColumn(code string) string {
	return "produces" + code
}
