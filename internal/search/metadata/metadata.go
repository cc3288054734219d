// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metadata derives the per-face and per-card search records.
//
// # Records
//
// Search parameters that would be too expensive to evaluate at query time
// (mana symbol counts, produced colours, reminder-stripped rules text, the
// super sort key, the commander flag) are precomputed into
// cards.card_face_metadata and cards.card_metadata and rebuilt by the
// metadata job whenever card data changes. Builders assign every field of a
// typed record; the diff against the stored record decides persistence.
package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/taibuivan/tolaria/internal/platform/database/schema"
	"github.com/taibuivan/tolaria/internal/search/sortkey"
	"github.com/taibuivan/tolaria/pkg/mana"
)

var (
	reminderText = regexp.MustCompile(`\(.+?\)`)
	genericMana  = regexp.MustCompile(`\{(\d+)\}`)

	// producesAny matches "add ... mana of any color" style abilities, which
	// set every coloured produces flag at once.
	producesAny = regexp.MustCompile(`(?i)adds?\W[^\n.]*?any (combination of )?color`)

	producesColour = func() map[string]*regexp.Regexp {
		patterns := make(map[string]*regexp.Regexp, len(ProducesCodes))
		for _, code := range ProducesCodes {
			patterns[code] = regexp.MustCompile(`(?i)adds?\W[^\n.]*?\{` + strings.ToUpper(code) + `\}`)
		}
		return patterns
	}()
)

// ProducesCodes are the colour codes tracked by the produces flags.
var ProducesCodes = []string{"w", "u", "b", "r", "g", "c"}

// FaceRecord is the derived search record for one card face.
type FaceRecord struct {
	FaceID int64

	// SymbolCounts is keyed by canonical mana symbol.
	SymbolCounts map[string]int
	GenericCount int

	// Produces is keyed by the codes in [ProducesCodes].
	Produces map[string]bool

	RulesNoReminders string
}

// CardRecord is the derived search record for one card.
type CardRecord struct {
	CardID       int64
	SuperSortKey string
	IsCommander  bool
	IsVanilla    bool
	HasIndicator bool
}

// FaceSource is the card-face data the face builder reads.
type FaceSource struct {
	ID        int64
	ManaCost  string
	RulesText string
}

// CardSource is the card data the card builder reads.
type CardSource struct {
	ID           int64
	HasIndicator bool
	sortkey.Card
}

// BuildFaceRecord computes the full derived record for a face.
func BuildFaceRecord(face FaceSource) FaceRecord {
	record := FaceRecord{
		FaceID:       face.ID,
		SymbolCounts: make(map[string]int, len(mana.Symbols)),
		Produces:     make(map[string]bool, len(ProducesCodes)),
	}

	for _, symbol := range mana.Symbols {
		record.SymbolCounts[symbol] = strings.Count(face.ManaCost, "{"+strings.ToUpper(symbol)+"}")
	}
	if generic := genericMana.FindStringSubmatch(face.ManaCost); generic != nil {
		record.GenericCount, _ = strconv.Atoi(generic[1])
	}

	producesEvery := face.RulesText != "" && producesAny.MatchString(face.RulesText)
	for _, code := range ProducesCodes {
		if producesEvery && code != "c" {
			record.Produces[code] = true
			continue
		}
		record.Produces[code] = face.RulesText != "" && producesColour[code].MatchString(face.RulesText)
	}

	if strings.Contains(face.RulesText, "(") {
		record.RulesNoReminders = reminderText.ReplaceAllString(face.RulesText, "")
	} else {
		record.RulesNoReminders = face.RulesText
	}

	return record
}

// Diff returns the metadata columns whose values differ from previous. An
// empty result means the stored record is already current.
func (r FaceRecord) Diff(previous FaceRecord) []string {
	var changed []string
	for _, symbol := range mana.Symbols {
		if r.SymbolCounts[symbol] != previous.SymbolCounts[symbol] {
			changed = append(changed, schema.CardsFaceMetadata.SymbolColumn(symbol))
		}
	}
	if r.GenericCount != previous.GenericCount {
		changed = append(changed, schema.CardsFaceMetadata.GenericCount)
	}
	for _, code := range ProducesCodes {
		if r.Produces[code] != previous.Produces[code] {
			changed = append(changed, schema.CardsFaceMetadata.ProducesColumn(code))
		}
	}
	if r.RulesNoReminders != previous.RulesNoReminders {
		changed = append(changed, schema.CardsFaceMetadata.RulesNoReminders)
	}
	return changed
}

// BuildCardRecord computes the full derived record for a card.
func BuildCardRecord(card CardSource) CardRecord {
	return CardRecord{
		CardID:       card.ID,
		SuperSortKey: sortkey.Key(card.Card),
		IsCommander:  isCommander(card.Card),
		IsVanilla:    isVanilla(card.Card),
		HasIndicator: card.HasIndicator,
	}
}

// Diff returns the metadata columns whose values differ from previous.
func (r CardRecord) Diff(previous CardRecord) []string {
	var changed []string
	if r.SuperSortKey != previous.SuperSortKey {
		changed = append(changed, schema.CardsCardMetadata.SuperSortKey)
	}
	if r.IsCommander != previous.IsCommander {
		changed = append(changed, schema.CardsCardMetadata.IsCommander)
	}
	if r.IsVanilla != previous.IsVanilla {
		changed = append(changed, schema.CardsCardMetadata.IsVanilla)
	}
	if r.HasIndicator != previous.HasIndicator {
		changed = append(changed, schema.CardsCardMetadata.HasIndicator)
	}
	return changed
}

// isCommander reports whether the card can lead a commander deck: anything
// whose text says so, backgrounds, and legendary creatures. Tokens never
// qualify.
func isCommander(card sortkey.Card) bool {
	if len(card.Faces) == 0 {
		return false
	}
	front := card.Faces[0]

	if hasWord(front.Types, "Token") || hasWord(front.Supertypes, "Token") {
		return false
	}
	if strings.Contains(front.RulesText, " can be your commander") {
		return true
	}
	if hasWord(front.Types, "Background") {
		return true
	}
	if hasWord(front.Supertypes, "Legendary") && hasWord(front.Types, "Creature") {
		return true
	}
	// Grist's front face is not a creature anywhere except the battlefield.
	return card.Name == "Grist, the Hunger Tide"
}

// isVanilla reports whether the card is a creature with no rules text.
func isVanilla(card sortkey.Card) bool {
	if len(card.Faces) == 0 {
		return false
	}
	front := card.Faces[0]
	return hasWord(front.Types, "Creature") && strings.TrimSpace(front.RulesText) == ""
}

func hasWord(values []string, name string) bool {
	for _, value := range values {
		if strings.EqualFold(value, name) {
			return true
		}
	}
	return false
}
