// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metadata

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/core/card"
	"github.com/taibuivan/tolaria/internal/search/predicate"
	"github.com/taibuivan/tolaria/pkg/colour"
	"github.com/taibuivan/tolaria/pkg/pointer"
)

// stubCatalogue serves a fixed card list to the rebuilder.
type stubCatalogue struct {
	cards []*card.Card
	faces map[int64][]*card.Face
}

func (catalogue *stubCatalogue) GetCard(context.Context, int64) (*card.Card, error) {
	return nil, nil
}

func (catalogue *stubCatalogue) GetCardBySlug(context.Context, string) (*card.Card, error) {
	return nil, nil
}

func (catalogue *stubCatalogue) Search(context.Context, predicate.Predicate, predicate.Scope, []string, int, int) ([]*card.Card, error) {
	return nil, nil
}

func (catalogue *stubCatalogue) Count(context.Context, predicate.Predicate, predicate.Scope) (int, error) {
	return 0, nil
}

func (catalogue *stubCatalogue) ListCards(context.Context) ([]*card.Card, error) {
	return catalogue.cards, nil
}

func (catalogue *stubCatalogue) AttachFaces(_ context.Context, cards []*card.Card) error {
	for _, c := range cards {
		c.Faces = catalogue.faces[c.ID]
	}
	return nil
}

func (catalogue *stubCatalogue) AttachPrintings(context.Context, []*card.Card) error {
	return nil
}

func (catalogue *stubCatalogue) AttachOwnership(context.Context, []*card.Card, string) error {
	return nil
}

// recordStore is an in-memory record repository. Upserts are counted under a
// lock because the rebuilder writes from its worker pool.
type recordStore struct {
	mu    sync.Mutex
	faces map[int64]FaceRecord
	cards map[int64]CardRecord

	faceUpserts int
	cardUpserts int
}

func newRecordStore() *recordStore {
	return &recordStore{
		faces: make(map[int64]FaceRecord),
		cards: make(map[int64]CardRecord),
	}
}

func (store *recordStore) ListFaceRecords(context.Context) (map[int64]FaceRecord, error) {
	return store.faces, nil
}

func (store *recordStore) ListCardRecords(context.Context) (map[int64]CardRecord, error) {
	return store.cards, nil
}

func (store *recordStore) UpsertFaceRecord(_ context.Context, record FaceRecord) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.faceUpserts++
	return nil
}

func (store *recordStore) UpsertCardRecord(_ context.Context, record CardRecord) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.cardUpserts++
	return nil
}

func fixtureCatalogue() *stubCatalogue {
	return &stubCatalogue{
		cards: []*card.Card{
			{ID: 1, Name: "Grizzly Bears", Layout: "normal", ManaValue: 2, ColourIdentity: colour.Green},
			{ID: 2, Name: "Llanowar Elves", Layout: "normal", ManaValue: 1, ColourIdentity: colour.Green},
		},
		faces: map[int64][]*card.Face{
			1: {{
				ID:        10,
				CardID:    1,
				Name:      "Grizzly Bears",
				ManaCost:  "{1}{G}",
				Types:     []string{"Creature"},
				Subtypes:  []string{"Bear"},
				Power:     pointer.To("2"),
				Toughness: pointer.To("2"),
			}},
			2: {{
				ID:        20,
				CardID:    2,
				Name:      "Llanowar Elves",
				ManaCost:  "{G}",
				Types:     []string{"Creature"},
				Subtypes:  []string{"Elf", "Druid"},
				Power:     pointer.To("1"),
				Toughness: pointer.To("1"),
				RulesText: "{T}: Add {G}.",
			}},
		},
	}
}

/*
TestRebuilder_FirstRun checks that a rebuild over an empty record store
writes one face record and one card record per card.
*/
func TestRebuilder_FirstRun(t *testing.T) {
	store := newRecordStore()
	rebuilder := NewRebuilder(fixtureCatalogue(), store, slog.Default(), 2)

	summary, err := rebuilder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Cards)
	assert.Equal(t, 2, summary.Faces)
	assert.Equal(t, 2, summary.ChangedCards)
	assert.Equal(t, 2, summary.ChangedFaces)
	assert.Equal(t, 2, store.faceUpserts)
	assert.Equal(t, 2, store.cardUpserts)
}

/*
TestRebuilder_UnchangedRecordsSkipped checks that a rebuild over records
already matching the catalogue writes nothing.
*/
func TestRebuilder_UnchangedRecordsSkipped(t *testing.T) {
	catalogue := fixtureCatalogue()
	store := newRecordStore()
	for _, faces := range catalogue.faces {
		face := faces[0]
		store.faces[face.ID] = BuildFaceRecord(FaceSource{
			ID:        face.ID,
			ManaCost:  face.ManaCost,
			RulesText: face.RulesText,
		})
	}
	for _, c := range catalogue.cards {
		c.Faces = catalogue.faces[c.ID]
		store.cards[c.ID] = BuildCardRecord(cardSource(c))
	}

	rebuilder := NewRebuilder(catalogue, store, slog.Default(), 2)

	summary, err := rebuilder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Cards)
	assert.Zero(t, summary.ChangedCards)
	assert.Zero(t, summary.ChangedFaces)
	assert.Zero(t, store.faceUpserts)
	assert.Zero(t, store.cardUpserts)
}

/*
TestRebuilder_TextChangeTriggersUpsert checks that editing the rules text of
one face causes exactly that face, and its card, to be rewritten.
*/
func TestRebuilder_TextChangeTriggersUpsert(t *testing.T) {
	catalogue := fixtureCatalogue()
	store := newRecordStore()
	for _, faces := range catalogue.faces {
		face := faces[0]
		store.faces[face.ID] = BuildFaceRecord(FaceSource{
			ID:        face.ID,
			ManaCost:  face.ManaCost,
			RulesText: face.RulesText,
		})
	}
	for _, c := range catalogue.cards {
		c.Faces = catalogue.faces[c.ID]
		store.cards[c.ID] = BuildCardRecord(cardSource(c))
	}

	// Oracle update: the elves now tap for any colour.
	catalogue.faces[2][0].RulesText = "{T}: Add one mana of any color."

	rebuilder := NewRebuilder(catalogue, store, slog.Default(), 1)

	summary, err := rebuilder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ChangedFaces)
	assert.Equal(t, 1, store.faceUpserts)
	// The card-level record is untouched by rules text alone.
	assert.Zero(t, summary.ChangedCards)
}
