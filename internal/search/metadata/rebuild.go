// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metadata

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/taibuivan/tolaria/internal/core/card"
	"github.com/taibuivan/tolaria/internal/search/sortkey"
	"github.com/taibuivan/tolaria/pkg/colour"
)

// Rebuilder recomputes the derived search records for the whole catalogue,
// writing back only the records that changed.
type Rebuilder struct {
	cards   card.Repository
	records Repository
	logger  *slog.Logger
	workers int
}

func NewRebuilder(cards card.Repository, records Repository, logger *slog.Logger, workers int) *Rebuilder {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Rebuilder{
		cards:   cards,
		records: records,
		logger:  logger,
		workers: workers,
	}
}

// Summary reports what one rebuild run touched.
type Summary struct {
	Cards        int
	Faces        int
	ChangedCards int
	ChangedFaces int
}

// Run rebuilds every face and card record. Cards are processed on a worker
// pool; the first storage error aborts the run after in-flight cards finish.
func (rebuilder *Rebuilder) Run(context context.Context) (Summary, error) {
	cards, err := rebuilder.cards.ListCards(context)
	if err != nil {
		return Summary{}, err
	}
	if err := rebuilder.cards.AttachFaces(context, cards); err != nil {
		return Summary{}, err
	}

	previousFaces, err := rebuilder.records.ListFaceRecords(context)
	if err != nil {
		return Summary{}, err
	}
	previousCards, err := rebuilder.records.ListCardRecords(context)
	if err != nil {
		return Summary{}, err
	}

	pool, err := ants.NewPool(rebuilder.workers)
	if err != nil {
		return Summary{}, err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		summary  Summary
		firstErr error
	)
	summary.Cards = len(cards)

	// Progress is logged roughly every tenth of the catalogue.
	logEvery := len(cards) / 10
	if logEvery < 1 {
		logEvery = 1
	}
	processed := 0

	for _, c := range cards {
		c := c
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			changedFaces, changedCard, err := rebuilder.rebuildCard(context, c, previousFaces, previousCards)

			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			summary.Faces += len(c.Faces)
			summary.ChangedFaces += changedFaces
			if changedCard {
				summary.ChangedCards++
			}
			processed++
			if processed%logEvery == 0 {
				rebuilder.logger.Info("metadata_rebuild_progress",
					"processed", processed,
					"total", len(cards),
				)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	return summary, firstErr
}

func (rebuilder *Rebuilder) rebuildCard(context context.Context, c *card.Card, previousFaces map[int64]FaceRecord, previousCards map[int64]CardRecord) (int, bool, error) {
	changedFaces := 0
	for _, face := range c.Faces {
		record := BuildFaceRecord(FaceSource{
			ID:        face.ID,
			ManaCost:  face.ManaCost,
			RulesText: face.RulesText,
		})
		previous, known := previousFaces[face.ID]
		if known && len(record.Diff(previous)) == 0 {
			continue
		}
		if err := rebuilder.records.UpsertFaceRecord(context, record); err != nil {
			return changedFaces, false, err
		}
		changedFaces++
	}

	record := BuildCardRecord(cardSource(c))
	previous, known := previousCards[c.ID]
	if known && len(record.Diff(previous)) == 0 {
		return changedFaces, false, nil
	}
	if err := rebuilder.records.UpsertCardRecord(context, record); err != nil {
		return changedFaces, false, err
	}
	return changedFaces, true, nil
}

// cardSource projects a catalogue card onto the record builder's view.
func cardSource(c *card.Card) CardSource {
	source := CardSource{
		ID: c.ID,
		Card: sortkey.Card{
			Name:           c.Name,
			Layout:         c.Layout,
			ManaValue:      int(c.ManaValue),
			ColourIdentity: c.ColourIdentity,
			Faces:          make([]sortkey.Face, len(c.Faces)),
		},
	}
	for i, face := range c.Faces {
		source.Faces[i] = sortkey.Face{
			Name:       face.Name,
			ManaCost:   face.ManaCost,
			RulesText:  face.RulesText,
			Types:      face.Types,
			Subtypes:   face.Subtypes,
			Supertypes: face.Supertypes,
			Colours:    face.Colours,
		}
		if face.ColourIndicator != colour.Set(0) {
			source.HasIndicator = true
		}
	}
	return source
}
