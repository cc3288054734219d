// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/internal/platform/dberr"
)

// stubRepository serves resolution lookups from in-memory fixtures.
type stubRepository struct {
	sets    []*Set
	blocks  []*Block
	formats []*Format
}

func (repo *stubRepository) ListSets(context.Context) ([]*Set, error) {
	return repo.sets, nil
}

func (repo *stubRepository) GetSetByCode(_ context.Context, code string) (*Set, error) {
	for _, s := range repo.sets {
		if strings.EqualFold(s.Code, code) {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *stubRepository) GetSetByName(_ context.Context, name string) (*Set, error) {
	for _, s := range repo.sets {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *stubRepository) FindSetsByName(_ context.Context, fragment string) ([]*Set, error) {
	var matches []*Set
	for _, s := range repo.sets {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(fragment)) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (repo *stubRepository) GetBlockByName(_ context.Context, name string) (*Block, error) {
	for _, b := range repo.blocks {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *stubRepository) FindBlocksByName(_ context.Context, fragment string) ([]*Block, error) {
	var matches []*Block
	for _, b := range repo.blocks {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(fragment)) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (repo *stubRepository) GetBlock(_ context.Context, id int64) (*Block, error) {
	for _, b := range repo.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *stubRepository) GetFormatByName(_ context.Context, name string) (*Format, error) {
	for _, f := range repo.formats {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *stubRepository) GetRarity(context.Context, string) (*Rarity, error) {
	return nil, dberr.ErrNotFound
}

func blockID(id int64) *int64 { return &id }

func newTestService(repo Repository) *Service {
	return NewService(repo, nil, slog.Default())
}

/*
TestResolveSet checks the resolution precedence: exact code, exact name,
name substring, then non-promo disambiguation.
*/
func TestResolveSet(t *testing.T) {
	repo := &stubRepository{
		sets: []*Set{
			{ID: 1, Code: "LEA", Name: "Limited Edition Alpha"},
			{ID: 2, Code: "MIR", Name: "Mirage", BlockID: blockID(10)},
			{ID: 3, Code: "MM2", Name: "Modern Masters 2015"},
			{ID: 4, Code: "PMM2", Name: "Modern Masters 2015 Promos", Type: "promo"},
			{ID: 5, Code: "ICE", Name: "Ice Age", BlockID: blockID(11)},
			{ID: 6, Code: "ICE2", Name: "Ice Age Remastered", BlockID: blockID(11)},
		},
	}
	service := newTestService(repo)

	tests := []struct {
		name    string
		value   string
		wantID  int64
		wantErr string
	}{
		{name: "exact_code", value: "lea", wantID: 1},
		{name: "exact_name", value: "mirage", wantID: 2},
		{name: "name_substring", value: "alpha", wantID: 1},
		{name: "non_promo_preferred", value: "masters 2015", wantID: 3},
		{name: "unknown", value: "nonsense", wantErr: `unknown set "nonsense"`},
		{name: "ambiguous", value: "ice a", wantErr: `multiple sets match "ice a"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			found, err := service.ResolveSet(context.Background(), test.value)
			if test.wantErr != "" {
				require.EqualError(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantID, found.ID)
		})
	}
}

/*
TestResolveBlock checks direct block lookup and resolution through a set's
block.
*/
func TestResolveBlock(t *testing.T) {
	repo := &stubRepository{
		sets: []*Set{
			{ID: 2, Code: "MIR", Name: "Mirage", BlockID: blockID(10)},
			{ID: 3, Code: "VIS", Name: "Visions", BlockID: blockID(10)},
		},
		blocks: []*Block{
			{ID: 10, Name: "Mirage Block"},
			{ID: 11, Name: "Ice Age Block"},
		},
	}
	service := newTestService(repo)

	t.Run("exact_block_name", func(t *testing.T) {
		found, err := service.ResolveBlock(context.Background(), "ice age block")
		require.NoError(t, err)
		assert.Equal(t, int64(11), found.ID)
	})

	t.Run("through_set_code", func(t *testing.T) {
		found, err := service.ResolveBlock(context.Background(), "vis")
		require.NoError(t, err)
		assert.Equal(t, int64(10), found.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := service.ResolveBlock(context.Background(), "nonsense")
		require.EqualError(t, err, `unknown block "nonsense"`)
	})
}

/*
TestResolveFormat checks that only exact format names resolve.
*/
func TestResolveFormat(t *testing.T) {
	repo := &stubRepository{
		formats: []*Format{{ID: 1, Name: "Commander", Code: "commander"}},
	}
	service := newTestService(repo)

	found, err := service.ResolveFormat(context.Background(), "commander")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)

	_, err = service.ResolveFormat(context.Background(), "comm")
	require.EqualError(t, err, `format "comm" does not exist`)
}
