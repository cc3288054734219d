// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tolaria/pkg/pagination"
)

/*
TestNewMeta checks total-page arithmetic including partial last pages.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"exact_division", 1, 25, 100, 4},
		{"partial_last_page", 1, 25, 101, 5},
		{"empty_results", 1, 25, 0, 0},
		{"single_item", 1, 25, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
		})
	}
}

/*
TestButtons_Window checks the windowing behaviour and the anchoring of the
first/last pages.
*/
func TestButtons_Window(t *testing.T) {
	buttons := pagination.Buttons(20, 10, 2)

	// prev, 1, spacer, 8..12, spacer, 20, next
	require.Len(t, buttons, 11)

	assert.True(t, buttons[0].IsPrevious)
	assert.True(t, buttons[0].Enabled)
	assert.Equal(t, 9, buttons[0].Number)

	assert.Equal(t, 1, buttons[1].Number)
	assert.True(t, buttons[2].IsSpacer)

	numbered := buttons[3:8]
	for i, button := range numbered {
		assert.Equal(t, 8+i, button.Number)
	}
	assert.True(t, numbered[2].Active)

	assert.True(t, buttons[8].IsSpacer)
	assert.Equal(t, 20, buttons[9].Number)

	assert.True(t, buttons[10].IsNext)
	assert.Equal(t, 11, buttons[10].Number)
}

/*
TestButtons_Boundaries checks arrow enablement and that no button escapes
the [1, totalPages] range.
*/
func TestButtons_Boundaries(t *testing.T) {
	tests := []struct {
		name        string
		totalPages  int
		currentPage int
		span        int
	}{
		{"first_page", 20, 1, 3},
		{"last_page", 20, 20, 3},
		{"single_page", 1, 1, 3},
		{"current_clamped_high", 5, 99, 2},
		{"current_clamped_low", 5, -3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buttons := pagination.Buttons(tt.totalPages, tt.currentPage, tt.span)
			require.NotEmpty(t, buttons)

			assert.True(t, buttons[0].IsPrevious)
			assert.True(t, buttons[len(buttons)-1].IsNext)

			for _, button := range buttons {
				if button.IsSpacer {
					assert.False(t, button.Enabled)
					continue
				}
				assert.GreaterOrEqual(t, button.Number, 1)
				assert.LessOrEqual(t, button.Number, max(tt.totalPages, 1))
			}
		})
	}
}

/*
TestButtons_AnchorsAlwaysReachable checks that page 1 and the last page are
present whenever the current page is further than span from them.
*/
func TestButtons_AnchorsAlwaysReachable(t *testing.T) {
	for current := 1; current <= 30; current++ {
		buttons := pagination.Buttons(30, current, 2)

		hasFirst, hasLast := false, false
		for _, button := range buttons {
			if button.IsSpacer || button.IsPrevious || button.IsNext {
				continue
			}
			if button.Number == 1 {
				hasFirst = true
			}
			if button.Number == 30 {
				hasLast = true
			}
		}

		assert.True(t, hasFirst, "page 1 missing at current=%d", current)
		assert.True(t, hasLast, "page 30 missing at current=%d", current)
	}
}
