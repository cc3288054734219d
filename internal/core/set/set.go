// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package set holds the card release taxonomy: sets, blocks, play formats
// and rarities, and the fuzzy name resolution the search parameters rely on.
package set

import "time"

// Set represents one card release.
type Set struct {
	ID           int64      `json:"id"`
	BlockID      *int64     `json:"block_id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	ReleaseDate  time.Time  `json:"release_date"`
	CardCount    int        `json:"card_count"`
	IsOnlineOnly bool       `json:"is_online_only"`
	IsFoilOnly   bool       `json:"is_foil_only"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Block represents a group of related sets.
type Block struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ReleaseDate time.Time `json:"release_date"`
}

// Format represents a constructed or limited play format.
type Format struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Rarity represents a printing rarity tier.
type Rarity struct {
	ID           int64  `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}
