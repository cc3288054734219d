// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package card holds the card catalog: the abstract card, its faces and its
// per-set printings, plus the repository the search executor queries.
package card

import (
	"time"

	"github.com/taibuivan/tolaria/internal/core/set"
	"github.com/taibuivan/tolaria/pkg/colour"
)

// Card represents one abstract card across all of its printings.
type Card struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	Slug                string     `json:"slug"`
	Layout              string     `json:"layout"`
	ManaValue           float64    `json:"mana_value"`
	Colours             colour.Set `json:"colours"`
	ColourIdentity      colour.Set `json:"colour_identity"`
	ColourCount         int        `json:"colour_count"`
	ColourIdentityCount int        `json:"colour_identity_count"`
	IsReservedList      bool       `json:"is_reserved_list"`
	ScryfallOracleID    *string    `json:"scryfall_oracle_id"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Faces      []*Face     `json:"faces,omitempty"`
	Printings  []*Printing `json:"printings,omitempty"`
	OwnedCount int         `json:"owned_count"`
}

// Face represents one face of a card. Single-faced cards have exactly one.
type Face struct {
	ID              int64      `json:"id"`
	CardID          int64      `json:"card_id"`
	Name            string     `json:"name"`
	Side            *string    `json:"side"`
	ManaCost        string     `json:"mana_cost"`
	ManaValue       float64    `json:"mana_value"`
	Colours         colour.Set `json:"colours"`
	ColourIndicator colour.Set `json:"colour_indicator"`
	ColourCount     int        `json:"colour_count"`
	ColourSortKey   int        `json:"colour_sort_key"`
	Power           *string    `json:"power"`
	NumPower        *float64   `json:"num_power"`
	Toughness       *string    `json:"toughness"`
	NumToughness    *float64   `json:"num_toughness"`
	Loyalty         *string    `json:"loyalty"`
	NumLoyalty      *float64   `json:"num_loyalty"`
	RulesText       string     `json:"rules_text"`
	TypeLine        string     `json:"type_line"`
	Types           []string   `json:"types"`
	Subtypes        []string   `json:"subtypes"`
	Supertypes      []string   `json:"supertypes"`
	HandModifier    *string    `json:"hand_modifier"`
	LifeModifier    *string    `json:"life_modifier"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Printing represents one physical appearance of a card in a set.
type Printing struct {
	ID              int64     `json:"id"`
	CardID          int64     `json:"card_id"`
	SetID           int64     `json:"set_id"`
	RarityID        int64     `json:"rarity_id"`
	Number          string    `json:"number"`
	NumericalNumber *float64  `json:"numerical_number"`
	Artist          string    `json:"artist"`
	FlavourText     *string   `json:"flavour_text"`
	Watermark       *string   `json:"watermark"`
	FrameVersion    string    `json:"frame_version"`
	BorderColour    string    `json:"border_colour"`
	IsReprint       bool      `json:"is_reprint"`
	IsPromo         bool      `json:"is_promo"`
	ScryfallID      *string   `json:"scryfall_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Set        *set.Set    `json:"set,omitempty"`
	Rarity     *set.Rarity `json:"rarity,omitempty"`
	OwnedCount int         `json:"owned_count"`
}
