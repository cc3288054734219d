// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how the resulting metadata is delivered in the API response envelope, and
// how the row of page buttons rendered by search clients is derived.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 25
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}

// # Page Buttons

// Button describes one entry in the page-navigation row of a result list.
//
// A button is either a numbered page link, the previous/next arrow, or a
// disabled spacer standing in for an elided page range.
type Button struct {
	// Number is the 1-indexed target page. Zero for spacer buttons.
	Number int `json:"number,omitempty"`
	// Enabled is false for spacers and for prev/next at the boundary.
	Enabled bool `json:"enabled"`
	// Active marks the button for the page currently shown.
	Active bool `json:"active,omitempty"`
	// IsPrevious and IsNext mark the arrow buttons.
	IsPrevious bool `json:"is_previous,omitempty"`
	IsNext     bool `json:"is_next,omitempty"`
	// IsSpacer marks the "…" placeholder between elided ranges.
	IsSpacer bool `json:"is_spacer,omitempty"`
}

// Buttons derives the page-navigation row for a result set.
//
// The row contains every page within span of currentPage, anchored by the
// first and last pages (with spacers) when the window does not reach them,
// and wrapped in previous/next arrows. The function is pure: it never emits a
// page number outside [1, totalPages].
func Buttons(totalPages, currentPage, span int) []Button {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	} else if currentPage > totalPages {
		currentPage = totalPages
	}

	var buttons []Button
	for page := 1; page <= totalPages; page++ {
		if abs(page-currentPage) <= span {
			buttons = append(buttons, Button{
				Number:  page,
				Enabled: true,
				Active:  page == currentPage,
			})
		}
	}

	// Anchor the start with page 1 and a spacer when the window starts late.
	if currentPage-span > 1 {
		buttons = append([]Button{
			{Number: 1, Enabled: true},
			{IsSpacer: true},
		}, buttons...)
	}

	// Anchor the end with a spacer and the last page when the window ends early.
	if currentPage+span <= totalPages-2 {
		buttons = append(buttons, Button{IsSpacer: true})
	}
	if currentPage+span <= totalPages-1 {
		buttons = append(buttons, Button{Number: totalPages, Enabled: true})
	}

	previous := Button{
		Number:     max(currentPage-1, 1),
		Enabled:    currentPage != 1,
		IsPrevious: true,
	}
	next := Button{
		Number:  min(currentPage+1, totalPages),
		Enabled: currentPage != totalPages,
		IsNext:  true,
	}

	buttons = append([]Button{previous}, buttons...)
	return append(buttons, next)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
