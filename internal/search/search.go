// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search executes card searches: it parses the query text into a
parameter tree, validates it against the catalogue, compiles it to SQL
predicates and runs the paged query with its prefetches.
*/
package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/tolaria/internal/core/card"
	"github.com/taibuivan/tolaria/internal/core/set"
	"github.com/taibuivan/tolaria/internal/platform/apperr"
	"github.com/taibuivan/tolaria/internal/search/param"
	"github.com/taibuivan/tolaria/internal/search/parser"
	"github.com/taibuivan/tolaria/pkg/pagination"
	"github.com/taibuivan/tolaria/pkg/slice"
)

// ButtonSpan is how many page links are shown either side of the current
// page in the navigation row.
const ButtonSpan = 3

type Service struct {
	cards    card.Repository
	resolver param.EntityResolver
	logger   *slog.Logger
}

func NewService(cards card.Repository, sets *set.Service, logger *slog.Logger) *Service {
	return &Service{
		cards:    cards,
		resolver: &catalogResolver{sets: sets},
		logger:   logger,
	}
}

// Request is one search to execute. Actor is nil for anonymous searches.
type Request struct {
	Query string
	Page  pagination.Params
	Actor *param.Actor
}

// Result pairs a matched card with the printing chosen to display it.
type Result struct {
	Card             *card.Card     `json:"card"`
	SelectedPrinting *card.Printing `json:"selected_printing,omitempty"`
}

// Page is one page of search results.
type Page struct {
	Results     []*Result           `json:"results"`
	Meta        pagination.Meta     `json:"meta"`
	Buttons     []pagination.Button `json:"buttons"`
	Description string              `json:"description"`
}

// Search parses, validates and runs one card search.
//
// Parse and validation failures surface as [apperr.AppError] validation
// errors so the handler can return them verbatim.
func (service *Service) Search(context context.Context, request Request) (*Page, error) {
	root, err := parser.Parse(request.Query)
	if err != nil {
		return nil, translate(err)
	}

	search := &param.Context{
		Actor:    request.Actor,
		Resolver: service.resolver,
		Logger:   service.logger,
	}
	if err := root.Validate(context, search); err != nil {
		return nil, translate(err)
	}
	search.Scope = root.DefaultScope()

	pred := root.Compile(search)
	orderBy := orderClauses(root, search)

	total, err := service.cards.Count(context, pred, search.Scope)
	if err != nil {
		return nil, err
	}

	cards, err := service.cards.Search(context, pred, search.Scope, orderBy,
		request.Page.Limit, request.Page.Offset())
	if err != nil {
		return nil, err
	}

	if err := service.attach(context, cards, request.Actor); err != nil {
		return nil, err
	}

	service.logger.Debug("search_executed",
		"query", request.Query,
		"scope", search.Scope.String(),
		"total", total,
		"page", request.Page.Page,
	)

	meta := pagination.NewMeta(request.Page.Page, request.Page.Limit, total)
	page := &Page{
		Results:     results(cards, requestedSet(root)),
		Meta:        meta,
		Buttons:     pagination.Buttons(meta.TotalPages, meta.Page, ButtonSpan),
		Description: root.Pretty(search),
	}
	return page, nil
}

func (service *Service) attach(context context.Context, cards []*card.Card, actor *param.Actor) error {
	if err := service.cards.AttachFaces(context, cards); err != nil {
		return err
	}
	if err := service.cards.AttachPrintings(context, cards); err != nil {
		return err
	}
	if actor != nil {
		return service.cards.AttachOwnership(context, cards, actor.ID)
	}
	return nil
}

// orderClauses renders the query's sort parameters, ending with the name
// tie-breaker so equal-keyed cards keep a stable order.
func orderClauses(root param.Node, search *param.Context) []string {
	var clauses []string
	for _, sort := range root.Sorts() {
		clauses = append(clauses, sort.OrderBy(search)...)
	}
	return append(clauses, "c.name ASC")
}

// requestedSet returns the first set the query asked for, if any. The
// matching printing from that set is preferred for display.
func requestedSet(node param.Node) *param.ResolvedSet {
	switch n := node.(type) {
	case *param.Branch:
		for _, child := range n.Children {
			if found := requestedSet(child); found != nil {
				return found
			}
		}
	case *param.SetParam:
		if !n.Negated() {
			return n.Set()
		}
	}
	return nil
}

func results(cards []*card.Card, requested *param.ResolvedSet) []*Result {
	return slice.Map(cards, func(c *card.Card) *Result {
		return &Result{Card: c, SelectedPrinting: selectPrinting(c, requested)}
	})
}

// selectPrinting picks the printing shown for a card: the one from the
// requested set when the query named one, otherwise the most recent
// non-promo printing, otherwise the most recent printing. Printings arrive
// sorted by release date ascending.
func selectPrinting(c *card.Card, requested *param.ResolvedSet) *card.Printing {
	if len(c.Printings) == 0 {
		return nil
	}

	if requested != nil {
		for _, printing := range c.Printings {
			if printing.SetID == requested.ID {
				return printing
			}
		}
	}

	for i := len(c.Printings) - 1; i >= 0; i-- {
		if !c.Printings[i].IsPromo {
			return c.Printings[i]
		}
	}
	return c.Printings[len(c.Printings)-1]
}

// translate maps parse and validation failures onto API errors.
func translate(err error) error {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return apperr.ValidationError(parseErr.Error())
	}
	var validationErr *param.ValidationError
	if errors.As(err, &validationErr) {
		return apperr.ValidationError(validationErr.Error())
	}
	return err
}
