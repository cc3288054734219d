// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package predicate models catalogue filters as composable SQL condition trees.

Architecture:

  - Predicate: A node that renders itself to a SQL condition string while
    registering its bound values with a shared [Binder].
  - Combinators: And, Or, Not map directly onto set intersection, union and
    difference over the card universe.
  - Nothing/Everything: Degenerate predicates for empty branches.

Predicates are built per request by the parameter model, rendered exactly once
by the card store, and then discarded. They hold no connection state and are
safe to build concurrently.
*/
package predicate

import (
	"fmt"
	"strings"
)

// Placeholder is the token used in raw condition fragments. Each occurrence
// is replaced by the next positional PostgreSQL placeholder at render time.
const Placeholder = "?"

// Scope selects the evaluation level of a search.
//
// Card-level predicates reference the card alias "c" and wrap printing
// conditions in their own EXISTS subqueries. Printing-level predicates share
// a single printing alias "p" joined by the store, so that every
// printing-scoped condition tests the same printing row.
type Scope int

const (
	// ScopeCard evaluates conditions per card.
	ScopeCard Scope = iota
	// ScopePrinting evaluates conditions per printing.
	ScopePrinting
)

func (s Scope) String() string {
	if s == ScopePrinting {
		return "printing"
	}
	return "card"
}

// Binder collects bound values during rendering and hands out their
// positional placeholders.
//
// # Concurrency
//
// A Binder is single use and not safe for concurrent rendering. The card
// store creates one per executed query.
type Binder struct {
	values []any
}

// Bind registers a value and returns its "$n" placeholder.
func (b *Binder) Bind(value any) string {
	b.values = append(b.values, value)
	return fmt.Sprintf("$%d", len(b.values))
}

// Next returns the placeholder the next Bind call would produce, without
// binding anything. Used by stores appending LIMIT/OFFSET clauses.
func (b *Binder) Next() string {
	return fmt.Sprintf("$%d", len(b.values)+1)
}

// Values returns the bound values in placeholder order.
func (b *Binder) Values() []any {
	return b.values
}

// Predicate is a renderable SQL condition.
type Predicate interface {
	// SQL renders the condition, registering bound values with the binder.
	// The returned string is always safe to embed without additional
	// parenthesisation.
	SQL(binder *Binder) string
}

// # Raw Conditions

type raw struct {
	format string
	values []any
}

// NewRaw builds a predicate from a SQL fragment.
//
// Each [Placeholder] occurrence in format is bound to the corresponding
// entry of values, in order.
func NewRaw(format string, values ...any) Predicate {
	return raw{format: format, values: values}
}

func (r raw) SQL(binder *Binder) string {
	var builder strings.Builder
	rest := r.format
	for _, value := range r.values {
		head, tail, found := strings.Cut(rest, Placeholder)
		if !found {
			break
		}
		builder.WriteString(head)
		builder.WriteString(binder.Bind(value))
		rest = tail
	}
	builder.WriteString(rest)
	return "(" + builder.String() + ")"
}

// # Degenerate Predicates

type nothing struct{}
type everything struct{}

// Nothing matches no card. Empty AND/OR branches compile to it.
func Nothing() Predicate { return nothing{} }

// Everything matches every card.
func Everything() Predicate { return everything{} }

func (nothing) SQL(*Binder) string    { return "FALSE" }
func (everything) SQL(*Binder) string { return "TRUE" }

// # Combinators

type junction struct {
	glue     string
	children []Predicate
}

// And intersects its children. With no children it matches nothing.
func And(children ...Predicate) Predicate {
	return newJunction(" AND ", children)
}

// Or unions its children. With no children it matches nothing.
func Or(children ...Predicate) Predicate {
	return newJunction(" OR ", children)
}

func newJunction(glue string, children []Predicate) Predicate {
	if len(children) == 0 {
		return Nothing()
	}
	if len(children) == 1 {
		return children[0]
	}
	return junction{glue: glue, children: children}
}

func (j junction) SQL(binder *Binder) string {
	parts := make([]string, len(j.children))
	for i, child := range j.children {
		parts[i] = child.SQL(binder)
	}
	return "(" + strings.Join(parts, j.glue) + ")"
}

type negation struct {
	inner Predicate
}

// Not complements the whole inner predicate. Applied after compilation so
// that rows failing the positive test for any reason, including absent
// attributes, are included in the complement.
func Not(inner Predicate) Predicate {
	// Double negation unwraps.
	if n, ok := inner.(negation); ok {
		return n.inner
	}
	return negation{inner: inner}
}

func (n negation) SQL(binder *Binder) string {
	return "NOT " + n.inner.SQL(binder)
}

// # Subqueries

type exists struct {
	from  string
	where Predicate
}

// Exists renders an EXISTS subquery over from, correlated by the where
// predicate (e.g. Exists("cards.card_face f", NewRaw("f.card_id = c.id"))).
func Exists(from string, where Predicate) Predicate {
	return exists{from: from, where: where}
}

func (e exists) SQL(binder *Binder) string {
	return "EXISTS (SELECT 1 FROM " + e.from + " WHERE " + e.where.SQL(binder) + ")"
}
