// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package param models search parameters as a tree of typed nodes.

Architecture:

  - Node: A single search condition or an AND/OR branch. Nodes are built by
    the query parser, validated once (resolving free text to catalogue
    entities), compiled once into a [predicate.Predicate], then discarded.
  - Registry: A static keyword table mapping keywords and operand shapes to
    node constructors (registry.go).
  - Scope: Card-level versus printing-level evaluation. Printing-scoped
    leaves share one printing alias so every printing condition tests the
    same printing row; in card scope they wrap their own EXISTS subqueries.

Negation is a flag on the node, not a wrapper: it is applied to the whole
compiled predicate, so "-power>=4" includes cards with no power at all.
*/
package param

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// Parameter operators.
const (
	OpContains = ":"
	OpEq       = "="
	OpLT       = "<"
	OpLTE      = "<="
	OpGT       = ">"
	OpGTE      = ">="
)

var allOperators = []string{OpContains, OpEq, OpLT, OpLTE, OpGT, OpGTE}

// sqlOperator maps a parameter operator to its SQL comparison operator.
func sqlOperator(operator string) string {
	if operator == OpContains {
		return "="
	}
	return operator
}

// Actor identifies the signed-in user a search runs as. Ownership and deck
// usage parameters require one.
type Actor struct {
	ID       string
	Username string
}

// ResolvedSet is a catalogue set resolved during validation.
type ResolvedSet struct {
	ID          int64
	Code        string
	Name        string
	ReleaseDate time.Time
}

// ResolvedBlock is a catalogue block resolved during validation.
type ResolvedBlock struct {
	ID   int64
	Name string
}

// ResolvedFormat is a play format resolved during validation.
type ResolvedFormat struct {
	ID   int64
	Name string
}

// ResolvedRarity is a printing rarity resolved during validation.
type ResolvedRarity struct {
	ID           int64
	Name         string
	DisplayOrder int
}

// EntityResolver resolves free text to catalogue entities during leaf
// validation. Implementations report unknown or ambiguous text through the
// returned error.
type EntityResolver interface {
	ResolveSet(ctx context.Context, text string) (*ResolvedSet, error)
	ResolveBlock(ctx context.Context, text string) (*ResolvedBlock, error)
	ResolveFormat(ctx context.Context, name string) (*ResolvedFormat, error)
	ResolveRarity(ctx context.Context, text string) (*ResolvedRarity, error)
}

// Context carries the cross-cutting state of one search: the evaluation
// scope, the acting user and the entity resolver used during validation.
type Context struct {
	Scope    predicate.Scope
	Actor    *Actor
	Resolver EntityResolver
	Logger   *slog.Logger
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ValidationError reports a parameter that parsed but cannot be searched:
// an unknown entity, an unsupported operator or a missing signed-in user.
type ValidationError struct {
	Param   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(param, value, format string, args ...any) *ValidationError {
	return &ValidationError{
		Param:   param,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

// Node is one node of a parsed search tree.
type Node interface {
	// Negated reports whether the compiled predicate is complemented.
	Negated() bool
	// Negate toggles the negation flag.
	Negate()
	// DefaultScope returns the evaluation scope this node needs on its own.
	// One printing-scoped node switches the whole search to printing scope.
	DefaultScope() predicate.Scope
	// Validate resolves and checks the node's operands. It is called once,
	// before Compile, and is the only place a node may touch the catalogue.
	Validate(ctx context.Context, search *Context) error
	// Compile renders the node to a catalogue predicate. Negation is applied
	// to the whole compiled predicate here, never pushed into sub-conditions.
	Compile(search *Context) predicate.Predicate
	// Pretty returns a human-readable description, or "" for nodes that do
	// not filter (sorts).
	Pretty(search *Context) string
	// Sorts returns the sort parameters in this subtree, in query order.
	Sorts() []*SortParam
}

// leaf carries the fields common to every leaf parameter.
type leaf struct {
	name     string
	operator string
	value    string
	isRegex  bool
	negated  bool
}

func (l *leaf) Negated() bool { return l.negated }
func (l *leaf) Negate()       { l.negated = !l.negated }

func (l *leaf) DefaultScope() predicate.Scope { return predicate.ScopeCard }

func (l *leaf) Validate(context.Context, *Context) error { return nil }

func (l *leaf) Sorts() []*SortParam { return nil }

// finish applies the node's negation to its compiled predicate.
func (l *leaf) finish(pred predicate.Predicate) predicate.Predicate {
	if l.negated {
		return predicate.Not(pred)
	}
	return pred
}

// verb picks between the positive and negated phrasing for pretty output.
func (l *leaf) verb(positive, negative string) string {
	if l.negated {
		return negative
	}
	return positive
}

// # Branch Nodes

// BranchOp selects how a branch combines its children.
type BranchOp int

const (
	// OpAnd intersects the children.
	OpAnd BranchOp = iota
	// OpOr unions the children.
	OpOr
)

// Branch is an AND/OR combination of child nodes.
type Branch struct {
	Op       BranchOp
	Children []Node
	negated  bool
}

// NewAnd builds an AND branch over the given children.
func NewAnd(children ...Node) *Branch {
	return &Branch{Op: OpAnd, Children: children}
}

// NewOr builds an OR branch over the given children.
func NewOr(children ...Node) *Branch {
	return &Branch{Op: OpOr, Children: children}
}

// Add appends a child node.
func (b *Branch) Add(child Node) {
	b.Children = append(b.Children, child)
}

func (b *Branch) Negated() bool { return b.negated }
func (b *Branch) Negate()       { b.negated = !b.negated }

func (b *Branch) DefaultScope() predicate.Scope {
	for _, child := range b.Children {
		if child.DefaultScope() == predicate.ScopePrinting {
			return predicate.ScopePrinting
		}
	}
	return predicate.ScopeCard
}

func (b *Branch) Validate(ctx context.Context, search *Context) error {
	for _, child := range b.Children {
		if err := child.Validate(ctx, search); err != nil {
			return err
		}
	}
	return nil
}

func (b *Branch) Compile(search *Context) predicate.Predicate {
	if len(b.Children) == 0 {
		search.logger().Info("search branch has no children, matching nothing")
		return b.finish(predicate.Nothing())
	}

	parts := make([]predicate.Predicate, 0, len(b.Children))
	for _, child := range b.Children {
		parts = append(parts, child.Compile(search))
	}
	if b.Op == OpOr {
		return b.finish(predicate.Or(parts...))
	}
	return b.finish(predicate.And(parts...))
}

func (b *Branch) finish(pred predicate.Predicate) predicate.Predicate {
	if b.negated {
		return predicate.Not(pred)
	}
	return pred
}

func (b *Branch) Pretty(search *Context) string {
	if len(b.Children) == 1 {
		return b.Children[0].Pretty(search)
	}

	var parts []string
	for _, child := range b.Children {
		text := child.Pretty(search)
		if text == "" {
			continue
		}
		// Parenthesise nested OR groups inside an AND list.
		if inner, ok := child.(*Branch); ok && b.Op == OpAnd && inner.Op == OpOr && len(inner.Children) > 1 {
			text = "(" + text + ")"
		}
		parts = append(parts, text)
	}

	glue := " and "
	if b.Op == OpOr {
		glue = " or "
	}
	return strings.Join(parts, glue)
}

func (b *Branch) Sorts() []*SortParam {
	var sorts []*SortParam
	for _, child := range b.Children {
		sorts = append(sorts, child.Sorts()...)
	}
	return sorts
}

// # Scope Helpers
//
// The card store always exposes the card alias "c". In printing scope it
// additionally joins one printing alias "p" shared by every printing-scoped
// condition. Face and metadata conditions always correlate through their own
// EXISTS subqueries.

// facePred wraps a face condition (alias "f") in an EXISTS over the card's
// faces.
func facePred(inner predicate.Predicate) predicate.Predicate {
	return predicate.Exists(
		"cards.card_face f",
		predicate.And(predicate.NewRaw("f.cardid = c.id"), inner),
	)
}

// faceMetaPred wraps a condition over a face (alias "f") and its search
// metadata (alias "fm") in a single EXISTS, so every symbol condition tests
// the same face.
func faceMetaPred(inner predicate.Predicate) predicate.Predicate {
	return predicate.Exists(
		"cards.card_face f JOIN cards.card_face_metadata fm ON fm.faceid = f.id",
		predicate.And(predicate.NewRaw("f.cardid = c.id"), inner),
	)
}

// cardMetaPred wraps a condition over the card metadata record (alias "cm").
func cardMetaPred(inner predicate.Predicate) predicate.Predicate {
	return predicate.Exists(
		"cards.card_metadata cm",
		predicate.And(predicate.NewRaw("cm.cardid = c.id"), inner),
	)
}

// printingPred wraps a printing condition (alias "p"). In printing scope the
// condition applies to the shared printing row; in card scope it gets its
// own EXISTS.
func printingPred(search *Context, inner predicate.Predicate) predicate.Predicate {
	if search.Scope == predicate.ScopePrinting {
		return inner
	}
	return predicate.Exists(
		"cards.card_printing p",
		predicate.And(predicate.NewRaw("p.cardid = c.id"), inner),
	)
}

// printingSetPred wraps a condition over a printing (alias "p") and its set
// (alias "cs").
func printingSetPred(search *Context, inner predicate.Predicate) predicate.Predicate {
	if search.Scope == predicate.ScopePrinting {
		return predicate.Exists(
			"cards.card_set cs",
			predicate.And(predicate.NewRaw("cs.id = p.setid"), inner),
		)
	}
	return predicate.Exists(
		"cards.card_printing p JOIN cards.card_set cs ON cs.id = p.setid",
		predicate.And(predicate.NewRaw("p.cardid = c.id"), inner),
	)
}
