// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package parser implements the card query language.

Architecture:

  - parser: A generic backtracking recursive-descent core. Alternatives are
    attempted in order with the position restored after each failure; when
    every alternative fails, the error from the rule that consumed the most
    input wins (ties merge into one multi-rule error).
  - QueryParser (query.go): The grammar itself, producing a [param.Node]
    tree.

Parsing is pure and reentrant: a parser works over an immutable rune slice
with a single position cursor and touches nothing else.
*/
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports malformed query input: the byte position, what the
// failing rule expected and what it found instead.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s but got %s at position %d", e.Expected, e.Found, e.Pos)
}

// parser is the backtracking core. The cursor starts at -1 and always
// points at the last consumed rune.
type parser struct {
	text []rune
	pos  int
	last int
}

func (p *parser) init(text string) {
	p.text = []rune(text)
	p.pos = -1
	p.last = len(p.text) - 1
}

// found describes the rune after the cursor for error messages.
func (p *parser) found() string {
	if p.pos >= p.last {
		return "end of string"
	}
	return fmt.Sprintf("%q", string(p.text[p.pos+1]))
}

func (p *parser) errorf(expected string) *ParseError {
	return &ParseError{Pos: p.pos + 1, Expected: expected, Found: p.found()}
}

// assertEnd fails unless the whole input has been consumed.
func (p *parser) assertEnd() error {
	if p.pos < p.last {
		return p.errorf("end of string")
	}
	return nil
}

func (p *parser) eatWhitespace() {
	for p.pos < p.last && strings.ContainsRune(" \f\v\r\t\n", p.text[p.pos+1]) {
		p.pos++
	}
}

// inRanges reports whether the rune matches a character class given as
// literal characters and "a-z" style ranges.
func inRanges(char rune, chars string) bool {
	runes := []rune(chars)
	for i := 0; i < len(runes); {
		if i+2 < len(runes) && runes[i+1] == '-' {
			if runes[i] <= char && char <= runes[i+2] {
				return true
			}
			i += 3
			continue
		}
		if runes[i] == char {
			return true
		}
		i++
	}
	return false
}

// char consumes one rune from the given character class. An empty class
// accepts any rune.
func (p *parser) char(chars string) (rune, error) {
	if p.pos >= p.last {
		if chars == "" {
			return 0, p.errorf("character")
		}
		return 0, p.errorf("[" + chars + "]")
	}

	next := p.text[p.pos+1]
	if chars == "" || inRanges(next, chars) {
		p.pos++
		return next, nil
	}
	return 0, p.errorf("[" + chars + "]")
}

// maybeChar consumes one rune from the class, reporting ok false without
// moving on mismatch.
func (p *parser) maybeChar(chars string) (rune, bool) {
	char, err := p.char(chars)
	if err != nil {
		return 0, false
	}
	return char, true
}

// chars consumes the longest non-empty run of runes from the class.
func (p *parser) chars(chars string) (string, error) {
	first, err := p.char(chars)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteRune(first)
	for {
		char, ok := p.maybeChar(chars)
		if !ok {
			break
		}
		builder.WriteRune(char)
	}
	return builder.String(), nil
}

// keyword consumes any one of the given case-insensitive keywords,
// swallowing whitespace on both sides.
func (p *parser) keyword(keywords ...string) (string, error) {
	p.eatWhitespace()
	if p.pos >= p.last {
		return "", p.errorf(strings.Join(keywords, ","))
	}

	for _, keyword := range keywords {
		low := p.pos + 1
		high := low + len([]rune(keyword))
		if high > p.last+1 {
			continue
		}
		if strings.EqualFold(string(p.text[low:high]), keyword) {
			p.pos += len([]rune(keyword))
			p.eatWhitespace()
			return keyword, nil
		}
	}
	return "", p.errorf(strings.Join(keywords, ","))
}

func (p *parser) maybeKeyword(keywords ...string) (string, bool) {
	keyword, err := p.keyword(keywords...)
	if err != nil {
		return "", false
	}
	return keyword, true
}

// rule is one named alternative for match.
type rule[T any] struct {
	name  string
	parse func() (T, error)
}

// match attempts the rules in order, restoring the position after each
// failure. When every rule fails, the ParseError from the furthest position
// is returned; rules tied for furthest merge into one multi-rule error.
// Non-parse errors abort immediately without backtracking.
func match[T any](p *parser, rules ...rule[T]) (T, error) {
	var zero T
	p.eatWhitespace()

	bestPos := -1
	var bestErr *ParseError
	var bestRules []string

	for _, candidate := range rules {
		initial := p.pos
		result, err := candidate.parse()
		if err == nil {
			p.eatWhitespace()
			return result, nil
		}

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			return zero, err
		}

		p.pos = initial
		if parseErr.Pos > bestPos {
			bestPos = parseErr.Pos
			bestErr = parseErr
			bestRules = bestRules[:0]
			bestRules = append(bestRules, candidate.name)
		} else if parseErr.Pos == bestPos {
			bestRules = append(bestRules, candidate.name)
		}
	}

	if len(bestRules) == 1 && bestErr != nil {
		return zero, bestErr
	}

	found := "end of string"
	if bestPos >= 0 && bestPos <= p.last {
		found = fmt.Sprintf("%q", string(p.text[bestPos]))
	}
	return zero, &ParseError{
		Pos:      bestPos,
		Expected: strings.Join(bestRules, ","),
		Found:    found,
	}
}

// maybeMatch is match with failure reported as ok false. Non-parse errors
// still propagate.
func maybeMatch[T any](p *parser, rules ...rule[T]) (T, bool, error) {
	var zero T
	result, err := match(p, rules...)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return result, true, nil
}
