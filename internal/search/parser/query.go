// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/param"
)

// Grammar:
//
//	query      := or_group
//	or_group   := and_group ( "or" and_group )*
//	and_group  := term ( ["and"] term )*
//	term       := "-"? ( "(" or_group ")" | parameter )
//	parameter  := keyword operator value | quoted_string | bare_word
//
// Juxtaposed terms imply AND. A bare word or quoted string parses to a
// name-contains parameter. "-" negates the following atom.

// paramTypeChars are the characters allowed in a parameter keyword.
const paramTypeChars = "a-zA-Z0-9"

// operatorChars are the characters operators are built from.
const operatorChars = ":<>="

// unquotedStop ends an unquoted operand: whitespace, parentheses and double
// quotes. Apostrophes stay, card names use them.
const unquotedStop = " \f\v\r\t\n()\""

// QueryParser parses one card query string.
type QueryParser struct {
	parser
}

// Parse parses a full query into a parameter tree. Malformed input fails
// with a [*ParseError]; a recognised keyword with a bad operand fails with
// a [*param.ValidationError].
func Parse(text string) (param.Node, error) {
	queryParser := &QueryParser{}
	queryParser.init(text)

	root, err := queryParser.orGroup()
	if err != nil {
		return nil, err
	}
	if err := queryParser.assertEnd(); err != nil {
		return nil, err
	}
	return root, nil
}

func (p *QueryParser) orGroup() (param.Node, error) {
	subgroup, err := match(&p.parser, rule[param.Node]{"and_group", p.andGroup})
	if err != nil {
		return nil, err
	}

	var group *param.Branch
	for {
		if _, ok := p.maybeKeyword("or"); !ok {
			break
		}

		next, err := match(&p.parser, rule[param.Node]{"and_group", p.andGroup})
		if err != nil {
			return nil, err
		}
		if group == nil {
			group = param.NewOr(subgroup)
		}
		group.Add(next)
	}

	if group != nil {
		return group, nil
	}
	return subgroup, nil
}

func (p *QueryParser) andGroup() (param.Node, error) {
	result, err := match(&p.parser, rule[param.Node]{"parameter_group", p.parameterGroup})
	if err != nil {
		return nil, err
	}

	var group *param.Branch
	for {
		p.maybeKeyword("and")
		next, ok, err := maybeMatch(&p.parser, rule[param.Node]{"parameter_group", p.parameterGroup})
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if group == nil {
			group = param.NewAnd(result)
		}
		group.Add(next)
	}

	if group != nil {
		return group, nil
	}
	return result, nil
}

func (p *QueryParser) parameterGroup() (param.Node, error) {
	_, negated := p.maybeChar("-")

	if _, ok := p.maybeKeyword("("); ok {
		group, err := match(&p.parser, rule[param.Node]{"or_group", p.orGroup})
		if err != nil {
			return nil, err
		}
		if _, err := p.keyword(")"); err != nil {
			return nil, err
		}
		if negated {
			group.Negate()
		}
		return group, nil
	}

	parameter, err := match(&p.parser,
		rule[param.Node]{"word_group_parameter", p.wordGroupParameter},
		rule[param.Node]{"quoted_name_parameter", p.quotedNameParameter},
		rule[param.Node]{"regex_parameter", p.regexParameter},
		rule[param.Node]{"normal_parameter", p.normalParameter},
		rule[param.Node]{"unquoted_name_parameter", p.unquotedNameParameter},
	)
	if err != nil {
		return nil, err
	}
	if negated {
		parameter.Negate()
	}
	return parameter, nil
}

func (p *QueryParser) paramType() (string, error) {
	keyword, err := p.chars(paramTypeChars)
	if err != nil {
		return "", err
	}
	return strings.ToLower(keyword), nil
}

func (p *QueryParser) operator() (string, error) {
	return p.chars(operatorChars)
}

// normalParameter parses "keyword operator value".
func (p *QueryParser) normalParameter() (param.Node, error) {
	keyword, err := p.paramType()
	if err != nil {
		return nil, err
	}
	operator, err := p.operator()
	if err != nil {
		return nil, err
	}
	value, err := match(&p.parser,
		rule[string]{"quoted_string", p.quotedString},
		rule[string]{"unquoted_complex", p.unquotedComplex},
	)
	if err != nil {
		return nil, err
	}
	return param.Build(param.Args{Keyword: keyword, Operator: operator, Value: value})
}

// regexParameter parses "keyword operator /regex/".
func (p *QueryParser) regexParameter() (param.Node, error) {
	keyword, err := p.paramType()
	if err != nil {
		return nil, err
	}
	operator, err := p.operator()
	if err != nil {
		return nil, err
	}
	value, err := p.regexString()
	if err != nil {
		return nil, err
	}
	return param.Build(param.Args{Keyword: keyword, Operator: operator, Value: value, IsRegex: true})
}

// quotedNameParameter parses a bare quoted string as a name search.
func (p *QueryParser) quotedNameParameter() (param.Node, error) {
	value, err := p.quotedString()
	if err != nil {
		return nil, err
	}
	return param.Build(param.Args{Keyword: "name", Operator: ":", Value: value})
}

// unquotedNameParameter parses a bare word as a name search.
func (p *QueryParser) unquotedNameParameter() (param.Node, error) {
	start := p.pos
	value, err := p.unquotedComplex()
	if err != nil {
		return nil, err
	}
	if lower := strings.ToLower(value); lower == "or" || lower == "and" {
		return nil, &ParseError{
			Pos:      start + 1,
			Expected: "a parameter",
			Found:    strconv.Quote(value),
		}
	}
	return param.Build(param.Args{Keyword: "name", Operator: ":", Value: value})
}

// wordGroupParameter parses "keyword operator (word word)" as an AND of one
// parameter per word, or "keyword operator [word word]" as an OR.
func (p *QueryParser) wordGroupParameter() (param.Node, error) {
	keyword, err := p.paramType()
	if err != nil {
		return nil, err
	}
	operator, err := p.operator()
	if err != nil {
		return nil, err
	}

	var group *param.Branch
	values, ok, err := maybeMatch(&p.parser, rule[[]string]{"or_word_group", p.orWordGroup})
	if err != nil {
		return nil, err
	}
	if ok {
		group = param.NewOr()
	} else {
		values, err = match(&p.parser, rule[[]string]{"and_word_group", p.andWordGroup})
		if err != nil {
			return nil, err
		}
		group = param.NewAnd()
	}

	for _, value := range values {
		node, err := param.Build(param.Args{Keyword: keyword, Operator: operator, Value: value})
		if err != nil {
			return nil, err
		}
		group.Add(node)
	}
	return group, nil
}

// # Value Rules

// quotedString parses a single- or double-quoted string, supporting the
// control escapes, \\, escaped quotes and \uXXXX code points.
func (p *QueryParser) quotedString() (string, error) {
	quote, err := p.char(`"'`)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for {
		char, err := p.char("")
		if err != nil {
			return "", p.errorf(fmt.Sprintf("closing %q", string(quote)))
		}
		if char == quote {
			return builder.String(), nil
		}
		if char != '\\' {
			builder.WriteRune(char)
			continue
		}

		escape, err := p.char("")
		if err != nil {
			return "", p.errorf("escape sequence")
		}
		switch escape {
		case 'b':
			builder.WriteRune('\b')
		case 'f':
			builder.WriteRune('\f')
		case 'n':
			builder.WriteRune('\n')
		case 'r':
			builder.WriteRune('\r')
		case 't':
			builder.WriteRune('\t')
		case 'u':
			code, err := p.hex4()
			if err != nil {
				return "", err
			}
			builder.WriteRune(code)
		default:
			builder.WriteRune(escape)
		}
	}
}

func (p *QueryParser) hex4() (rune, error) {
	var digits strings.Builder
	for i := 0; i < 4; i++ {
		digit, err := p.char("0-9a-fA-F")
		if err != nil {
			return 0, err
		}
		digits.WriteRune(digit)
	}
	code, err := strconv.ParseUint(digits.String(), 16, 32)
	if err != nil {
		return 0, p.errorf("unicode escape")
	}
	return rune(code), nil
}

// regexString parses a /-delimited regular expression, keeping escaped
// slashes.
func (p *QueryParser) regexString() (string, error) {
	if _, err := p.char("/"); err != nil {
		return "", err
	}

	var builder strings.Builder
	for {
		char, err := p.char("")
		if err != nil {
			return "", p.errorf(`closing "/"`)
		}
		if char == '/' {
			return builder.String(), nil
		}
		if char == '\\' {
			if next, ok := p.maybeChar("/"); ok {
				builder.WriteRune(next)
				continue
			}
			builder.WriteRune(char)
			continue
		}
		builder.WriteRune(char)
	}
}

// unquotedComplex parses a run of anything but whitespace and parentheses.
// A leading quote fails so that a malformed quoted string reports the quote
// instead of silently matching it as text.
func (p *QueryParser) unquotedComplex() (string, error) {
	if p.pos < p.last && strings.ContainsRune(`"'`, p.text[p.pos+1]) {
		return "", p.errorf("a value")
	}
	var builder strings.Builder
	for {
		if p.pos >= p.last {
			break
		}
		next := p.text[p.pos+1]
		if strings.ContainsRune(unquotedStop, next) {
			break
		}
		p.pos++
		builder.WriteRune(next)
	}
	if builder.Len() == 0 {
		return "", p.errorf("a value")
	}
	return builder.String(), nil
}

func (p *QueryParser) andWordGroup() ([]string, error) {
	return p.wordGroup('(', ')')
}

func (p *QueryParser) orWordGroup() ([]string, error) {
	return p.wordGroup('[', ']')
}

// wordGroup parses a bracketed, space-separated word list.
func (p *QueryParser) wordGroup(opening, closing rune) ([]string, error) {
	if _, err := p.char(string(opening)); err != nil {
		return nil, err
	}

	var words []string
	var current strings.Builder
	for {
		char, err := p.char("")
		if err != nil {
			return nil, p.errorf(fmt.Sprintf("closing %q", string(closing)))
		}
		if char == ' ' || char == closing {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			if char == closing {
				return words, nil
			}
			continue
		}
		current.WriteRune(char)
	}
}
