// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"fmt"
	"strings"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// NameParam matches against the card name. A bare word or quoted string with
// no keyword parses to a name-contains parameter.
type NameParam struct {
	leaf
	exact bool
}

// NewNameContains builds the default parameter for a bare search word. The
// word is kept verbatim; matching is case-insensitive at the SQL level.
func NewNameContains(value string) *NameParam {
	node, _ := newNameParam(Args{Keyword: "name", Operator: OpContains, Value: value})
	return node.(*NameParam)
}

func newNameParam(args Args) (Node, error) {
	param := &NameParam{
		leaf: leaf{
			name:     "name",
			operator: args.Operator,
			value:    args.Value,
			isRegex:  args.IsRegex,
		},
		exact: args.Operator == OpEq,
	}

	// A leading "!" forces an exact match even under ":".
	if strings.HasPrefix(param.value, "!") {
		param.exact = true
		param.value = param.value[1:]
	}
	if !param.isRegex && strings.HasPrefix(param.value, "/") && strings.HasSuffix(param.value, "/") && len(param.value) > 1 {
		param.isRegex = true
		param.value = strings.Trim(param.value, "/")
	}
	return param, nil
}

func (p *NameParam) Compile(search *Context) predicate.Predicate {
	switch {
	case p.isRegex && p.exact:
		return p.finish(predicate.NewRaw("c.name ~* ?", "^"+p.value+"$"))
	case p.isRegex:
		return p.finish(predicate.NewRaw("c.name ~* ?", p.value))
	case p.exact:
		return p.finish(predicate.NewRaw("LOWER(c.name) = ?", strings.ToLower(p.value)))
	case p.operator == OpContains:
		return p.finish(predicate.NewRaw("c.name ILIKE ?", contains(p.value)))
	default:
		// Lexicographic comparison for the ordering operators.
		return p.finish(predicate.NewRaw("LOWER(c.name) "+sqlOperator(p.operator)+" ?", strings.ToLower(p.value)))
	}
}

func (p *NameParam) Pretty(search *Context) string {
	return fmt.Sprintf("the name %s %q", p.verb("contains", "does not contain"), p.value)
}

// contains wraps a value in ILIKE wildcards, escaping any user-supplied
// pattern characters.
func contains(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(value)
	return "%" + escaped + "%"
}
