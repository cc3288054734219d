// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package param

import (
	"fmt"

	"github.com/taibuivan/tolaria/internal/search/predicate"
)

// TypeParam matches against a face's types, subtypes and supertypes at once.
type TypeParam struct {
	leaf
}

func newTypeParam(args Args) (Node, error) {
	return &TypeParam{
		leaf: leaf{name: "type", operator: args.Operator, value: args.Value},
	}, nil
}

// newTokenParam routes "is:token" to a type search for the Token supertype.
func newTokenParam(args Args) (Node, error) {
	return &TypeParam{
		leaf: leaf{name: "type", operator: OpEq, value: "token"},
	}, nil
}

func (p *TypeParam) Compile(search *Context) predicate.Predicate {
	if p.operator == OpEq {
		return p.finish(facePred(predicate.Or(
			predicate.NewRaw("? ILIKE ANY(f.types)", p.value),
			predicate.NewRaw("? ILIKE ANY(f.subtypes)", p.value),
			predicate.NewRaw("? ILIKE ANY(f.supertypes)", p.value),
		)))
	}

	return p.finish(facePred(predicate.NewRaw(
		"EXISTS (SELECT 1 FROM unnest(f.types || f.subtypes || f.supertypes) AS facetype(name)"+
			" WHERE facetype.name ILIKE ?)",
		contains(p.value),
	)))
}

func (p *TypeParam) Pretty(search *Context) string {
	var inclusion string
	if p.operator == OpEq {
		inclusion = p.verb("match", "don't match")
	} else {
		inclusion = p.verb("include", "exclude")
	}
	return fmt.Sprintf("the card types %s %q", inclusion, p.value)
}
