// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"

	"github.com/taibuivan/tolaria/internal/core/set"
	"github.com/taibuivan/tolaria/internal/search/param"
)

// catalogResolver adapts the catalogue set service to the resolver interface
// the parameter tree validates against.
type catalogResolver struct {
	sets *set.Service
}

func (resolver *catalogResolver) ResolveSet(ctx context.Context, text string) (*param.ResolvedSet, error) {
	found, err := resolver.sets.ResolveSet(ctx, text)
	if err != nil {
		return nil, err
	}
	return &param.ResolvedSet{
		ID:          found.ID,
		Code:        found.Code,
		Name:        found.Name,
		ReleaseDate: found.ReleaseDate,
	}, nil
}

func (resolver *catalogResolver) ResolveBlock(ctx context.Context, text string) (*param.ResolvedBlock, error) {
	found, err := resolver.sets.ResolveBlock(ctx, text)
	if err != nil {
		return nil, err
	}
	return &param.ResolvedBlock{ID: found.ID, Name: found.Name}, nil
}

func (resolver *catalogResolver) ResolveFormat(ctx context.Context, name string) (*param.ResolvedFormat, error) {
	found, err := resolver.sets.ResolveFormat(ctx, name)
	if err != nil {
		return nil, err
	}
	return &param.ResolvedFormat{ID: found.ID, Name: found.Name}, nil
}

func (resolver *catalogResolver) ResolveRarity(ctx context.Context, text string) (*param.ResolvedRarity, error) {
	found, err := resolver.sets.ResolveRarity(ctx, text)
	if err != nil {
		return nil, err
	}
	return &param.ResolvedRarity{
		ID:           found.ID,
		Name:         found.Name,
		DisplayOrder: found.DisplayOrder,
	}, nil
}
