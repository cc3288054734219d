// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import "context"

type Repository interface {
	ListSets(context context.Context) ([]*Set, error)
	GetSetByCode(context context.Context, code string) (*Set, error)
	GetSetByName(context context.Context, name string) (*Set, error)
	FindSetsByName(context context.Context, fragment string) ([]*Set, error)
	GetBlockByName(context context.Context, name string) (*Block, error)
	FindBlocksByName(context context.Context, fragment string) ([]*Block, error)
	GetBlock(context context.Context, id int64) (*Block, error)
	GetFormatByName(context context.Context, name string) (*Format, error)
	GetRarity(context context.Context, value string) (*Rarity, error)
}
