// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/tolaria/internal/platform/constants"
	"github.com/taibuivan/tolaria/internal/platform/dberr"
)

// Service resolves user-supplied set, block, format and rarity names.
//
// # Resolution
//
// Sets resolve by exact code, then exact name, then name substring; when a
// substring matches several sets, non-promotional sets are preferred and
// anything still ambiguous is an error. Blocks resolve by their own name
// first, then through the block of an unambiguously named set. Lookups are
// cached in Redis since the same handful of entities appears in most
// queries.
type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

// NewService builds a resolution service. cache may be nil, which disables
// caching.
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListSets returns every set, newest first.
func (service *Service) ListSets(context context.Context) ([]*Set, error) {
	return service.repo.ListSets(context)
}

// GetSet returns the set with the given code.
func (service *Service) GetSet(context context.Context, code string) (*Set, error) {
	return service.repo.GetSetByCode(context, code)
}

// ResolveSet finds the one set the value names.
func (service *Service) ResolveSet(context context.Context, value string) (*Set, error) {
	cached := &Set{}
	if service.cacheGet(context, constants.RedisPrefixSet, value, cached) {
		return cached, nil
	}

	found, err := service.lookupSet(context, value)
	if err != nil {
		return nil, err
	}

	service.cachePut(context, constants.RedisPrefixSet, value, found)
	return found, nil
}

func (service *Service) lookupSet(context context.Context, value string) (*Set, error) {
	if found, err := service.repo.GetSetByCode(context, value); err == nil {
		return found, nil
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	if found, err := service.repo.GetSetByName(context, value); err == nil {
		return found, nil
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	matches, err := service.repo.FindSetsByName(context, value)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("unknown set %q", value)
	case 1:
		return matches[0], nil
	}

	var nonPromo []*Set
	for _, match := range matches {
		if match.Type != "promo" {
			nonPromo = append(nonPromo, match)
		}
	}
	if len(nonPromo) == 1 {
		return nonPromo[0], nil
	}
	return nil, fmt.Errorf("multiple sets match %q", value)
}

// ResolveBlock finds the one block the value names, either directly or
// through one of its sets.
func (service *Service) ResolveBlock(context context.Context, value string) (*Block, error) {
	cached := &Block{}
	if service.cacheGet(context, constants.RedisPrefixBlock, value, cached) {
		return cached, nil
	}

	found, err := service.lookupBlock(context, value)
	if err != nil {
		return nil, err
	}

	service.cachePut(context, constants.RedisPrefixBlock, value, found)
	return found, nil
}

func (service *Service) lookupBlock(context context.Context, value string) (*Block, error) {
	if found, err := service.repo.GetBlockByName(context, value); err == nil {
		return found, nil
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	// A set code or name identifies that set's block.
	if set, err := service.lookupSet(context, value); err == nil && set.BlockID != nil {
		return service.repo.GetBlock(context, *set.BlockID)
	}

	matches, err := service.repo.FindBlocksByName(context, value)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("unknown block %q", value)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple blocks match %q", value)
	}
}

// ResolveFormat finds the named play format; only exact names match.
func (service *Service) ResolveFormat(context context.Context, value string) (*Format, error) {
	cached := &Format{}
	if service.cacheGet(context, constants.RedisPrefixFormat, value, cached) {
		return cached, nil
	}

	found, err := service.repo.GetFormatByName(context, value)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, fmt.Errorf("format %q does not exist", value)
	}
	if err != nil {
		return nil, err
	}

	service.cachePut(context, constants.RedisPrefixFormat, value, found)
	return found, nil
}

// ResolveRarity finds a rarity by symbol or name.
func (service *Service) ResolveRarity(context context.Context, value string) (*Rarity, error) {
	cached := &Rarity{}
	if service.cacheGet(context, constants.RedisPrefixRarity, value, cached) {
		return cached, nil
	}

	found, err := service.repo.GetRarity(context, value)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, fmt.Errorf("unknown rarity %q", value)
	}
	if err != nil {
		return nil, err
	}

	service.cachePut(context, constants.RedisPrefixRarity, value, found)
	return found, nil
}

// # Cache Plumbing

func cacheKey(prefix, value string) string {
	return prefix + strings.ToLower(strings.TrimSpace(value))
}

func (service *Service) cacheGet(context context.Context, prefix, value string, target any) bool {
	if service.cache == nil {
		return false
	}

	payload, err := service.cache.Get(context, cacheKey(prefix, value)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			service.logger.Debug("catalog cache read failed", slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return false
	}
	return true
}

func (service *Service) cachePut(context context.Context, prefix, value string, entity any) {
	if service.cache == nil {
		return
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return
	}
	if err := service.cache.Set(context, cacheKey(prefix, value), payload, constants.CatalogCacheTTL).Err(); err != nil {
		service.logger.Debug("catalog cache write failed", slog.String("error", err.Error()))
	}
}
