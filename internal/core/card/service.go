// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"context"
	"log/slog"
)

// Service serves single-card reads with their faces and printings attached.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetCard loads one card with faces and printings. A non-empty viewerID
// additionally attaches that user's owned counts.
func (service *Service) GetCard(context context.Context, id int64, viewerID string) (*Card, error) {
	found, err := service.repo.GetCard(context, id)
	if err != nil {
		return nil, err
	}
	return service.load(context, found, viewerID)
}

// GetCardBySlug is GetCard addressed by URL slug.
func (service *Service) GetCardBySlug(context context.Context, slug string, viewerID string) (*Card, error) {
	found, err := service.repo.GetCardBySlug(context, slug)
	if err != nil {
		return nil, err
	}
	return service.load(context, found, viewerID)
}

func (service *Service) load(context context.Context, found *Card, viewerID string) (*Card, error) {
	cards := []*Card{found}
	if err := service.repo.AttachFaces(context, cards); err != nil {
		return nil, err
	}
	if err := service.repo.AttachPrintings(context, cards); err != nil {
		return nil, err
	}
	if viewerID != "" {
		if err := service.repo.AttachOwnership(context, cards, viewerID); err != nil {
			return nil, err
		}
	}
	return found, nil
}
