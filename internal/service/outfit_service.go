package service

import (
	"context"
	"time"

	apperrors "tryon/internal/errors"
	"tryon/internal/model"
	"tryon/internal/repository"
)

// OutfitService exposes saved-outfit operations, always scoped to an owner.
type OutfitService interface {
	ListOutfits(ctx context.Context, userID uint) ([]model.Outfit, error)
	SaveOutfit(ctx context.Context, userID uint, outfit *model.Outfit) (*model.Outfit, error)
}

type outfitService struct {
	repo    repository.OutfitRepository
	timeout time.Duration
}

// NewOutfitService builds an OutfitService.
func NewOutfitService(repo repository.OutfitRepository, timeout time.Duration) OutfitService {
	return &outfitService{repo: repo, timeout: timeout}
}

func (s *outfitService) ListOutfits(ctx context.Context, userID uint) ([]model.Outfit, error) {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outfits, err := s.repo.ListByOwner(dctx, userID)
	if err != nil {
		return nil, apperrors.WrapDependency(err)
	}
	return outfits, nil
}

func (s *outfitService) SaveOutfit(ctx context.Context, userID uint, outfit *model.Outfit) (*model.Outfit, error) {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outfit.UserID = userID
	if err := s.repo.Create(dctx, outfit); err != nil {
		return nil, apperrors.WrapDependency(err)
	}
	return outfit, nil
}
