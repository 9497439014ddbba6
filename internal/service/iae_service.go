package service

import (
	"context"
	"fmt"

	"github.com/monicodev/orbidi-challenge/internal/models"
)

// IAEService manages IAE typology values used by the scoring metric.
type IAEService struct {
	repo IAERepository
}

// IAERepository is the store surface for typology upserts.
type IAERepository interface {
	UpsertIAECategory(ctx context.Context, code string, value int) (*models.IAECategory, error)
}

// NewIAEService creates a new IAE service.
func NewIAEService(repo IAERepository) *IAEService {
	return &IAEService{repo: repo}
}

// Upsert stores the typology value for an IAE code. Cached search results
// are not invalidated; stale scores persist until the cache TTL runs out.
func (s *IAEService) Upsert(ctx context.Context, code string, value int) (*models.IAECategory, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty iae code", ErrInvalidInput)
	}
	if value < 1 || value > 1000 {
		return nil, fmt.Errorf("%w: valor_tipologia out of range: %d", ErrInvalidInput, value)
	}

	cat, err := s.repo.UpsertIAECategory(ctx, code, value)
	if err != nil {
		return nil, fmt.Errorf("service: failed to upsert iae category: %w", err)
	}

	return cat, nil
}
