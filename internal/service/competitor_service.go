package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/monicodev/orbidi-challenge/internal/models"
	"github.com/monicodev/orbidi-challenge/internal/repository"
	"github.com/monicodev/orbidi-challenge/internal/scoring"
)

// CompetitorService finds and ranks the same-sector competitors of a
// reference business.
type CompetitorService struct {
	repo CompetitorRepository
	calc *scoring.Calculator
}

// CompetitorRepository is the store surface competitor resolution consumes.
type CompetitorRepository interface {
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	ListBusinessesBySectorPrefix(ctx context.Context, prefix, excludeID string) ([]models.Business, error)
	TypologyStore
}

// NewCompetitorService creates a new competitor service.
func NewCompetitorService(repo CompetitorRepository, calc *scoring.Calculator) *CompetitorService {
	return &CompetitorService{repo: repo, calc: calc}
}

// Competitors resolves the reference business by id, selects every other
// business sharing its broad-sector prefix (first two characters of the IAE
// code) and ranks those within radiusM of the caller-supplied origin, which
// may differ from the reference business's own coordinates. Returns
// ErrBusinessNotFound when the id does not exist.
func (s *CompetitorService) Competitors(ctx context.Context, businessID string, lat, lon float64, radiusM int) (*models.CompetitorList, error) {
	if err := validateSearchParams(lat, lon, radiusM); err != nil {
		return nil, err
	}

	reference, err := s.repo.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("service: failed to get business: %w", err)
	}

	prefix := reference.IAECode
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	candidates, err := s.repo.ListBusinessesBySectorPrefix(ctx, prefix, reference.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list competitors: %w", err)
	}

	ranked, err := rankByMetric(ctx, s.repo, s.calc, candidates, lat, lon, radiusM)
	if err != nil {
		return nil, err
	}

	return &models.CompetitorList{Count: len(ranked), Competitors: ranked}, nil
}
