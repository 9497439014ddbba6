package service

import (
	"context"
	"fmt"

	"github.com/monicodev/orbidi-challenge/internal/models"
	"github.com/monicodev/orbidi-challenge/internal/scoring"
)

// SearchService ranks businesses around a point by conversion likelihood.
type SearchService struct {
	repo SearchRepository
	calc *scoring.Calculator
}

// SearchRepository is the store surface the search pipeline consumes.
type SearchRepository interface {
	ListBusinesses(ctx context.Context) ([]models.Business, error)
	TypologyStore
}

// NewSearchService creates a new search service.
func NewSearchService(repo SearchRepository, calc *scoring.Calculator) *SearchService {
	return &SearchService{repo: repo, calc: calc}
}

// Search returns the businesses within radiusM meters of (lat, lon), scored
// and sorted descending by metric.
func (s *SearchService) Search(ctx context.Context, lat, lon float64, radiusM int) (*models.BusinessList, error) {
	if err := validateSearchParams(lat, lon, radiusM); err != nil {
		return nil, err
	}

	businesses, err := s.repo.ListBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list businesses: %w", err)
	}

	ranked, err := rankByMetric(ctx, s.repo, s.calc, businesses, lat, lon, radiusM)
	if err != nil {
		return nil, err
	}

	return &models.BusinessList{Count: len(ranked), Businesses: ranked}, nil
}
