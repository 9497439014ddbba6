package service

import (
	"context"
	"time"

	"github.com/monicodev/orbidi-challenge/internal/cache"
	"github.com/monicodev/orbidi-challenge/internal/models"
)

// SearchProvider is what the caching decorator and the handlers see of the
// search pipeline.
type SearchProvider interface {
	Search(ctx context.Context, lat, lon float64, radiusM int) (*models.BusinessList, error)
}

// CompetitorProvider is what the caching decorator and the handlers see of
// the competitor pipeline.
type CompetitorProvider interface {
	Competitors(ctx context.Context, businessID string, lat, lon float64, radiusM int) (*models.CompetitorList, error)
}

// CachedSearchService wraps a SearchProvider with a cache-aside layer keyed
// by the query parameters. Two concurrent misses on the same key may both
// compute and both write; the computation is idempotent, so last write wins.
type CachedSearchService struct {
	inner SearchProvider
	store cache.Store
	ttl   time.Duration
}

// NewCachedSearchService decorates inner with a cache using the given TTL.
func NewCachedSearchService(inner SearchProvider, store cache.Store, ttl time.Duration) *CachedSearchService {
	return &CachedSearchService{inner: inner, store: store, ttl: ttl}
}

// Search serves from the cache when a fresh entry exists, otherwise runs the
// pipeline and stores the result.
func (s *CachedSearchService) Search(ctx context.Context, lat, lon float64, radiusM int) (*models.BusinessList, error) {
	key := cache.SearchKey(lat, lon, radiusM)
	return cache.GetOrCompute(ctx, s.store, key, s.ttl, func() (*models.BusinessList, error) {
		return s.inner.Search(ctx, lat, lon, radiusM)
	})
}

// CachedCompetitorService wraps a CompetitorProvider with a cache-aside
// layer. Pipeline errors, including ErrBusinessNotFound, are never cached.
type CachedCompetitorService struct {
	inner CompetitorProvider
	store cache.Store
	ttl   time.Duration
}

// NewCachedCompetitorService decorates inner with a cache using the given TTL.
func NewCachedCompetitorService(inner CompetitorProvider, store cache.Store, ttl time.Duration) *CachedCompetitorService {
	return &CachedCompetitorService{inner: inner, store: store, ttl: ttl}
}

// Competitors serves from the cache when a fresh entry exists, otherwise runs
// the pipeline and stores the result.
func (s *CachedCompetitorService) Competitors(ctx context.Context, businessID string, lat, lon float64, radiusM int) (*models.CompetitorList, error) {
	key := cache.CompetitorsKey(businessID, lat, lon, radiusM)
	return cache.GetOrCompute(ctx, s.store, key, s.ttl, func() (*models.CompetitorList, error) {
		return s.inner.Competitors(ctx, businessID, lat, lon, radiusM)
	})
}
