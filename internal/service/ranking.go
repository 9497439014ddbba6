package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/monicodev/orbidi-challenge/internal/geo"
	"github.com/monicodev/orbidi-challenge/internal/models"
	"github.com/monicodev/orbidi-challenge/internal/scoring"
)

// ErrInvalidInput marks a request that fails the core's domain constraints
// (out-of-range coordinates, negative radius, typology bounds).
var ErrInvalidInput = errors.New("service: invalid input")

// ErrBusinessNotFound is returned when a referenced business id does not
// exist.
var ErrBusinessNotFound = errors.New("service: business not found")

// TypologyStore batch-resolves typology values for IAE codes.
type TypologyStore interface {
	GetTypologies(ctx context.Context, codes []string) (map[string]int, error)
}

func validateSearchParams(lat, lon float64, radiusM int) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude out of range: %f", ErrInvalidInput, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude out of range: %f", ErrInvalidInput, lon)
	}
	if radiusM < 0 {
		return fmt.Errorf("%w: negative radius: %d", ErrInvalidInput, radiusM)
	}
	return nil
}

// rankByMetric runs the scoring pipeline over a candidate set: keep
// candidates within radiusM of the origin (boundary inclusive), batch-resolve
// the survivors' typology values, score each one and sort descending by
// metric. The sort is stable, so exact ties keep the filter's output order.
func rankByMetric(ctx context.Context, store TypologyStore, calc *scoring.Calculator, candidates []models.Business, lat, lon float64, radiusM int) ([]models.ScoredBusiness, error) {
	nearby := []models.ScoredBusiness{}
	var codes []string
	seen := make(map[string]struct{})

	for _, b := range candidates {
		dist := geo.Distance(lat, lon, b.Latitude, b.Longitude)
		if dist > float64(radiusM) {
			continue
		}
		nearby = append(nearby, models.ScoredBusiness{
			ID:                      b.ID,
			Name:                    b.Name,
			IAECode:                 b.IAECode,
			Rentability:             b.Rentability,
			ProximityToUrbanCenterM: b.ProximityToUrbanCenterM,
			DistanceFromSearchM:     math.Round(dist*100) / 100,
			Coordinates:             models.Coordinates{Lat: b.Latitude, Lon: b.Longitude},
		})
		if _, ok := seen[b.IAECode]; !ok {
			seen[b.IAECode] = struct{}{}
			codes = append(codes, b.IAECode)
		}
	}

	if len(nearby) == 0 {
		return nearby, nil
	}

	typologies, err := store.GetTypologies(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve typologies: %w", err)
	}

	for i := range nearby {
		// Unknown codes score with typology 0; the proximity term uses the
		// venue's distance to the urban center, not the search distance.
		nearby[i].Metric = calc.ConversionMetric(
			nearby[i].Rentability,
			typologies[nearby[i].IAECode],
			nearby[i].ProximityToUrbanCenterM,
		)
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Metric > nearby[j].Metric
	})

	return nearby, nil
}
