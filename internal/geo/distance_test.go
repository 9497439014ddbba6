package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetry(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"madrid pair", 40.4167, -3.7037, 40.4150, -3.6850},
		{"across equator", -10.5, 20.25, 15.75, -30.5},
		{"antimeridian", 0, 179.9, 0, -179.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1 := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			d2 := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			assert.Equal(t, d1, d2)
		})
	}
}

func TestDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(40.4167, -3.7037, 40.4167, -3.7037))
}

func TestDistance_KnownValues(t *testing.T) {
	// One degree of longitude along the equator is R * pi/180.
	oneDegree := EarthRadiusM * math.Pi / 180
	assert.InDelta(t, oneDegree, Distance(0, 0, 0, 1), 0.001)

	// One degree of latitude is the same arc length anywhere.
	assert.InDelta(t, oneDegree, Distance(50, 7, 51, 7), 0.001)
}

func TestDistance_NonNegative(t *testing.T) {
	points := [][2]float64{{40.4167, -3.7037}, {-33.9, 151.2}, {90, 0}, {-90, 0}}
	for _, a := range points {
		for _, b := range points {
			assert.GreaterOrEqual(t, Distance(a[0], a[1], b[0], b[1]), 0.0)
		}
	}
}
