package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionMetric_KnownScenario(t *testing.T) {
	calc := NewCalculator()

	// rentability 85, typology 800, proximity 100m:
	// x = 0.2*0.85 + 0.4*0.8 + 0.4*(1/101) = 0.49396, sigmoid(x) = 0.6210
	metric := calc.ConversionMetric(85, 800, 100)
	assert.InDelta(t, 0.6210, metric, 0.0005)
}

func TestConversionMetric_StrictBounds(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name        string
		rentability float64
		typology    int
		distanceM   float64
	}{
		{"all zero", 0, 0, 0},
		{"all max", 100, 1000, 0},
		{"far away", 50, 500, 1e9},
		{"unknown typology", 85, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric := calc.ConversionMetric(tt.rentability, tt.typology, tt.distanceM)
			assert.Greater(t, metric, 0.0)
			assert.Less(t, metric, 1.0)
		})
	}
}

func TestConversionMetric_Monotonicity(t *testing.T) {
	calc := NewCalculator()

	base := calc.ConversionMetric(50, 500, 100)

	assert.Greater(t, calc.ConversionMetric(60, 500, 100), base, "higher rentability must not lower the metric")
	assert.Greater(t, calc.ConversionMetric(50, 600, 100), base, "higher typology must not lower the metric")
	assert.Greater(t, calc.ConversionMetric(50, 500, 50), base, "smaller distance must not lower the metric")
	assert.Less(t, calc.ConversionMetric(50, 500, 200), base, "larger distance must not raise the metric")
}

func TestSigmoid_Clamps(t *testing.T) {
	assert.InDelta(t, 1.0, sigmoid(1e6), 1e-9)
	assert.InDelta(t, 0.0, sigmoid(-1e6), 1e-9)
	assert.Equal(t, 0.5, sigmoid(0))
}
