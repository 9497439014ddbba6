package scoring

import "math"

// Calculator computes the conversion likelihood metric for a venue. It is
// stateless; construct one and inject it wherever scoring is needed.
type Calculator struct{}

// NewCalculator creates a new metric calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// sigmoid is the standard logistic function 1 / (1 + exp(-x)). The input is
// clamped to [-100, 100] so math.Exp cannot overflow.
func sigmoid(x float64) float64 {
	x = math.Max(math.Min(x, 100), -100)
	return 1 / (1 + math.Exp(-x))
}

// ConversionMetric combines rentability (0-100), typology value (1-1000, 0
// when unknown) and distance to the urban center in meters into a score
// strictly between 0 and 1.
//
// Each input is normalized to [0,1]: rentability/100, typology/1000 and a
// proximity factor 1/(1+distance). The weighted sum
// 0.2*r + 0.4*t + 0.4*p is then passed through the sigmoid.
func (c *Calculator) ConversionMetric(rentability float64, typologyVal int, distanceM float64) float64 {
	r := rentability / 100
	t := float64(typologyVal) / 1000
	p := 1 / (1 + distanceM)

	x := 0.2*r + 0.4*t + 0.4*p

	return sigmoid(x)
}
