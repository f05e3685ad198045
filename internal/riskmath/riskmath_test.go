package riskmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	points := []Point{
		{X: 2024, Y: 0},
		{X: 2030, Y: 60},
		{X: 2050, Y: 200},
	}

	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"before range clamps to first", 2000, 0},
		{"after range clamps to last", 2100, 200},
		{"exact calibration point", 2030, 60},
		{"midpoint interpolates linearly", 2027, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Interpolate(points, tc.x), 1e-9)
		})
	}
}

func TestInterpolateSinglePoint(t *testing.T) {
	points := []Point{{X: 2024, Y: 42}}
	assert.Equal(t, 42.0, Interpolate(points, 1999))
	assert.Equal(t, 42.0, Interpolate(points, 2099))
}

func TestNPVDiscountsFromYearZero(t *testing.T) {
	cashflows := []float64{-100, -100, -100}
	npv := NPV(cashflows, 0.10)
	require.Less(t, npv, 0.0)
	assert.InDelta(t, -100-100/1.1-100/1.21, npv, 1e-6)
}

func TestLogisticReachesTargetAtInflection(t *testing.T) {
	got := Logistic(0.9, 0.3, 2037, 2037)
	assert.InDelta(t, 0.45, got, 1e-9)
}

func TestLogisticApproachesTargetAsTimeAdvances(t *testing.T) {
	near := Logistic(0.9, 0.3, 2037, 2060)
	assert.InDelta(t, 0.9, near, 0.01)
}

func TestFitGumbelRecoversKnownParameters(t *testing.T) {
	// 30 synthetic annual maxima generated from a Gumbel(mu=50, beta=10)
	// inverse-CDF at evenly spaced quantiles, approximating a 30-year
	// sample without relying on a random source.
	samples := make([]float64, 30)
	mu, beta := 50.0, 10.0
	for i := range samples {
		p := (float64(i) + 0.5) / float64(len(samples))
		samples[i] = mu - beta*math.Log(-math.Log(p))
	}

	fit := FitGumbel(samples)
	assert.InEpsilon(t, mu, fit.Location, 0.10)
	assert.InEpsilon(t, beta, fit.Scale, 0.10)
}

func TestFitGumbelInsufficientSamples(t *testing.T) {
	assert.Equal(t, GumbelParams{}, FitGumbel([]float64{1}))
	assert.Equal(t, GumbelParams{}, FitGumbel(nil))
}

func TestExceedanceProbability(t *testing.T) {
	assert.InDelta(t, 1-math.Exp(-1.0/100), ExceedanceProbability(100), 1e-12)
	assert.Equal(t, 1.0, ExceedanceProbability(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
