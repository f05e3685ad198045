// Package riskmath provides the pure numerical primitives shared by the
// carbon-pricing, climate-science, transition-risk, and physical-risk
// engines: piecewise-linear interpolation, discounting, a logistic
// S-curve, Gumbel Type I extreme-value fitting, and WACC composition.
//
// Nothing here touches I/O, time.Now, or package-level state; every
// function is deterministic given its inputs.
package riskmath

import "math"

// Point is a single (x, y) calibration point used by piecewise-linear
// interpolation.
type Point struct {
	X float64
	Y float64
}

// Interpolate returns the piecewise-linear value at x given an ascending
// sequence of calibration points. Outside the range spanned by points,
// the nearest endpoint's Y is returned (no extrapolation). Interpolate
// panics if points is empty; callers are expected to validate scenario
// and sector tables at load time, not per call.
func Interpolate(points []Point, x float64) float64 {
	if len(points) == 0 {
		panic("riskmath: Interpolate called with no points")
	}
	if len(points) == 1 || x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x <= b.X {
			if b.X == a.X {
				return a.Y
			}
			frac := (x - a.X) / (b.X - a.X)
			return a.Y + frac*(b.Y-a.Y)
		}
	}
	return last.Y
}

// DiscountFactor returns 1 / (1 + rate)^t, the present-value weight
// applied to a cash flow t periods from the valuation date.
func DiscountFactor(rate float64, t int) float64 {
	return 1.0 / math.Pow(1.0+rate, float64(t))
}

// NPV discounts a year-indexed cash-flow series at rate, compounding
// from the first element (t=0).
func NPV(cashflows []float64, rate float64) float64 {
	var total float64
	for t, cf := range cashflows {
		total += cf * DiscountFactor(rate, t)
	}
	return total
}

// Logistic evaluates a logistic S-curve calibrated to reach target at
// steepness k around inflection point t0:
//
//	r(t) = target / (1 + exp(-k*(t - t0)))
func Logistic(target, k, t0, t float64) float64 {
	return target / (1.0 + math.Exp(-k*(t-t0)))
}

// ComposeWACC adds a scenario credit-spread adjustment to a base
// weighted-average cost of capital.
func ComposeWACC(base, creditSpread float64) float64 {
	return base + creditSpread
}

// GumbelParams holds the location (mu) and scale (beta) of a fitted
// Gumbel Type I distribution.
type GumbelParams struct {
	Location float64
	Scale    float64
}

// eulerMascheroni is used by the method-of-moments Gumbel fit.
const eulerMascheroni = 0.5772156649015329

// FitGumbel estimates Gumbel Type I parameters from a sample of annual
// maxima using the method of moments:
//
//	beta = sqrt(6) * sampleStdDev / pi
//	mu   = sampleMean - euler_gamma * beta
//
// FitGumbel returns the zero value if fewer than two samples are given.
func FitGumbel(samples []float64) GumbelParams {
	n := len(samples)
	if n < 2 {
		return GumbelParams{}
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(n)

	var sumSq float64
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	variance := sumSq / float64(n-1)
	stddev := math.Sqrt(variance)

	scale := math.Sqrt(6) * stddev / math.Pi
	location := mean - eulerMascheroni*scale
	return GumbelParams{Location: location, Scale: scale}
}

// ExceedanceProbability converts a return period in years to an annual
// exceedance probability: 1 - exp(-1/R).
func ExceedanceProbability(returnPeriodYears float64) float64 {
	if returnPeriodYears <= 0 {
		return 1
	}
	return 1 - math.Exp(-1.0/returnPeriodYears)
}

// GumbelValueForReturnPeriod returns the quantile (e.g. rainfall depth)
// associated with a given return period under fitted Gumbel parameters:
//
//	x(R) = mu - beta * ln(-ln(1 - 1/R))
func GumbelValueForReturnPeriod(p GumbelParams, returnPeriodYears float64) float64 {
	if returnPeriodYears <= 1 {
		returnPeriodYears = 1.001
	}
	return p.Location - p.Scale*math.Log(-math.Log(1-1/returnPeriodYears))
}

// PoissonMean is the expected annual event count for a Poisson process
// with intensity lambda; kept as a named helper so callers read
// "Poisson mean" rather than a bare multiplication at call sites.
func PoissonMean(lambda float64) float64 {
	return lambda
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
