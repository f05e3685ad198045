// Package carbon produces the year-indexed carbon-price path for a
// scenario and pricing regime, and the K-ETS free-allocation fraction,
// per spec.md §4.1.
package carbon

import (
	"fmt"

	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/riskmath"
)

const (
	minCalibrationYear = 2024
	maxCalibrationYear = 2100

	// ketsBlendWeight is the share of the Korean allowance market's own
	// calibration points in the K-ETS price; the remainder comes from
	// the exchange-rate-converted global path. Not specified exactly by
	// spec.md beyond "blended" — resolved here as an even blend so
	// neither market dominates.
	ketsBlendWeight = 0.5
)

// Price is a currency-tagged carbon price.
type Price struct {
	Amount   float64
	Currency string // "USD" or "KRW"
}

// PricePoint is one (year, price) sample of a built path.
type PricePoint struct {
	Year  int
	Price Price
}

// Pricer evaluates carbon prices and K-ETS allocation fractions
// against the configuration registry.
type Pricer struct {
	registry *registry.Registry
}

// New returns a Pricer backed by reg.
func New(reg *registry.Registry) *Pricer {
	return &Pricer{registry: reg}
}

// PriceAt returns the price for scenario/regime at year. Years outside
// [2024, 2100] clamp to the nearest endpoint and are reported via the
// returned warning slice rather than failing.
func (p *Pricer) PriceAt(scenario registry.ScenarioID, regime registry.Regime, year int) (Price, []string, error) {
	if err := registry.ValidateRegime(regime); err != nil {
		return Price{}, nil, err
	}
	s, err := p.registry.Scenario(scenario)
	if err != nil {
		return Price{}, nil, err
	}

	var warnings []string
	clamped := year
	if year < minCalibrationYear {
		clamped = minCalibrationYear
		warnings = append(warnings, fmt.Sprintf("year %d precedes calibration range, clamped to %d", year, clamped))
	} else if year > maxCalibrationYear {
		clamped = maxCalibrationYear
		warnings = append(warnings, fmt.Sprintf("year %d exceeds calibration range, clamped to %d", year, clamped))
	}

	if regime == registry.RegimeGlobal {
		amount := riskmath.Interpolate(s.GlobalPriceUSD, float64(clamped))
		return Price{Amount: amount, Currency: "USD"}, warnings, nil
	}

	globalUSD := riskmath.Interpolate(s.GlobalPriceUSD, float64(clamped))
	convertedKRW := globalUSD * p.registry.ExchangeRateUSDKRW
	ownKRW := riskmath.Interpolate(s.KETSPriceKRW, float64(clamped))
	blended := ketsBlendWeight*ownKRW + (1-ketsBlendWeight)*convertedKRW
	return Price{Amount: blended, Currency: "KRW"}, warnings, nil
}

// AllocationFraction returns the K-ETS free-allocation fraction for
// sectorTag at year: max(0, base - tighten*(year-2024)). An
// unrecognised sector tag analyses with the `default` sector's
// allocation parameters and reports a warning rather than failing.
func (p *Pricer) AllocationFraction(sectorTag string, year int) (float64, []string, error) {
	sector, err := p.registry.Sector(sectorTag)
	var warnings []string
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	fraction := sector.KETSBaseAllocation - sector.KETSTighten*float64(year-minCalibrationYear)
	if fraction < 0 {
		fraction = 0
	}
	return fraction, warnings, nil
}

// BuildPath returns the full interpolated price path for scenario and
// regime over [yearStart, yearEnd], inclusive.
func (p *Pricer) BuildPath(scenario registry.ScenarioID, regime registry.Regime, yearStart, yearEnd int) ([]PricePoint, error) {
	if err := registry.ValidateRegime(regime); err != nil {
		return nil, err
	}
	if _, err := p.registry.Scenario(scenario); err != nil {
		return nil, err
	}
	if yearEnd < yearStart {
		return nil, fmt.Errorf("carbon: yearEnd %d precedes yearStart %d", yearEnd, yearStart)
	}

	path := make([]PricePoint, 0, yearEnd-yearStart+1)
	for y := yearStart; y <= yearEnd; y++ {
		price, _, err := p.PriceAt(scenario, regime, y)
		if err != nil {
			return nil, err
		}
		path = append(path, PricePoint{Year: y, Price: price})
	}
	return path, nil
}
