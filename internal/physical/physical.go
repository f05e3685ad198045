// Package physical computes, per facility and per hazard, the
// expected annual loss from flood, typhoon, heatwave, drought, and
// sea-level rise, per spec.md §4.3. Hazards are evaluated in the
// canonical order registry.HazardOrder establishes, for deterministic
// output (spec.md §8, testable property 9).
package physical

import (
	"context"
	"math"
	"time"

	"github.com/climatefin/riskcore/internal/climate"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/riskmath"
	"github.com/climatefin/riskcore/internal/weather"
)

const (
	floodReturnPeriodYears  = 100
	floodDamageCeiling      = 0.6
	droughtReturnPeriodYears = 20
	droughtLossRate         = 0.016

	typhoonPeakWindMS         = 55.0
	typhoonWindWarmingScaling = 0.05
	typhoonCoastalMultiplier  = 1.6
	typhoonInlandMultiplier   = 1.0
	typhoonBusinessInterruptionFraction = 0.03

	heatwaveProductivityFactor = 0.6
	heatwaveLossRate           = 0.004

	riskHighThreshold   = 0.01
	riskMediumThreshold = 0.001

	weatherFetchTimeout = 10 * time.Second
)

// RiskLevel buckets a hazard's or a facility's expected-annual-loss
// exposure.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func riskLevelForFraction(fraction float64) RiskLevel {
	switch {
	case fraction >= riskHighThreshold:
		return RiskHigh
	case fraction >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

func maxRiskLevel(levels []RiskLevel) RiskLevel {
	max := RiskLow
	for _, l := range levels {
		switch {
		case l == RiskHigh:
			return RiskHigh
		case l == RiskMedium:
			max = RiskMedium
		}
	}
	return max
}

// HazardAssessment is one hazard's evaluation for a facility, per
// spec.md §3's "Hazard assessment" data model.
type HazardAssessment struct {
	Hazard                    registry.HazardType
	ReturnPeriodYears         float64
	ExceedanceProbability     float64
	PotentialLoss             float64
	BusinessInterruptionLoss  float64
	ClimateMultiplier         float64
	ExpectedAnnualLoss        float64
	RiskLevel                 RiskLevel
}

// FacilityResult is the per-facility physical-risk outcome.
type FacilityResult struct {
	FacilityID         string
	Hazards            []HazardAssessment
	ExpectedAnnualLoss float64
	RiskLevel          RiskLevel
	DataSource         string
	Warnings           []string
}

// Result is the full physical-risk assessment over a facility
// portfolio.
type Result struct {
	Scenario       registry.ScenarioID
	Year           int
	UseLiveWeather bool
	Facilities     []FacilityResult
}

// Engine evaluates the five canonical hazards against the climate-
// science tables, the configuration registry, and (optionally) the
// historical-weather client.
type Engine struct {
	registry *registry.Registry
	science  *climate.Science
	weather  *weather.Client
}

// NewEngine builds a physical-risk Engine.
func NewEngine(reg *registry.Registry, science *climate.Science, weatherClient *weather.Client) *Engine {
	return &Engine{registry: reg, science: science, weather: weatherClient}
}

// Assess runs the per-facility, per-hazard physical-risk algorithm, in
// input order. If useLiveWeather is true, the historical-weather
// client is consulted for flood/drought statistics per coordinate,
// bounded by a per-coordinate timeout; a fetch failure or timeout
// falls back to latitude-band defaults for that facility only, tagged
// data_source = hardcoded_config, and does not fail the request.
func (e *Engine) Assess(ctx context.Context, facilities []facility.Facility, scenarioID registry.ScenarioID, year int, useLiveWeather bool) (Result, error) {
	if _, err := e.registry.Scenario(scenarioID); err != nil {
		return Result{}, err
	}

	results := make([]FacilityResult, 0, len(facilities))
	for _, f := range facilities {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		results = append(results, e.assessFacility(ctx, f, scenarioID, year, useLiveWeather))
	}

	return Result{Scenario: scenarioID, Year: year, UseLiveWeather: useLiveWeather, Facilities: results}, nil
}

func (e *Engine) assessFacility(ctx context.Context, f facility.Facility, scenarioID registry.ScenarioID, year int, useLiveWeather bool) FacilityResult {
	sector, sectorErr := e.registry.Sector(f.Sector)
	var warnings []string
	if sectorErr != nil {
		warnings = append(warnings, sectorErr.Error())
	}

	stats, dataSource := e.weatherStats(ctx, f.Latitude, f.Longitude, useLiveWeather)
	warming := e.science.WarmingAt(scenarioID, year)
	slr := e.science.SeaLevelRiseAt(scenarioID, year)
	heatwaveRegional, droughtRegional := climate.RegionalMultipliers(f.Latitude)
	coastal := f.IsCoastal(sector.Coastal)

	hazards := make([]HazardAssessment, 0, len(registry.HazardOrder))
	for _, hazardType := range registry.HazardOrder {
		sensitivity := sector.HazardSensitivity[hazardType]
		var hz HazardAssessment
		switch hazardType {
		case registry.HazardFlood:
			hz = e.assessFlood(f, stats, warming, sensitivity)
		case registry.HazardTyphoon:
			hz = e.assessTyphoon(f, coastal, warming, sensitivity)
		case registry.HazardHeatwave:
			hz = e.assessHeatwave(f, stats, heatwaveRegional, sensitivity)
		case registry.HazardDrought:
			hz = e.assessDrought(f, stats, droughtRegional, sensitivity)
		case registry.HazardSeaLevelRise:
			hz = e.assessSeaLevelRise(f, coastal, slr, sensitivity)
		}
		hazards = append(hazards, hz)
	}

	var totalEAL float64
	levels := make([]RiskLevel, 0, len(hazards))
	for _, hz := range hazards {
		totalEAL += hz.ExpectedAnnualLoss
		levels = append(levels, hz.RiskLevel)
	}

	return FacilityResult{
		FacilityID:         f.ID,
		Hazards:            hazards,
		ExpectedAnnualLoss: totalEAL,
		RiskLevel:          maxRiskLevel(levels),
		DataSource:         dataSource,
		Warnings:           warnings,
	}
}

// weatherStats returns the weather statistics used by the flood,
// heatwave, and drought hazards, and the data-source tag to report.
func (e *Engine) weatherStats(ctx context.Context, lat, lon float64, useLiveWeather bool) (weather.Stats, string) {
	if !useLiveWeather || e.weather == nil {
		return weather.DefaultStats(lat), weather.SourceDefault
	}
	fetchCtx, cancel := context.WithTimeout(ctx, weatherFetchTimeout)
	defer cancel()
	stats, err := e.weather.FetchStats(fetchCtx, lat, lon)
	if err != nil {
		return weather.DefaultStats(lat), weather.SourceDefault
	}
	return stats, stats.Source
}

func riskLevelForAssetFraction(loss, assetValue float64) RiskLevel {
	var fraction float64
	if assetValue != 0 {
		fraction = loss / assetValue
	}
	return riskLevelForFraction(fraction)
}

// assessFlood fits (or reuses) Gumbel parameters over annual-maximum
// daily precipitation and applies the USACE depth-damage curve with a
// flat ceiling at 0.6, per spec.md §4.3.
func (e *Engine) assessFlood(f facility.Facility, stats weather.Stats, warming, sensitivity float64) HazardAssessment {
	depth := riskmath.GumbelValueForReturnPeriod(stats.Gumbel, floodReturnPeriodYears)
	exceedance := riskmath.ExceedanceProbability(floodReturnPeriodYears)
	multiplier := climate.ClimateMultiplier(warming)

	potentialLoss := f.AssetValue * depthDamageRatio(depth) * multiplier * sensitivity
	eal := potentialLoss * exceedance

	return HazardAssessment{
		Hazard:                registry.HazardFlood,
		ReturnPeriodYears:      floodReturnPeriodYears,
		ExceedanceProbability:  exceedance,
		PotentialLoss:          potentialLoss,
		ClimateMultiplier:      multiplier,
		ExpectedAnnualLoss:     eal,
		RiskLevel:              riskLevelForAssetFraction(eal, f.AssetValue),
	}
}

// depthDamageRatio is a monotone piecewise-linear USACE-style
// depth-damage curve (precipitation depth in mm to damage fraction),
// flat at floodDamageCeiling above its final calibration point.
func depthDamageRatio(depthMM float64) float64 {
	curve := []riskmath.Point{
		{X: 0, Y: 0}, {X: 50, Y: 0.05}, {X: 100, Y: 0.15}, {X: 150, Y: 0.30},
		{X: 200, Y: 0.45}, {X: 300, Y: floodDamageCeiling},
	}
	return riskmath.Interpolate(curve, depthMM)
}

// assessTyphoon models annual strike count as a Poisson process whose
// intensity blends a latitude-derived baseline frequency with a
// coastal/inland multiplier, and converts the scenario's warming-
// adjusted peak wind speed into a HAZUS-style damage ratio.
func (e *Engine) assessTyphoon(f facility.Facility, coastal bool, warming, sensitivity float64) HazardAssessment {
	baseline := typhoonBaselineFrequency(f.Latitude)
	locationMultiplier := typhoonInlandMultiplier
	if coastal {
		locationMultiplier = typhoonCoastalMultiplier
	}
	lambda := riskmath.PoissonMean(baseline * locationMultiplier * sensitivity)

	peakWind := typhoonPeakWindMS * (1 + typhoonWindWarmingScaling*warming)
	damageRatio := hazusWindDamageRatio(peakWind)

	potentialLoss := damageRatio * f.AssetValue
	eal := lambda * potentialLoss
	biLoss := lambda * typhoonBusinessInterruptionFraction * f.Revenue

	return HazardAssessment{
		Hazard:                   registry.HazardTyphoon,
		ReturnPeriodYears:         returnPeriodFromPoissonMean(lambda),
		ExceedanceProbability:     1 - math.Exp(-lambda),
		PotentialLoss:             potentialLoss,
		BusinessInterruptionLoss:  biLoss,
		ClimateMultiplier:         1 + typhoonWindWarmingScaling*warming,
		ExpectedAnnualLoss:        eal + biLoss,
		RiskLevel:                 riskLevelForAssetFraction(eal+biLoss, f.AssetValue),
	}
}

// typhoonBaselineFrequency is a latitude-band annual-strike-count
// baseline (pre-coastal-multiplier), peaking in the tropical cyclone
// belt (10-30 degrees) and tapering toward the equator and the
// mid-latitudes.
func typhoonBaselineFrequency(latitude float64) float64 {
	abs := math.Abs(latitude)
	switch {
	case abs < 10:
		return 0.2
	case abs < 30:
		return 0.9
	case abs < 45:
		return 0.3
	default:
		return 0.05
	}
}

// hazusWindDamageRatio is a monotone piecewise-linear HAZUS-MH-style
// wind-speed-to-damage-ratio curve (m/s to damage fraction).
func hazusWindDamageRatio(windSpeedMS float64) float64 {
	curve := []riskmath.Point{
		{X: 33, Y: 0.0}, {X: 45, Y: 0.10}, {X: 55, Y: 0.25},
		{X: 65, Y: 0.45}, {X: 75, Y: 0.70}, {X: 90, Y: 1.0},
	}
	return riskmath.Interpolate(curve, windSpeedMS)
}

// returnPeriodFromPoissonMean converts a Poisson intensity back into
// an equivalent return period (years/event), for reporting alongside
// the other hazards' ReturnPeriodYears field.
func returnPeriodFromPoissonMean(lambda float64) float64 {
	if lambda <= 0 {
		return math.Inf(1)
	}
	return 1 / lambda
}

// assessHeatwave scales the fetched or default annual heatwave-day
// count by the latitude band's regional multiplier and the sector
// sensitivity, and converts lost productive days into a revenue loss.
// The scenario's warming level does not enter this hazard.
func (e *Engine) assessHeatwave(f facility.Facility, stats weather.Stats, regionalMultiplier, sensitivity float64) HazardAssessment {
	days := stats.HeatwaveDays * regionalMultiplier * sensitivity
	loss := days * heatwaveProductivityFactor * f.Revenue * heatwaveLossRate

	return HazardAssessment{
		Hazard:             registry.HazardHeatwave,
		ExpectedAnnualLoss: loss,
		ClimateMultiplier:  regionalMultiplier,
		RiskLevel:          riskLevelForAssetFraction(loss, f.AssetValue),
	}
}

// assessDrought derives a severe-drought return period from the
// standardised precipitation deficit (live or default), and applies a
// flat asset-value loss rate scaled by regional drought multiplier.
func (e *Engine) assessDrought(f facility.Facility, stats weather.Stats, regionalMultiplier, sensitivity float64) HazardAssessment {
	deficitSeverity := -stats.DroughtIndex
	if deficitSeverity < 0.1 {
		deficitSeverity = 0.1
	}
	returnPeriod := droughtReturnPeriodYears / deficitSeverity
	exceedance := riskmath.ExceedanceProbability(returnPeriod)

	multiplier := regionalMultiplier * sensitivity
	potentialLoss := f.AssetValue * droughtLossRate * multiplier
	eal := potentialLoss * exceedance

	return HazardAssessment{
		Hazard:                 registry.HazardDrought,
		ReturnPeriodYears:       returnPeriod,
		ExceedanceProbability:   exceedance,
		PotentialLoss:           potentialLoss,
		ClimateMultiplier:       multiplier,
		ExpectedAnnualLoss:      eal,
		RiskLevel:               riskLevelForAssetFraction(eal, f.AssetValue),
	}
}

// assessSeaLevelRise applies only to coastal facilities; loss scales
// directly with the scenario's projected sea-level rise for the
// assessment year.
func (e *Engine) assessSeaLevelRise(f facility.Facility, coastal bool, slrMetres, sensitivity float64) HazardAssessment {
	if !coastal {
		return HazardAssessment{Hazard: registry.HazardSeaLevelRise, RiskLevel: RiskLow}
	}

	potentialLoss := f.AssetValue * slrMetres * sensitivity * 0.1
	return HazardAssessment{
		Hazard:             registry.HazardSeaLevelRise,
		PotentialLoss:      potentialLoss,
		ClimateMultiplier:  1 + slrMetres,
		ExpectedAnnualLoss: potentialLoss,
		RiskLevel:          riskLevelForAssetFraction(potentialLoss, f.AssetValue),
	}
}
