// Package facility defines the Facility record analysed by the
// transition-risk, physical-risk, and ESG engines, and the typed
// decoder that validates it out of a loosely typed JSON payload (see
// spec.md §9, "Dynamic typing and open payloads").
package facility

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for Facility field validation. They are namespaced
// to this package and accumulated with errors.Join so a single
// malformed record reports every problem at once, not just the first.
var (
	ErrMissingID       = errors.New("facility: id is required")
	ErrMissingName     = errors.New("facility: name is required")
	ErrMissingSector   = errors.New("facility: sector is required")
	ErrInvalidLatitude = errors.New("facility: latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("facility: longitude must be within [-180, 180]")
	ErrNegativeEmissions = errors.New("facility: emissions must be non-negative")
	ErrNegativeFinancial = errors.New("facility: financial fields must be non-negative")
)

// Facility is one industrial facility in a portfolio: its identity and
// placement, annual emissions by scope, and financial state, all in a
// single currency per request.
type Facility struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Sector   string `json:"sector"`
	Location string `json:"location"`
	Latitude float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Coastal, when non-nil, overrides the sector+latitude coastal
	// heuristic the physical-risk engine otherwise applies for the
	// sea-level-rise hazard.
	Coastal *bool `json:"coastal,omitempty"`

	Scope1 float64 `json:"scope1"` // tCO2e/yr, direct
	Scope2 float64 `json:"scope2"` // tCO2e/yr, purchased energy
	Scope3 float64 `json:"scope3"` // tCO2e/yr, value chain

	Revenue    float64 `json:"revenue"`
	EBITDA     float64 `json:"ebitda"`
	AssetValue float64 `json:"asset_value"`
}

// Decode parses and validates a single facility from a JSON payload.
func Decode(data []byte) (Facility, error) {
	var f Facility
	if err := json.Unmarshal(data, &f); err != nil {
		return Facility{}, fmt.Errorf("facility: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Facility{}, err
	}
	return f, nil
}

// DecodeMany parses and validates a JSON array of facilities. It
// returns the elements that decode and validate, in input order, and
// every failing element's error joined with errors.Join (nil when all
// succeed); failing elements are left out of the returned slice.
func DecodeMany(data []byte) ([]Facility, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("facility: decode array: %w", err)
	}
	out := make([]Facility, 0, len(raw))
	var errs []error
	for i, r := range raw {
		f, err := Decode(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("facility[%d]: %w", i, err))
			continue
		}
		out = append(out, f)
	}
	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return out, nil
}

// Validate checks the structural invariants from spec.md §3: required
// identity fields, coordinate bounds, and non-negative emissions and
// monetary values. It does not check sector membership against the
// configuration registry — an unrecognised sector tag is valid data
// that the engines analyse with default parameters and a warning, not
// a validation failure.
func (f Facility) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, ErrMissingID)
	}
	if f.Name == "" {
		errs = append(errs, ErrMissingName)
	}
	if f.Sector == "" {
		errs = append(errs, ErrMissingSector)
	}
	if f.Latitude < -90 || f.Latitude > 90 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidLatitude, f.Latitude))
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidLongitude, f.Longitude))
	}
	if f.Scope1 < 0 || f.Scope2 < 0 || f.Scope3 < 0 {
		errs = append(errs, ErrNegativeEmissions)
	}
	if f.Revenue < 0 || f.EBITDA < 0 || f.AssetValue < 0 {
		errs = append(errs, ErrNegativeFinancial)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// IsCoastal reports whether the facility should be treated as coastal
// for the sea-level-rise hazard: the explicit Coastal flag if set,
// otherwise the caller's sector-level heuristic combined with
// latitude proximity to a coastline is left to the physical engine,
// which has the sector registry this package intentionally does not
// depend on.
func (f Facility) IsCoastal(sectorCoastalDefault bool) bool {
	if f.Coastal != nil {
		return *f.Coastal
	}
	return sectorCoastalDefault
}

// TotalEmissions returns Scope1+Scope2+Scope3.
func (f Facility) TotalEmissions() float64 {
	return f.Scope1 + f.Scope2 + f.Scope3
}
