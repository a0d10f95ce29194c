package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/sdiallo/woyofal/internal/config"
)

// Mode selects how the user's raw input is normalised into a single
// monthly energy figure before the tier split.
type Mode string

const (
	// ModeEnergy takes monthly consumption in kWh directly.
	ModeEnergy Mode = "energy"
	// ModePower derives monthly consumption from an appliance's wattage
	// and daily usage hours.
	ModePower Mode = "power"
	// ModeCost works backwards from a target purchase amount.
	ModeCost Mode = "cost"
)

// ErrUnknownMode is returned by Resolve for a mode outside the three
// supported input modes.
var ErrUnknownMode = errors.New("unknown input mode")

// Input carries the raw values for one estimate. Only the fields for the
// selected mode are read; the rest are ignored.
type Input struct {
	Mode Mode `json:"mode"`
	// EnergyKWh is the monthly consumption for ModeEnergy.
	EnergyKWh float64 `json:"energy_kwh,omitempty"`
	// Watts and HoursPerDay feed the power derivation for ModePower.
	Watts       float64 `json:"watts,omitempty"`
	HoursPerDay float64 `json:"hours_per_day,omitempty"`
	// Amount is the target purchase amount for ModeCost.
	Amount float64 `json:"amount,omitempty"`
}

// Estimate is a resolved input: the normalised energy, its progressive
// breakdown and the total to display.
type Estimate struct {
	Mode      Mode      `json:"mode"`
	EnergyKWh float64   `json:"energy_kwh"`
	Breakdown Breakdown `json:"breakdown"`
	// Total is the displayed cost. For ModeCost it is the original input
	// amount, not the breakdown sum: the amount the user typed is ground
	// truth and must not pick up drift from the inversion. For the other
	// modes it is the sum of the per-tier costs.
	Total float64 `json:"total"`
}

// MonthlyEnergy applies the power-mode derivation:
// (watts / 1000) × hours/day × days/month.
func MonthlyEnergy(watts, hoursPerDay float64, rates config.Rates) float64 {
	const wattsPerKilowatt = 1000.0
	return watts / wattsPerKilowatt * hoursPerDay * rates.DaysPerMonth
}

// Resolve normalises the input into one energy figure, routes it through
// the tier engine and returns the estimate. It fails when the rate
// configuration is invalid or when cost-mode inversion hits a
// non-positive tier price.
func Resolve(in Input, rates config.Rates) (Estimate, error) {
	if err := rates.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("invalid rates: %w", err)
	}

	var energy float64
	switch in.Mode {
	case ModeEnergy:
		energy = sanitize(in.EnergyKWh)

	case ModePower:
		energy = sanitize(MonthlyEnergy(sanitize(in.Watts), sanitize(in.HoursPerDay), rates))

	case ModeCost:
		derived, err := CostToEnergy(sanitize(in.Amount), rates)
		if err != nil {
			return Estimate{}, err
		}
		energy = derived

	default:
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
	}

	breakdown := EnergyToBreakdown(energy, rates)
	est := Estimate{
		Mode:      in.Mode,
		EnergyKWh: energy,
		Breakdown: breakdown,
		Total:     breakdown.Total(),
	}
	if in.Mode == ModeCost {
		est.Total = sanitize(in.Amount)
	}
	return est, nil
}

// sanitize coerces non-finite or negative field values to zero. Raw
// field input is cleaned here, at the boundary, so the tier math below
// never sees a NaN.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
