// Package engine implements the Woyofal tiered-rate conversion engine:
// splitting monthly energy across the three progressive pricing tiers,
// inverting a purchase amount back into energy, and projecting appliance
// running costs against each tier's unit price.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/sdiallo/woyofal/internal/config"
)

// Tier thresholds in kWh. A threshold is the inclusive upper bound of the
// lower tier: consumption at exactly 150 kWh is billed entirely at tier 1.
const (
	Threshold1 = 150.0
	Threshold2 = 250.0
)

// TierCount is the number of pricing tiers. Breakdowns always carry one
// slice per tier, zero-energy slices included.
const TierCount = 3

// ErrInvalidRate is returned by CostToEnergy when the inversion would
// divide by a non-positive tier price.
var ErrInvalidRate = errors.New("tier price must be positive for cost inversion")

// TierSlice is one tier's share of a progressive breakdown.
type TierSlice struct {
	// Tier is the 1-based tier number.
	Tier int `json:"tier"`
	// Energy is the kWh billed within this tier's band.
	Energy float64 `json:"energy_kwh"`
	// Price is the tier's unit price in FCFA per kWh.
	Price float64 `json:"price"`
	// Cost is Energy × Price in FCFA.
	Cost float64 `json:"cost"`
}

// Breakdown is a full progressive split of a monthly consumption figure.
// Slices partition the input energy exactly: the three Energy fields sum
// to the original value.
type Breakdown [TierCount]TierSlice

// Total returns the sum of the per-tier costs.
func (b Breakdown) Total() float64 {
	var total float64
	for _, s := range b {
		total += s.Cost
	}
	return total
}

// Energy returns the sum of the per-tier energies, which equals the
// energy the breakdown was computed from.
func (b Breakdown) Energy() float64 {
	var total float64
	for _, s := range b {
		total += s.Energy
	}
	return total
}

// EnergyToBreakdown splits a monthly energy figure into the three tier
// bands and prices each band at its own unit rate. Negative energy is
// treated as zero. The function is pure and total: any finite input
// yields three non-negative slices.
func EnergyToBreakdown(energy float64, rates config.Rates) Breakdown {
	if energy < 0 || math.IsNaN(energy) {
		energy = 0
	}

	slice1 := math.Min(energy, Threshold1)
	slice2 := math.Min(math.Max(energy-Threshold1, 0), Threshold2-Threshold1)
	slice3 := math.Max(energy-Threshold2, 0)

	return Breakdown{
		{Tier: 1, Energy: slice1, Price: rates.PriceT1, Cost: slice1 * rates.PriceT1},
		{Tier: 2, Energy: slice2, Price: rates.PriceT2, Cost: slice2 * rates.PriceT2},
		{Tier: 3, Energy: slice3, Price: rates.PriceT3, Cost: slice3 * rates.PriceT3},
	}
}

// CostToEnergy inverts EnergyToBreakdown: given a target purchase amount,
// it returns the energy whose progressive cost equals that amount.
//
// The inversion walks the cumulative cost of filling each tier and solves
// linearly inside the tier the amount lands in. It requires a positive
// unit price for every tier the amount reaches; a subsidised zero price
// would make the inverse undefined, so that case fails with
// ErrInvalidRate instead of producing an infinite energy.
func CostToEnergy(amount float64, rates config.Rates) (float64, error) {
	if amount <= 0 || math.IsNaN(amount) {
		return 0, nil
	}

	tier1Cost := Threshold1 * rates.PriceT1
	tier2Cost := (Threshold2 - Threshold1) * rates.PriceT2

	switch {
	case amount <= tier1Cost:
		if rates.PriceT1 <= 0 {
			return 0, fmt.Errorf("tier 1: %w", ErrInvalidRate)
		}
		return amount / rates.PriceT1, nil

	case amount <= tier1Cost+tier2Cost:
		if rates.PriceT2 <= 0 {
			return 0, fmt.Errorf("tier 2: %w", ErrInvalidRate)
		}
		return Threshold1 + (amount-tier1Cost)/rates.PriceT2, nil

	default:
		if rates.PriceT3 <= 0 {
			return 0, fmt.Errorf("tier 3: %w", ErrInvalidRate)
		}
		return Threshold2 + (amount-tier1Cost-tier2Cost)/rates.PriceT3, nil
	}
}
