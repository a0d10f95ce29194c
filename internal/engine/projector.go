package engine

import (
	"math"

	"github.com/sdiallo/woyofal/internal/config"
)

// UsageScenarios are the fixed daily-usage-hour scenarios the appliance
// projection is evaluated at.
var UsageScenarios = []float64{4, 8, 12, 24}

// ApplianceRow is one usage scenario for a fixed wattage: the monthly
// energy it implies plus what that energy would cost if the whole amount
// were billed uniformly at each tier's unit price. This is deliberately
// not a progressive split — it is a comparative "cost if billed entirely
// at tier N" table.
type ApplianceRow struct {
	HoursPerDay float64 `json:"hours_per_day"`
	EnergyKWh   float64 `json:"energy_kwh"`
	CostT1      float64 `json:"cost_t1"`
	CostT2      float64 `json:"cost_t2"`
	CostT3      float64 `json:"cost_t3"`
}

// Project evaluates the fixed usage scenarios for a single wattage.
// An invalid wattage or rate configuration yields no rows at all rather
// than partial or meaningless ones.
func Project(watts float64, rates config.Rates) []ApplianceRow {
	if rates.Validate() != nil {
		return nil
	}
	if math.IsNaN(watts) || math.IsInf(watts, 0) || watts <= 0 {
		return nil
	}

	rows := make([]ApplianceRow, 0, len(UsageScenarios))
	for _, hours := range UsageScenarios {
		energy := MonthlyEnergy(watts, hours, rates)
		rows = append(rows, ApplianceRow{
			HoursPerDay: hours,
			EnergyKWh:   energy,
			CostT1:      energy * rates.PriceT1,
			CostT2:      energy * rates.PriceT2,
			CostT3:      energy * rates.PriceT3,
		})
	}
	return rows
}
