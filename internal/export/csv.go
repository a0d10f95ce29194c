// Package export renders engine results as CSV text for the share and
// clipboard collaborators.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sdiallo/woyofal/internal/engine"
)

// Exact header rows. Consumers parse these, so they are part of the
// export contract.
var (
	applianceHeader = []string{"Usage Time", "kWh/month", "Cost @ Tier 1", "Cost @ Tier 2", "Cost @ Tier 3"}
	monthlyHeader   = []string{"Tier", "kWh", "Price", "Cost"}
)

// ApplianceCSV renders the appliance projection table: header plus one
// row per usage scenario. Energies carry one decimal, costs are rounded
// to whole FCFA. An empty projection yields just the header.
func ApplianceCSV(rows []engine.ApplianceRow) string {
	records := [][]string{applianceHeader}
	for _, row := range rows {
		records = append(records, []string{
			usageLabel(row.HoursPerDay),
			csvEnergy(row.EnergyKWh),
			csvCost(row.CostT1),
			csvCost(row.CostT2),
			csvCost(row.CostT3),
		})
	}
	return render(records)
}

// MonthlyCSV renders a progressive breakdown: header, one row per tier
// and a trailing totals row.
func MonthlyCSV(est engine.Estimate) string {
	records := [][]string{monthlyHeader}
	for _, slice := range est.Breakdown {
		records = append(records, []string{
			fmt.Sprintf("Tier %d", slice.Tier),
			csvEnergy(slice.Energy),
			csvPrice(slice.Price),
			csvCost(slice.Cost),
		})
	}
	records = append(records, []string{"Total", "", csvEnergy(est.EnergyKWh), csvCost(est.Total)})
	return render(records)
}

func render(records [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// WriteAll flushes; the only possible error is from the Builder,
	// which cannot fail.
	_ = w.WriteAll(records)
	return sb.String()
}

func usageLabel(hours float64) string {
	return fmt.Sprintf("%gh/day", hours)
}

func csvEnergy(kwh float64) string {
	return strconv.FormatFloat(kwh, 'f', 1, 64)
}

func csvCost(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount)), 10)
}

func csvPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
