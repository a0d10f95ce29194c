package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdiallo/woyofal/internal/engine"
	"github.com/sdiallo/woyofal/internal/export"
	"github.com/sdiallo/woyofal/internal/format"
)

// NewApplianceCmd creates the "appliance" command: the comparative
// what-if table for one wattage across the fixed usage scenarios.
func NewApplianceCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "appliance <watts>",
		Short: "Project an appliance's monthly cost at each tier rate",
		Long: `Project the monthly energy of an appliance at 4, 8, 12 and 24 hours of
daily use, and what that energy would cost billed entirely at each
tier's unit price. This is a comparative table, not a progressive bill.`,
		Example: applianceExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeAppliance(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "Output format: table, json, or csv")

	return cmd
}

const applianceExample = `  # Impact of a 175 W fridge
  woyofal appliance 175

  # Same table as CSV for a spreadsheet
  woyofal appliance 175 --output csv`

func executeAppliance(cmd *cobra.Command, wattsArg, output string) error {
	watts, err := strconv.ParseFloat(wattsArg, 64)
	if err != nil {
		return fmt.Errorf("invalid wattage %q: %w", wattsArg, err)
	}

	rates, err := loadRates(cmd)
	if err != nil {
		return err
	}

	rows := engine.Project(watts, rates)
	if len(rows) == 0 {
		return fmt.Errorf("no projection for wattage %g: wattage and rates must be positive", watts)
	}

	switch strings.ToLower(output) {
	case outputTable:
		renderApplianceTable(cmd, rows)
		return nil
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outputCSV:
		cmd.Print(export.ApplianceCSV(rows))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or csv)", output)
	}
}

func renderApplianceTable(cmd *cobra.Command, rows []engine.ApplianceRow) {
	cmd.Printf("%-10s %12s %16s %16s %16s\n", "Usage", "kWh/month", "@ Tier 1", "@ Tier 2", "@ Tier 3")
	for _, row := range rows {
		cmd.Printf("%-10s %12s %16s %16s %16s\n",
			fmt.Sprintf("%gh/day", row.HoursPerDay),
			format.Energy(row.EnergyKWh),
			format.Currency(row.CostT1),
			format.Currency(row.CostT2),
			format.Currency(row.CostT3),
		)
	}
}
