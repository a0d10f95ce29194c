package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdiallo/woyofal/internal/engine"
	"github.com/sdiallo/woyofal/internal/export"
	"github.com/sdiallo/woyofal/internal/format"
	"github.com/sdiallo/woyofal/internal/logging"
)

// Output formats shared by the estimate and appliance commands.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputCSV   = "csv"
)

// estimateParams holds the flag values for the estimate command.
type estimateParams struct {
	energy float64
	watts  float64
	hours  float64
	amount float64
	days   float64
	output string
}

// NewEstimateCmd creates the "estimate" command.
//
// Exactly one input mode must be selected:
//   - --energy: monthly consumption in kWh
//   - --watts with --hours: appliance power draw and daily usage
//   - --amount: target purchase amount in FCFA
//
// Registered flags:
//   - --days: override days per month from the rate configuration
//   - --output: output format, one of table, json, or csv
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate monthly cost or purchasable energy",
		Long: `Estimate how monthly consumption splits across the three Woyofal
pricing tiers, from energy, appliance power, or a target amount.`,
		Example: estimateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.energy, "energy", 0, "Monthly energy in kWh")
	cmd.Flags().Float64Var(&params.watts, "watts", 0, "Appliance power draw in watts")
	cmd.Flags().Float64Var(&params.hours, "hours", 0, "Usage hours per day (with --watts)")
	cmd.Flags().Float64Var(&params.amount, "amount", 0, "Target purchase amount in FCFA")
	cmd.Flags().Float64Var(&params.days, "days", 0, "Days per month (0 = use configured value)")
	cmd.Flags().StringVar(&params.output, "output", outputTable, "Output format: table, json, or csv")

	cmd.MarkFlagsMutuallyExclusive("energy", "watts", "amount")
	cmd.MarkFlagsMutuallyExclusive("energy", "hours", "amount")
	cmd.MarkFlagsRequiredTogether("watts", "hours")

	return cmd
}

const estimateExample = `  # Monthly cost for 550 kWh
  woyofal estimate --energy 550

  # 175 W appliance, 8 hours a day
  woyofal estimate --watts 175 --hours 8

  # Energy purchasable for 10,000 FCFA
  woyofal estimate --amount 10000 --output json`

// executeEstimate resolves the selected mode, runs the tier engine and
// renders the result in the requested format.
func executeEstimate(cmd *cobra.Command, params estimateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	rates, err := loadRates(cmd)
	if err != nil {
		return err
	}
	if params.days > 0 {
		rates.DaysPerMonth = params.days
	}

	input, err := resolveInput(cmd, params)
	if err != nil {
		return err
	}

	est, err := engine.Resolve(input, rates)
	if err != nil {
		return err
	}

	log.Debug().
		Str("operation", "estimate").
		Str("mode", string(est.Mode)).
		Float64("energy_kwh", est.EnergyKWh).
		Float64("total", est.Total).
		Msg("estimate resolved")

	switch strings.ToLower(params.output) {
	case outputTable:
		renderEstimateTable(cmd, est)
		return nil
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	case outputCSV:
		cmd.Print(export.MonthlyCSV(est))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or csv)", params.output)
	}
}

// resolveInput maps the set flags onto an engine input mode.
func resolveInput(cmd *cobra.Command, params estimateParams) (engine.Input, error) {
	switch {
	case cmd.Flags().Changed("energy"):
		return engine.Input{Mode: engine.ModeEnergy, EnergyKWh: params.energy}, nil
	case cmd.Flags().Changed("watts"):
		return engine.Input{Mode: engine.ModePower, Watts: params.watts, HoursPerDay: params.hours}, nil
	case cmd.Flags().Changed("amount"):
		return engine.Input{Mode: engine.ModeCost, Amount: params.amount}, nil
	default:
		return engine.Input{}, fmt.Errorf("select an input mode: --energy, --watts/--hours, or --amount")
	}
}

// renderEstimateTable prints the per-tier breakdown with a totals line.
func renderEstimateTable(cmd *cobra.Command, est engine.Estimate) {
	cmd.Printf("%-8s %12s %10s %14s\n", "Tier", "kWh", "Price", "Cost")
	for _, slice := range est.Breakdown {
		cmd.Printf("%-8s %12s %10s %14s\n",
			fmt.Sprintf("Tier %d", slice.Tier),
			format.Energy(slice.Energy),
			format.Price(slice.Price),
			format.Currency(slice.Cost),
		)
	}
	cmd.Printf("%-8s %12s %10s %14s\n", "Total", format.Energy(est.EnergyKWh), "", format.Currency(est.Total))
}
