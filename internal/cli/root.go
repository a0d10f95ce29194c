// Package cli wires the woyofal commands: estimate, appliance, config
// and the interactive TUI session.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the woyofal CLI.
// It wires up logging and the estimate, appliance, config and tui
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "woyofal",
		Short:   "Woyofal electricity cost estimator",
		Long:    "Woyofal: estimate prepaid electricity costs under Senelec's three-tier tariff",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.woyofal/config.yaml)")
	cmd.AddCommand(NewEstimateCmd(), NewApplianceCmd(), newConfigCmd(), NewTUICmd())

	return cmd
}

const rootCmdExample = `  # Monthly cost for 550 kWh
  woyofal estimate --energy 550

  # Monthly cost of a 175 W appliance running 8 hours a day
  woyofal estimate --watts 175 --hours 8

  # How much energy does 10,000 FCFA buy?
  woyofal estimate --amount 10000

  # Appliance impact table, as CSV
  woyofal appliance 175 --output csv

  # Adjust the tariff
  woyofal config set price_t1 85.5

  # Interactive session
  woyofal tui`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Tariff configuration commands"}
	cmd.AddCommand(
		NewConfigShowCmd(), NewConfigSetCmd(), NewConfigResetCmd(), NewConfigPathCmd(),
	)
	return cmd
}
