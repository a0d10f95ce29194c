package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sdiallo/woyofal/internal/config"
	"github.com/sdiallo/woyofal/internal/format"
)

// Settable configuration keys.
const (
	keyDaysPerMonth = "days_per_month"
	keyPriceT1      = "price_t1"
	keyPriceT2      = "price_t2"
	keyPriceT3      = "price_t3"
)

// NewConfigShowCmd creates the "config show" command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current tariff configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rates, err := loadRates(cmd)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %g\n", keyDaysPerMonth, rates.DaysPerMonth)
			cmd.Printf("%s: %s\n", keyPriceT1, format.Price(rates.PriceT1))
			cmd.Printf("%s: %s\n", keyPriceT2, format.Price(rates.PriceT2))
			cmd.Printf("%s: %s\n", keyPriceT3, format.Price(rates.PriceT3))
			return nil
		},
	}
}

// NewConfigSetCmd creates the "config set" command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a tariff value",
		Long: `Set one tariff value and save the configuration.

Keys: days_per_month, price_t1, price_t2, price_t3.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := loadRates(cmd)
			if err != nil {
				return err
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			if err := setRateKey(&rates, args[0], value); err != nil {
				return err
			}
			if err := rates.Validate(); err != nil {
				return err
			}
			if err := saveRates(cmd, rates); err != nil {
				return err
			}

			cmd.Printf("%s set to %g\n", args[0], value)
			return nil
		},
	}
}

// NewConfigResetCmd creates the "config reset" command: replace the
// stored configuration with a fresh copy of the built-in defaults.
func NewConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the tariff to the built-in defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := saveRates(cmd, config.DefaultRates()); err != nil {
				return err
			}
			cmd.Println("configuration reset to defaults")
			return nil
		},
	}
}

// NewConfigPathCmd creates the "config path" command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path := configOverride(cmd); path != "" {
				cmd.Println(path)
				return nil
			}
			path, err := config.Path()
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}
}

func setRateKey(rates *config.Rates, key string, value float64) error {
	switch key {
	case keyDaysPerMonth:
		rates.DaysPerMonth = value
	case keyPriceT1:
		rates.PriceT1 = value
	case keyPriceT2:
		rates.PriceT2 = value
	case keyPriceT3:
		rates.PriceT3 = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func saveRates(cmd *cobra.Command, rates config.Rates) error {
	if path := configOverride(cmd); path != "" {
		return config.SaveFile(rates, path)
	}
	return config.Save(rates)
}
