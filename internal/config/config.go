// Package config holds the user-editable Woyofal rate configuration and
// its YAML persistence. Defaults mirror the published Senelec tariff.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in tariff defaults (FCFA per kWh).
const (
	DefaultDaysPerMonth = 30.0
	DefaultPriceT1      = 82.00
	DefaultPriceT2      = 136.49
	DefaultPriceT3      = 159.36
)

// configFileName is the per-user config file under the woyofal directory.
const (
	configDirName  = ".woyofal"
	configFileName = "config.yaml"
)

// configFileMode restricts the config file to the owning user.
const configFileMode = 0o600

// Rate validation errors.
var (
	ErrDaysNotPositive = errors.New("days per month must be greater than zero")
	ErrPriceNegative   = errors.New("tier price cannot be negative")
	ErrNotFinite       = errors.New("rate values must be finite numbers")
)

// Rates is the tiered tariff configuration. Tier prices are expected to
// be non-decreasing (the schedule is progressive) but the engine does not
// enforce that ordering; keeping it sensible is the caller's business.
type Rates struct {
	// DaysPerMonth converts a daily power draw into monthly energy.
	DaysPerMonth float64 `yaml:"days_per_month" json:"days_per_month"`
	// PriceT1 is the unit price for the first 150 kWh.
	PriceT1 float64 `yaml:"price_t1" json:"price_t1"`
	// PriceT2 is the unit price for consumption between 150 and 250 kWh.
	PriceT2 float64 `yaml:"price_t2" json:"price_t2"`
	// PriceT3 is the unit price for consumption above 250 kWh.
	PriceT3 float64 `yaml:"price_t3" json:"price_t3"`
}

// DefaultRates returns a fresh copy of the built-in tariff. Reset is
// defined as replacing the current configuration with this value; there
// is no shared mutable default.
func DefaultRates() Rates {
	return Rates{
		DaysPerMonth: DefaultDaysPerMonth,
		PriceT1:      DefaultPriceT1,
		PriceT2:      DefaultPriceT2,
		PriceT3:      DefaultPriceT3,
	}
}

// Validate checks the rate configuration. Derived tables are not
// computed at all when validation fails, so the engine never sees a
// non-finite or negative rate.
func (r Rates) Validate() error {
	for _, v := range []float64{r.DaysPerMonth, r.PriceT1, r.PriceT2, r.PriceT3} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	if r.DaysPerMonth <= 0 {
		return ErrDaysNotPositive
	}
	if r.PriceT1 < 0 || r.PriceT2 < 0 || r.PriceT3 < 0 {
		return ErrPriceNegative
	}
	return nil
}

// Path returns the location of the per-user config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads rates from the per-user config file. A missing file is not
// an error: the built-in defaults are returned. A present but malformed
// file is an error so a typo never silently falls back to defaults.
func Load() (Rates, error) {
	path, err := Path()
	if err != nil {
		return DefaultRates(), err
	}
	return LoadFile(path)
}

// LoadFile reads rates from an explicit path, merging the file's values
// over the built-in defaults so partial configs stay usable.
func LoadFile(path string) (Rates, error) {
	rates := DefaultRates()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rates, nil
		}
		return rates, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &rates); err != nil {
		return DefaultRates(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := rates.Validate(); err != nil {
		return DefaultRates(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return rates, nil
}

// Save writes rates to the per-user config file, creating the woyofal
// directory if needed.
func Save(rates Rates) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(rates, path)
}

// SaveFile writes rates to an explicit path.
func SaveFile(rates Rates, path string) error {
	if err := rates.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
