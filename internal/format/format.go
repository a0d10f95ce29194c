// Package format renders engine figures as human-readable strings:
// FCFA amounts with thousand separators and kWh energies with a fixed
// single decimal.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps the thousand separators consistent.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Currency formats an FCFA amount: thousand separators, zero decimal
// places (rounded), " FCFA" suffix.
// Example: Currency(73757.4) returns "73,757 FCFA".
func Currency(amount float64) string {
	return Cost(amount) + " FCFA"
}

// Cost formats a currency value without the unit suffix: thousand
// separators and zero decimal places.
func Cost(amount float64) string {
	return printer.Sprintf("%d", int64(math.Round(amount)))
}

// Energy formats a kWh value: exactly one decimal place, " kWh" suffix.
// Example: Energy(42) returns "42.0 kWh".
func Energy(kwh float64) string {
	return fmt.Sprintf("%.1f kWh", kwh)
}

// Price formats a per-kWh unit price with two decimals, as published in
// the tariff schedule.
func Price(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
