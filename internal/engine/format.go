package engine

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the English way regardless of the host locale.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// maxPrecision bounds the number of decimals FormatFloat emits.
const maxPrecision = 10

// FormatFloat formats f with precision decimals and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	precision = max(0, min(precision, maxPrecision))

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier
	if rounded == 0 {
		// avoid "-0.00"
		rounded = 0
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), rounded)
}

// formatOptional renders a nil value as "-".
func formatOptional(f *float64, precision int) string {
	if f == nil {
		return "-"
	}
	return FormatFloat(*f, precision)
}
