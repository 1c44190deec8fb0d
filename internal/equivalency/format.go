package equivalency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

const (
	million = 1_000_000
	billion = 1_000_000_000
)

// FormatLarge rounds n and groups thousands, switching to "~1.5 million"
// and "~1.5 billion" notation for large values.
func FormatLarge(n float64) string {
	switch {
	case n >= billion:
		return fmt.Sprintf("~%.1f billion", n/billion)
	case n >= million:
		return fmt.Sprintf("~%.1f million", n/million)
	default:
		return printer.Sprintf("%d", int64(math.Round(n)))
	}
}
