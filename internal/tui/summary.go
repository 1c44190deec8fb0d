package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/bisko/internal/bisko"
	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/equivalency"
)

const (
	borderPadding  = 2
	defaultWidth   = 100
	defaultHeight  = 24
	percent        = 100
	qualityDigits  = 5
	labelColumnLen = 28
)

// RenderSummary renders the boxed nationwide summary of a result: totals,
// communal facilities, quality and each sector's share of the combined
// combustion and production based emissions.
func RenderSummary(res *engine.Result, width, precision int) string {
	if res == nil || res.Bisko == nil {
		return InfoStyle.Render("No results to display.")
	}
	if width <= borderPadding {
		width = defaultWidth
	}
	b := res.Bisko

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("BISKO BALANCE " + res.Region))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(fmt.Sprintf("year %d  run %s", res.Year, res.RunID)))
	content.WriteString("\n\n")

	line := func(label, value string) {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", labelColumnLen, label)))
		content.WriteString(ValueStyle.Render(value))
		content.WriteString("\n")
	}
	line("Energy:", engine.FormatFloat(b.Total.Energy, precision))
	line("CO2e combustion based:", engine.FormatFloat(b.Total.CO2eCb, precision))
	line("CO2e production based:", engine.FormatFloat(b.Total.CO2ePb, precision))
	line("CO2e total:", engine.FormatFloat(b.Total.CO2e(), precision))
	line("Communal facilities energy:", engine.FormatFloat(b.CommunalFacilities.Energy, precision))
	line("BISKO quality:", engine.FormatFloat(b.Quality, qualityDigits))

	var shares []string
	for _, s := range SectorShares(b) {
		shares = append(shares, fmt.Sprintf("%s %.1f%%", s.Sector, s.Percent))
	}
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render(strings.Join(shares, "  ")))

	if eq, err := equivalency.Tonnes(b.Total.CO2e()); err == nil && !eq.IsEmpty {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(eq.DisplayText))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// Share is one sector's percentage of the nationwide emissions.
type Share struct {
	Sector  string
	Percent float64
}

// SectorShares returns each sector's share of the nationwide combustion
// and production based emissions. Sinks such as LULUCF yield negative
// shares. All shares are 0 when the total is 0.
func SectorShares(b *bisko.Bisko) []Share {
	total := b.Total.CO2e()
	var out []Share
	for _, s := range SectorSummaries(b) {
		if s.Sector == engine.SectorNationwide {
			continue
		}
		pct := 0.0
		if total != 0 {
			pct = s.CO2e() / total * percent
		}
		out = append(out, Share{Sector: s.Sector, Percent: pct})
	}
	return out
}

// SectorSummaries returns the total row of every sector in display order.
func SectorSummaries(b *bisko.Bisko) []engine.Row {
	var out []engine.Row
	for _, row := range engine.Rows(b) {
		if row.IsTotal() {
			out = append(out, row)
		}
	}
	return out
}
