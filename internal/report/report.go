// Package report exports engine results as spreadsheet and PDF documents.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/rshade/bisko/internal/engine"
)

// ErrUnknownFormat is returned by Write for formats it cannot produce.
var ErrUnknownFormat = errors.New("unknown report format")

// Binary report formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// IsBinary reports whether format is written by this package rather than
// rendered as text.
func IsBinary(format string) bool {
	return format == FormatXLSX || format == FormatPDF
}

// Write exports res to w in format.
func Write(w io.Writer, format string, res *engine.Result, precision int) error {
	if res == nil || res.Bisko == nil {
		return engine.ErrNoResult
	}
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, res)
	case FormatPDF:
		return WritePDF(w, res, precision)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// summaryLines are the label/value pairs heading every report.
func summaryLines(res *engine.Result) [][2]any {
	b := res.Bisko
	return [][2]any{
		{"Region", res.Region},
		{"Year", res.Year},
		{"Run", res.RunID},
		{"Generated", res.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Energy", b.Total.Energy},
		{"CO2e combustion based", b.Total.CO2eCb},
		{"CO2e production based", b.Total.CO2ePb},
		{"Communal facilities energy", b.CommunalFacilities.Energy},
		{"BISKO quality", b.Quality},
	}
}
