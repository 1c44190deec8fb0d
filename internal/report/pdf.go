package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/rshade/bisko/internal/engine"
)

// Column widths in mm.
const (
	colItem   = 70
	colNumber = 38
	rowHeight = 6

	// pageBreakY is the cursor height past which a sector table starts on
	// a new page.
	pageBreakY = 240
)

// WritePDF renders a summary page followed by one table per sector.
func WritePDF(w io.Writer, res *engine.Result, precision int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("BISKO balance "+res.Region, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr("BISKO balance "+res.Region))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	for _, line := range summaryLines(res) {
		pdf.CellFormat(colItem, rowHeight, tr(fmt.Sprint(line[0])), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, rowHeight, tr(summaryValue(line[1], precision)), "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	for _, sector := range engine.Sectors() {
		pdf.Ln(rowHeight)
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, sector)
		pdf.Ln(9)

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(colItem, rowHeight, "Item", "1", 0, "L", false, 0, "")
		for _, h := range []string{"Energy", "CO2e cb", "CO2e pb"} {
			pdf.CellFormat(colNumber, rowHeight, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		for _, r := range engine.SectorRows(res.Bisko, sector) {
			style := ""
			if r.IsTotal() {
				style = "B"
			}
			pdf.SetFont("Arial", style, 9)
			pdf.CellFormat(colItem, rowHeight, r.Item, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colNumber, rowHeight, pdfNumber(r.Energy, precision), "1", 0, "R", false, 0, "")
			pdf.CellFormat(colNumber, rowHeight, pdfNumber(r.CO2eCb, precision), "1", 0, "R", false, 0, "")
			pdf.CellFormat(colNumber, rowHeight, engine.FormatFloat(r.CO2ePb, precision), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func pdfNumber(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return engine.FormatFloat(*v, precision)
}

func summaryValue(v any, precision int) string {
	if f, ok := v.(float64); ok {
		return engine.FormatFloat(f, precision)
	}
	return fmt.Sprint(v)
}
