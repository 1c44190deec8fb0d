package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/bisko/internal/engine"
)

// SummarySheet is the name of the first workbook sheet.
const SummarySheet = "summary"

var sectorHeader = []any{"Item", "Energy", "CO2e cb", "CO2e pb"}

// WriteXLSX writes a workbook with a summary sheet followed by one sheet
// per sector. Cells hold unrounded numbers; absent channels stay empty.
func WriteXLSX(w io.Writer, res *engine.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	_ = f.SetCellValue(SummarySheet, "A1", "BISKO balance")
	_ = f.SetCellStyle(SummarySheet, "A1", "A1", bold)
	for i, line := range summaryLines(res) {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		row := []any{line[0], line[1]}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	for _, sector := range engine.Sectors() {
		if _, err := f.NewSheet(sector); err != nil {
			return fmt.Errorf("adding sheet %s: %w", sector, err)
		}
		header := sectorHeader
		if err := f.SetSheetRow(sector, "A1", &header); err != nil {
			return fmt.Errorf("writing %s header: %w", sector, err)
		}
		_ = f.SetCellStyle(sector, "A1", "D1", bold)

		for i, r := range engine.SectorRows(res.Bisko, sector) {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []any{r.Item, optional(r.Energy), optional(r.CO2eCb), r.CO2ePb}
			if err := f.SetSheetRow(sector, cell, &row); err != nil {
				return fmt.Errorf("writing %s row: %w", sector, err)
			}
			if r.IsTotal() {
				end, _ := excelize.CoordinatesToCellName(len(row), i+2)
				_ = f.SetCellStyle(sector, cell, end, bold)
			}
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// optional returns nil for absent values so the cell stays empty.
func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
