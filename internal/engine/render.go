package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// RenderTable writes the flattened result as an aligned text table, one
// block per sector, numbers rounded to precision decimals.
func RenderTable(w io.Writer, res *Result, precision int) error {
	if res == nil || res.Bisko == nil {
		return ErrNoResult
	}
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "SECTOR\tITEM\tENERGY\tCO2E CB\tCO2E PB\t\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t------\t-------\t-------\t\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	prev := ""
	for _, row := range Rows(res.Bisko) {
		sector := row.Sector
		if sector == prev {
			sector = ""
		}
		prev = row.Sector

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			sector, row.Item,
			formatOptional(row.Energy, precision),
			formatOptional(row.CO2eCb, precision),
			FormatFloat(row.CO2ePb, precision),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\t\t\t\t\t\n"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "REGION\t%s\t\t\tquality %s\t\n",
		res.Region, FormatFloat(res.Bisko.Quality, maxPrecision/2)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return tw.Flush()
}

// RenderJSON writes res as indented JSON including the run metadata.
func RenderJSON(w io.Writer, res *Result) error {
	if res == nil || res.Bisko == nil {
		return ErrNoResult
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ndjsonRow is a Row tagged with the run it belongs to.
type ndjsonRow struct {
	RunID  string `json:"run_id"`
	Region string `json:"region"`
	Row
}

// RenderNDJSON writes one JSON line per flattened row with no wrapper.
func RenderNDJSON(w io.Writer, res *Result) error {
	if res == nil || res.Bisko == nil {
		return ErrNoResult
	}
	for _, row := range Rows(res.Bisko) {
		data, err := json.Marshal(ndjsonRow{RunID: res.RunID, Region: res.Region, Row: row})
		if err != nil {
			return fmt.Errorf("marshaling row: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}
