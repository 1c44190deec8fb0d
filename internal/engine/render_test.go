package engine_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/engine"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{1234.567, 2, "1,234.57"},
		{1234567.891, 0, "1,234,568"},
		{-9876.5, 1, "-9,876.5"},
		{0.004, 2, "0.00"},
		{-0.004, 2, "0.00"},
		{12, -3, "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.FormatFloat(tt.in, tt.precision), "FormatFloat(%v, %d)", tt.in, tt.precision)
	}
}

func TestRows(t *testing.T) {
	res := runRegion(t, engine.Options{})
	rows := engine.Rows(res.Bisko)
	require.NotEmpty(t, rows)

	totals := map[string]engine.Row{}
	for _, row := range rows {
		if row.IsTotal() {
			totals[row.Sector] = row
		}
	}
	assert.Len(t, totals, len(engine.Sectors()), "every sector ends with a total")

	last := rows[len(rows)-1]
	assert.Equal(t, engine.SectorNationwide, last.Sector)
	require.NotNil(t, last.Energy)
	assert.InDelta(t, res.Bisko.Total.Energy, *last.Energy, 1e-9)
	assert.InDelta(t, res.Bisko.Total.CO2ePb, last.CO2ePb, 1e-9)

	agri := totals[engine.SectorAgriculture]
	assert.Nil(t, agri.Energy)
	assert.Nil(t, agri.CO2eCb)
	assert.InDelta(t, 38, agri.CO2ePb, 1e-9)

	assert.Nil(t, engine.SectorRows(res.Bisko, "nope"))
	assert.Nil(t, engine.Rows(nil))
}

func TestRenderTable(t *testing.T) {
	res := runRegion(t, engine.Options{})

	var buf bytes.Buffer
	require.NoError(t, engine.RenderTable(&buf, res, 2))

	out := buf.String()
	assert.Contains(t, out, "SECTOR")
	assert.Contains(t, out, engine.SectorResidences)
	assert.Contains(t, out, engine.SectorNationwide)
	assert.Contains(t, out, "03159016 Göttingen")
	assert.Equal(t, 1, strings.Count(out, engine.SectorLULUCF+" "), "sector name printed once per block")

	assert.ErrorIs(t, engine.RenderTable(&buf, nil, 2), engine.ErrNoResult)
}

func TestRenderJSON(t *testing.T) {
	res := runRegion(t, engine.Options{})

	var buf bytes.Buffer
	require.NoError(t, engine.RenderJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.RunID, decoded["run_id"])
	assert.Equal(t, res.Region, decoded["region"])

	tree, ok := decoded["bisko"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"priv_residences", "buissenesses", "transport", "industry", "agri", "lulucf",
		"total", "communal_facilities", "bisko_quality",
	} {
		assert.Contains(t, tree, key)
	}

	assert.ErrorIs(t, engine.RenderJSON(&buf, &engine.Result{}), engine.ErrNoResult)
}

func TestRenderNDJSON(t *testing.T) {
	res := runRegion(t, engine.Options{})

	var buf bytes.Buffer
	require.NoError(t, engine.RenderNDJSON(&buf, res))

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		var row map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &row))
		assert.Equal(t, res.RunID, row["run_id"])
		assert.Contains(t, row, "sector")
		assert.Contains(t, row, "CO2e_pb")
		lines++
	}
	assert.Equal(t, len(engine.Rows(res.Bisko)), lines)
}
