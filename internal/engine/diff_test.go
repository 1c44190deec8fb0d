package engine_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/engine"
)

func TestDiff_Leaves(t *testing.T) {
	actual := map[string]any{
		"a": map[string]any{"x": 1.0, "y": 2.0},
		"b": "same",
		"c": 3.0,
	}
	expected := map[string]any{
		"a": map[string]any{"x": 1.0, "y": 2.5},
		"b": "same",
		"d": 4.0,
	}

	diffs := engine.Diff(actual, expected, engine.DefaultRelTolerance)
	require.Len(t, diffs, 3)

	assert.Equal(t, ".a.y", diffs[0].Path)
	assert.Equal(t, "at .a.y expected 2.5 got 2", diffs[0].String())

	assert.Equal(t, ".c", diffs[1].Path)
	assert.Equal(t, engine.Nothing, diffs[1].Expected)
	assert.Equal(t, "at .c expected nothing got 3", diffs[1].String())

	assert.Equal(t, ".d", diffs[2].Path)
	assert.Equal(t, engine.Nothing, diffs[2].Actual)
}

func TestDiff_MissingSubtree(t *testing.T) {
	actual := map[string]any{"sector": map[string]any{"energy": 1.0, "CO2e_pb": 2.0}}
	expected := map[string]any{}

	diffs := engine.Diff(actual, expected, engine.DefaultRelTolerance)
	require.Len(t, diffs, 2)
	assert.Equal(t, ".sector.CO2e_pb", diffs[0].Path)
	assert.Equal(t, ".sector.energy", diffs[1].Path)
}

func TestDiff_Tolerance(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		expected any
		rel      float64
		match    bool
	}{
		{"equal", 1.0, 1.0, 1e-9, true},
		{"within rel", 1e6 + 1e-4, 1e6, 1e-9, true},
		{"outside rel", 1.001, 1.0, 1e-9, false},
		{"loose rel", 1.001, 1.0, 1e-2, true},
		{"abs floor", 1e-13, 0.0, 1e-9, true},
		{"above abs floor", 1e-9, 0.0, 1e-9, false},
		{"nan both", math.NaN(), math.NaN(), 1e-9, true},
		{"nan one side", math.NaN(), 1.0, 1e-9, false},
		{"nan string", "NaN", math.NaN(), 1e-9, true},
		{"int and float", 3, 3.0, 1e-9, true},
		{"string vs number", "3", 3.0, 1e-9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diffs := engine.Diff(tt.actual, tt.expected, tt.rel)
			if tt.match {
				assert.Empty(t, diffs)
			} else {
				assert.Len(t, diffs, 1)
			}
		})
	}
}

func TestDiffDocuments_ResultDump(t *testing.T) {
	res := runRegion(t, engine.Options{})

	var a, b bytes.Buffer
	require.NoError(t, engine.RenderJSON(&a, res))
	require.NoError(t, engine.RenderJSON(&b, res))

	diffs, err := engine.DiffDocuments(a.Bytes(), b.Bytes(), engine.DefaultRelTolerance)
	require.NoError(t, err)
	assert.Empty(t, diffs)

	rerun := *res
	rerun.RunID = "01J0000000000000000000000"
	rerun.GeneratedAt = res.GeneratedAt.Add(time.Hour)
	var r bytes.Buffer
	require.NoError(t, engine.RenderJSON(&r, &rerun))
	diffs, err = engine.DiffDocuments(r.Bytes(), a.Bytes(), engine.DefaultRelTolerance)
	require.NoError(t, err)
	assert.Empty(t, diffs, "run metadata is not compared")

	rerun.Region = "elsewhere"
	r.Reset()
	require.NoError(t, engine.RenderJSON(&r, &rerun))
	diffs, err = engine.DiffDocuments(r.Bytes(), a.Bytes(), engine.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, ".region", diffs[0].Path)

	other := *res
	changed := *res.Bisko
	changed.Total.Energy *= 1.01
	other.Bisko = &changed
	var c bytes.Buffer
	require.NoError(t, engine.RenderJSON(&c, &other))

	diffs, err = engine.DiffDocuments(c.Bytes(), a.Bytes(), engine.DefaultRelTolerance)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, ".bisko.total.energy", diffs[0].Path)

	_, err = engine.DiffDocuments([]byte("{"), a.Bytes(), engine.DefaultRelTolerance)
	assert.ErrorContains(t, err, "decoding actual")
}

func TestDiffFiles(t *testing.T) {
	dir := t.TempDir()
	actual := filepath.Join(dir, "actual.json")
	expected := filepath.Join(dir, "expected.yaml")
	require.NoError(t, os.WriteFile(actual, []byte(`{"total": {"energy": 10, "CO2e_pb": 0.5}}`), 0o600))
	require.NoError(t, os.WriteFile(expected, []byte("total:\n  energy: 10\n  CO2e_pb: 0.5\n"), 0o600))

	diffs, err := engine.DiffFiles(actual, expected, engine.DefaultRelTolerance)
	require.NoError(t, err)
	assert.Empty(t, diffs)

	_, err = engine.DiffFiles(filepath.Join(dir, "missing.json"), expected, engine.DefaultRelTolerance)
	assert.Error(t, err)
}
