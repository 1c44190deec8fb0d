package engine

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

// Tolerances used when comparing result trees.
const (
	// DefaultRelTolerance is the relative tolerance used when none is given.
	DefaultRelTolerance = 1e-9

	// AbsTolerance is the absolute floor below which numbers always match.
	AbsTolerance = 1e-12
)

// missing stands in for a key present on one side only.
type missing struct{}

func (missing) String() string { return "nothing" }

// Nothing is the value reported for a side that lacks a key.
var Nothing fmt.Stringer = missing{}

// Difference is one leaf where two result trees disagree.
type Difference struct {
	Path     string
	Actual   any
	Expected any
}

func (d Difference) String() string {
	return fmt.Sprintf("at %s expected %v got %v", d.Path, d.Expected, d.Actual)
}

// Diff compares two decoded result trees and returns every differing
// leaf. Maps are compared key by key; numbers match when they are within
// rel of each other or within AbsTolerance. NaN matches NaN.
func Diff(actual, expected any, rel float64) []Difference {
	var out []Difference
	diffValue("", actual, expected, rel, &out)
	return out
}

// runMetadata are the keys RenderJSON adds next to the bisko tree that
// change on every run.
//
//nolint:gochecknoglobals // Read-only lookup table.
var runMetadata = []string{"run_id", "generated_at"}

// withoutRunMetadata drops runMetadata from a rendered Result. Trees
// without a bisko key are returned unchanged.
func withoutRunMetadata(tree any) any {
	m, ok := asMap(tree)
	if !ok {
		return tree
	}
	if _, ok := m["bisko"]; !ok {
		return tree
	}
	return lo.OmitByKeys(m, runMetadata)
}

// DiffDocuments decodes two JSON or YAML result dumps and compares them.
// The run id and generation time of rendered results are not compared.
func DiffDocuments(actual, expected []byte, rel float64) ([]Difference, error) {
	a, err := decodeTree(actual)
	if err != nil {
		return nil, fmt.Errorf("decoding actual: %w", err)
	}
	e, err := decodeTree(expected)
	if err != nil {
		return nil, fmt.Errorf("decoding expected: %w", err)
	}
	return Diff(withoutRunMetadata(a), withoutRunMetadata(e), rel), nil
}

// DiffFiles compares the result dumps stored at two paths.
func DiffFiles(actualPath, expectedPath string, rel float64) ([]Difference, error) {
	a, err := os.ReadFile(actualPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", actualPath, err)
	}
	e, err := os.ReadFile(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", expectedPath, err)
	}
	return DiffDocuments(a, e, rel)
}

// decodeTree parses JSON through the YAML decoder, which also accepts the
// .nan and .inf spellings.
func decodeTree(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func diffValue(path string, actual, expected any, rel float64, out *[]Difference) {
	am, aIsMap := asMap(actual)
	em, eIsMap := asMap(expected)
	_, aMissing := actual.(missing)
	_, eMissing := expected.(missing)

	switch {
	case aIsMap && eIsMap:
		for _, k := range unionKeys(am, em) {
			av, ok := am[k]
			if !ok {
				av = missing{}
			}
			ev, ok := em[k]
			if !ok {
				ev = missing{}
			}
			diffValue(path+"."+k, av, ev, rel, out)
		}
	case aIsMap && eMissing:
		for _, k := range unionKeys(am, nil) {
			diffValue(path+"."+k, am[k], missing{}, rel, out)
		}
	case eIsMap && aMissing:
		for _, k := range unionKeys(nil, em) {
			diffValue(path+"."+k, missing{}, em[k], rel, out)
		}
	default:
		af, aNum := asFloat(actual)
		ef, eNum := asFloat(expected)
		if aNum && eNum {
			if !floatMatches(af, ef, rel) {
				*out = append(*out, Difference{Path: path, Actual: actual, Expected: expected})
			}
			return
		}
		if !reflect.DeepEqual(actual, expected) {
			*out = append(*out, Difference{Path: path, Actual: actual, Expected: expected})
		}
	}
}

func floatMatches(actual, expected, rel float64) bool {
	aNaN, eNaN := math.IsNaN(actual), math.IsNaN(expected)
	if aNaN || eNaN {
		return aNaN && eNaN
	}
	return scalar.EqualWithinAbsOrRel(actual, expected, AbsTolerance, rel)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// asFloat converts numeric leaves. The strings NaN and Infinity count as
// numbers since some writers emit them unquoted into JSON.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		switch strings.ToLower(n) {
		case "nan", "infinity", "+infinity", "-infinity":
			f, err := strconv.ParseFloat(n, 64)
			return f, err == nil
		}
	}
	return 0, false
}

func unionKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
