// Package equivalency expresses CO2e quantities as everyday equivalents
// such as kilometres driven by a passenger car.
package equivalency

import (
	"fmt"
	"math"
	"strings"
)

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	ErrInvalidUnit         = constError("invalid carbon unit")
	ErrNegativeValue       = constError("negative carbon value")
	ErrCalculationOverflow = constError("calculation overflow")
)

// Emission factors in kg CO2e per unit of activity, after the EPA
// greenhouse gas equivalencies calculator.
const (
	// CarKilometreFactor is an average passenger car per kilometre.
	CarKilometreFactor = 0.192 / 1.609344

	// TreeSeedlingFactor is absorbed by one urban tree seedling grown for
	// ten years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is one day of an average home's electricity use.
	HomeDayFactor = 18.3
)

// MinThresholdKg is the smallest quantity for which equivalents are given.
const MinThresholdKg = 1.0

// Kind is a category of equivalent.
type Kind int

const (
	// CarKilometres is kilometres driven by an average passenger car.
	CarKilometres Kind = iota
	// TreeSeedlings is tree seedlings grown for ten years.
	TreeSeedlings
	// HomeDays is days of household electricity use.
	HomeDays
)

func (k Kind) String() string {
	switch k {
	case CarKilometres:
		return "CarKilometres"
	case TreeSeedlings:
		return "TreeSeedlings"
	case HomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Result is one computed equivalent.
type Result struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Output holds every equivalent of one quantity.
type Output struct {
	InputKg     float64  `json:"input_kg"`
	Results     []Result `json:"results"`
	DisplayText string   `json:"display_text"`
	IsEmpty     bool     `json:"is_empty"`
}

// Calculate converts value, given in unit (t, kg, g, lb, optionally with a
// CO2e suffix), into equivalents. Quantities below MinThresholdKg yield an
// empty output without error.
func Calculate(value float64, unit string) (Output, error) {
	kg, err := NormalizeToKg(value, unit)
	if err != nil {
		return Output{IsEmpty: true}, err
	}
	if kg < MinThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}, nil
	}

	results := []Result{
		{Kind: CarKilometres, Value: kg / CarKilometreFactor, Label: "km driven by car"},
		{Kind: TreeSeedlings, Value: kg / TreeSeedlingFactor, Label: "tree seedlings grown for 10 years"},
		{Kind: HomeDays, Value: kg / HomeDayFactor, Label: "days of household electricity"},
	}
	for i := range results {
		if math.IsInf(results[i].Value, 0) || math.IsNaN(results[i].Value) {
			return Output{IsEmpty: true}, ErrCalculationOverflow
		}
		results[i].Formatted = FormatLarge(results[i].Value)
	}

	return Output{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s km by car or the uptake of ~%s tree seedlings",
			results[0].Formatted, results[1].Formatted),
	}, nil
}

// Tonnes is Calculate for a quantity in tonnes CO2e, the unit of every
// balance figure.
func Tonnes(value float64) (Output, error) {
	return Calculate(value, "t")
}

func unitFactor(unit string) (float64, bool) {
	switch strings.TrimSuffix(strings.ToLower(unit), "co2e") {
	case "g":
		return 0.001, true
	case "kg":
		return 1, true
	case "t":
		return 1000, true
	case "lb":
		return 0.453592, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts value in unit to kilograms.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}
