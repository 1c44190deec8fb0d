package refdata

import (
	"errors"
	"fmt"
)

// Dataset names and the key column of the facts and assumptions tables.
const (
	DatasetFacts       = "facts"
	DatasetAssumptions = "assumptions"
	LabelColumn        = "label"
	ValueColumn        = "value"
)

// Lookup resolves facts (statistics about the past) and assumptions (about
// the future) by label.
type Lookup interface {
	Fact(key string) (float64, error)
	Ass(key string) (float64, error)
}

// CompleteRow is a fact or assumption with its documentation.
type CompleteRow struct {
	Label       string  `json:"label"`
	Group       string  `json:"group"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Rationale   string  `json:"rationale"`
	Reference   string  `json:"reference"`
	Link        string  `json:"link"`
}

// FactsAndAssumptions serves lookups from the two reference tables.
type FactsAndAssumptions struct {
	facts       *Table
	assumptions *Table
}

// NewFactsAndAssumptions wraps already loaded tables.
func NewFactsAndAssumptions(facts, assumptions *Table) *FactsAndAssumptions {
	return &FactsAndAssumptions{facts: facts, assumptions: assumptions}
}

// LoadFactsAndAssumptions reads both tables from CSV files keyed by label.
func LoadFactsAndAssumptions(factsPath, assumptionsPath string) (*FactsAndAssumptions, error) {
	facts, err := LoadTable(factsPath, DatasetFacts, LabelColumn)
	if err != nil {
		return nil, err
	}
	assumptions, err := LoadTable(assumptionsPath, DatasetAssumptions, LabelColumn)
	if err != nil {
		return nil, err
	}
	return NewFactsAndAssumptions(facts, assumptions), nil
}

// Fact returns the value of a fact.
func (fa *FactsAndAssumptions) Fact(key string) (float64, error) {
	return value(fa.facts, key)
}

// Ass returns the value of an assumption.
func (fa *FactsAndAssumptions) Ass(key string) (float64, error) {
	return value(fa.assumptions, key)
}

// CompleteFact returns a fact with its documentation columns.
func (fa *FactsAndAssumptions) CompleteFact(key string) (CompleteRow, error) {
	return complete(fa.facts, key)
}

// CompleteAss returns an assumption with its documentation columns.
func (fa *FactsAndAssumptions) CompleteAss(key string) (CompleteRow, error) {
	return complete(fa.assumptions, key)
}

// Tables returns the underlying facts and assumptions tables.
func (fa *FactsAndAssumptions) Tables() (facts, assumptions *Table) {
	return fa.facts, fa.assumptions
}

func value(t *Table, key string) (float64, error) {
	row, err := t.Row(key)
	if err != nil {
		return 0, err
	}
	return row.Float(ValueColumn)
}

func complete(t *Table, key string) (CompleteRow, error) {
	row, err := t.Row(key)
	if err != nil {
		return CompleteRow{}, err
	}
	out := CompleteRow{Label: key}
	if out.Value, err = row.Float(ValueColumn); err != nil {
		return CompleteRow{}, err
	}
	for col, dst := range map[string]*string{
		"group":       &out.Group,
		"description": &out.Description,
		"unit":        &out.Unit,
		"rationale":   &out.Rationale,
		"reference":   &out.Reference,
		"link":        &out.Link,
	} {
		if *dst, err = row.Str(col); err != nil {
			return CompleteRow{}, err
		}
	}
	return out, nil
}

// MapLookup serves facts and assumptions from in-memory maps, as carried by
// an input document.
type MapLookup struct {
	Facts       map[string]float64
	Assumptions map[string]float64
}

// Fact implements Lookup.
func (m MapLookup) Fact(key string) (float64, error) {
	return fromMap(m.Facts, "document "+DatasetFacts, key)
}

// Ass implements Lookup.
func (m MapLookup) Ass(key string) (float64, error) {
	return fromMap(m.Assumptions, "document "+DatasetAssumptions, key)
}

func fromMap(values map[string]float64, dataset, key string) (float64, error) {
	v, ok := values[key]
	if !ok {
		return 0, &RowNotFound{LookupFailure: LookupFailure{Dataset: dataset, KeyColumn: LabelColumn, KeyValue: key}}
	}
	return v, nil
}

// Chain tries each lookup in order and returns the first value found. Only
// RowNotFound moves on to the next lookup; any other failure is returned
// as is. Nil entries are skipped.
type Chain []Lookup

// Fact implements Lookup.
func (c Chain) Fact(key string) (float64, error) {
	return c.resolve(key, Lookup.Fact)
}

// Ass implements Lookup.
func (c Chain) Ass(key string) (float64, error) {
	return c.resolve(key, Lookup.Ass)
}

func (c Chain) resolve(key string, get func(Lookup, string) (float64, error)) (float64, error) {
	var lastErr error
	for _, l := range c {
		if l == nil {
			continue
		}
		v, err := get(l, key)
		if err == nil {
			return v, nil
		}
		var notFound *RowNotFound
		if !errors.As(err, &notFound) {
			return 0, err
		}
		lastErr = err
	}
	if lastErr == nil {
		return 0, fmt.Errorf("%w: no lookup configured for %q", ErrLookup, key)
	}
	return 0, lastErr
}
