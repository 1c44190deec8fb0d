package bisko

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Partial is an optional numeric part of a contribution. The zero value is
// absent ("not applicable to this fuel"), which is distinct from Some(0)
// ("applicable, and zero") even though both fold to 0.
type Partial struct {
	value float64
	valid bool
}

// Some returns a present Partial holding v.
func Some(v float64) Partial {
	return Partial{value: v, valid: true}
}

// Valid reports whether the partial is present.
func (p Partial) Valid() bool { return p.valid }

// OrZero returns the value, or 0 when absent.
func (p Partial) OrZero() float64 {
	if !p.valid {
		return 0
	}
	return p.value
}

// MarshalJSON writes absent partials as null.
func (p Partial) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON reads null as absent.
func (p *Partial) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Partial{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Some(v)
	return nil
}

// SumPartials folds ps treating absent values as 0.
func SumPartials(ps []Partial) float64 {
	return lo.SumBy(ps, Partial.OrZero)
}
