package bisko

// Div returns numerator/denominator, or 0 when the denominator is zero.
//
// Prorating a supply domain by a sector's share of it must not fail for
// regions where the domain is empty, so a zero denominator is defined to
// contribute nothing.
func Div(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
