package bisko

import "github.com/samber/lo"

// Sums is the field-wise fold of a sector's contributions.
type Sums struct {
	EnergyFromSameSector float64 `json:"energy_from_same_eb_sector"`
	EnergyFromAgri       float64 `json:"energy_from_eb_agri_sector"`

	CO2eFromSameSector float64 `json:"eb_CO2e_from_same_sector"`
	CO2eCbFromAgri     float64 `json:"eb_CO2e_cb_from_agri"`
	CO2eCbFromHeat     float64 `json:"eb_CO2e_cb_from_heat"`
	CO2eCbFromElec     float64 `json:"eb_CO2e_cb_from_elec"`
	CO2eCbFromFuels    float64 `json:"eb_CO2e_cb_from_fuels"`
	CO2ePbFromHeat     float64 `json:"eb_CO2e_pb_from_heat"`

	Energy float64 `json:"energy"`
	CO2eCb float64 `json:"CO2e_cb"`
	CO2ePb float64 `json:"CO2e_pb"`
}

// CalcSums folds contributions into Sums, treating absent parts as 0. An
// empty slice yields all-zero Sums.
func CalcSums(contributions []Contribution) Sums {
	part := func(f func(ContributionParts) Partial) float64 {
		return lo.SumBy(contributions, func(c Contribution) float64 {
			return f(c.parts).OrZero()
		})
	}

	return Sums{
		EnergyFromSameSector: part(func(p ContributionParts) Partial { return p.EnergyFromSameSector }),
		EnergyFromAgri:       part(func(p ContributionParts) Partial { return p.EnergyFromAgri }),
		CO2eFromSameSector:   part(func(p ContributionParts) Partial { return p.CO2eCbFromSameSector }),
		CO2eCbFromAgri:       part(func(p ContributionParts) Partial { return p.CO2eCbFromAgri }),
		CO2eCbFromHeat:       part(func(p ContributionParts) Partial { return p.CO2eCbFromHeat }),
		CO2eCbFromElec:       part(func(p ContributionParts) Partial { return p.CO2eCbFromElec }),
		CO2eCbFromFuels:      part(func(p ContributionParts) Partial { return p.CO2eCbFromFuels }),
		CO2ePbFromHeat:       part(func(p ContributionParts) Partial { return p.CO2ePbFromHeat }),

		Energy: lo.SumBy(contributions, Contribution.Energy),
		CO2eCb: lo.SumBy(contributions, Contribution.CO2eCb),
		CO2ePb: lo.SumBy(contributions, Contribution.CO2ePb),
	}
}

// EnergySource returns the energy and emission totals of s.
func (s Sums) EnergySource() EnergySource {
	return EnergySource{Energy: s.Energy, CO2eCb: s.CO2eCb, CO2ePb: s.CO2ePb}
}

// fuel pairs the parts of one fuel with the result field that receives its
// public view.
type fuel struct {
	parts ContributionParts
	dst   *EnergySource
}

// buildFuels constructs a contribution per fuel, stores each one's
// EnergySource in its destination and returns the sector Sums.
func buildFuels(fuels []fuel) Sums {
	contributions := make([]Contribution, 0, len(fuels))
	for _, f := range fuels {
		c := NewContribution(f.parts)
		*f.dst = c.EnergySource()
		contributions = append(contributions, c)
	}
	return CalcSums(contributions)
}
