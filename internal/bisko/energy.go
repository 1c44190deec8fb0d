package bisko

import "github.com/samber/lo"

// EnergySource is the energy and emissions of one fuel, or of a total.
type EnergySource struct {
	Energy float64 `json:"energy"`
	CO2eCb float64 `json:"CO2e_cb"`
	CO2ePb float64 `json:"CO2e_pb"`
}

// CO2e returns the combustion and production based emissions combined.
func (e EnergySource) CO2e() float64 { return e.CO2eCb + e.CO2ePb }

// Emissions are emissions without an energy figure, as reported for
// industrial processes.
type Emissions struct {
	CO2eCb float64 `json:"CO2e_cb"`
	CO2ePb float64 `json:"CO2e_pb"`
}

// ProductionBasedEmission carries production-based emissions only.
type ProductionBasedEmission struct {
	CO2ePb float64 `json:"CO2e_pb"`
}

// SumEnergySources adds up energy and emissions field-wise.
func SumEnergySources(sources []EnergySource) EnergySource {
	return EnergySource{
		Energy: lo.SumBy(sources, func(s EnergySource) float64 { return s.Energy }),
		CO2eCb: lo.SumBy(sources, func(s EnergySource) float64 { return s.CO2eCb }),
		CO2ePb: lo.SumBy(sources, func(s EnergySource) float64 { return s.CO2ePb }),
	}
}

// SumEmissions adds up emissions field-wise.
func SumEmissions(emissions []Emissions) Emissions {
	return Emissions{
		CO2eCb: lo.SumBy(emissions, func(e Emissions) float64 { return e.CO2eCb }),
		CO2ePb: lo.SumBy(emissions, func(e Emissions) float64 { return e.CO2ePb }),
	}
}

// SumProductionBased adds up production-based emissions.
func SumProductionBased(emissions []ProductionBasedEmission) ProductionBasedEmission {
	return ProductionBasedEmission{
		CO2ePb: lo.SumBy(emissions, func(e ProductionBasedEmission) float64 { return e.CO2ePb }),
	}
}
