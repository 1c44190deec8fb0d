package bisko

// ContributionParts are the raw parts a fuel contributes to a sector,
// grouped by the influence-balance domain they come from. Parts that do not
// apply to a fuel are left absent.
type ContributionParts struct {
	EnergyFromSameSector Partial `json:"eb_energy_from_same_sector"`
	EnergyFromAgri       Partial `json:"eb_energy_from_agri"`

	CO2eCbFromSameSector Partial `json:"eb_CO2e_cb_from_same_sector"`
	CO2eCbFromHeat       Partial `json:"eb_CO2e_cb_from_heat"`
	CO2eCbFromElec       Partial `json:"eb_CO2e_cb_from_elec"`
	CO2eCbFromFuels      Partial `json:"eb_CO2e_cb_from_fuels"`
	CO2eCbFromAgri       Partial `json:"eb_CO2e_cb_from_agri"`

	CO2ePbFromHeat Partial `json:"eb_CO2e_pb_from_heat"`
}

// Contribution is one fuel's contribution to a sector's BISKO figures.
// Energy and emissions are derived once in NewContribution; the value is
// immutable afterwards.
type Contribution struct {
	parts  ContributionParts
	energy float64
	co2eCb float64
	co2ePb float64
}

// NewContribution derives energy, CO2e_cb and CO2e_pb from parts. It does
// no validation: a contribution with every part absent is inert.
func NewContribution(parts ContributionParts) Contribution {
	return Contribution{
		parts: parts,
		energy: SumPartials([]Partial{
			parts.EnergyFromSameSector,
			parts.EnergyFromAgri,
		}),
		co2eCb: SumPartials([]Partial{
			parts.CO2eCbFromSameSector,
			parts.CO2eCbFromHeat,
			parts.CO2eCbFromElec,
			parts.CO2eCbFromFuels,
			parts.CO2eCbFromAgri,
		}),
		co2ePb: parts.CO2ePbFromHeat.OrZero(),
	}
}

// Parts returns a copy of the parts the contribution was built from.
func (c Contribution) Parts() ContributionParts { return c.parts }

// Energy returns the summed energy in MWh.
func (c Contribution) Energy() float64 { return c.energy }

// CO2eCb returns the combustion-based emissions.
func (c Contribution) CO2eCb() float64 { return c.co2eCb }

// CO2ePb returns the production-based emissions.
func (c Contribution) CO2ePb() float64 { return c.co2ePb }

// EnergySource returns the public per-fuel view of the contribution.
func (c Contribution) EnergySource() EnergySource {
	return EnergySource{Energy: c.energy, CO2eCb: c.co2eCb, CO2ePb: c.co2ePb}
}
