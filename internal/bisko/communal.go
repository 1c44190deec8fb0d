package bisko

// SplitCommunalFacilities separates the municipally owned share of a sector
// total. The communal part keeps communalEnergy as its energy; emissions of
// both parts are prorated by their share of total energy, so the two parts
// add back up to the total.
func SplitCommunalFacilities(total Sums, communalEnergy float64) (communal, rest EnergySource) {
	communal = EnergySource{
		Energy: communalEnergy,
		CO2eCb: total.CO2eCb * Div(communalEnergy, total.Energy),
		CO2ePb: total.CO2ePb * Div(communalEnergy, total.Energy),
	}

	restEnergy := total.Energy - communal.Energy
	rest = EnergySource{
		Energy: restEnergy,
		CO2eCb: total.CO2eCb * Div(restEnergy, total.Energy),
		CO2ePb: total.CO2ePb * Div(restEnergy, total.Energy),
	}
	return communal, rest
}
