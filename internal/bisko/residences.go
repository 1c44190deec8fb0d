package bisko

import "github.com/rshade/bisko/internal/influence"

// PrivateResidences is the BISKO balance of private residences.
type PrivateResidences struct {
	Petrol       EnergySource `json:"petrol"`
	FuelOil      EnergySource `json:"fueloil"`
	Coal         EnergySource `json:"coal"`
	LPG          EnergySource `json:"lpg"`
	Gas          EnergySource `json:"gas"`
	HeatNet      EnergySource `json:"heatnet"`
	Biomass      EnergySource `json:"biomass"`
	SolarThermal EnergySource `json:"solarth"`
	HeatPump     EnergySource `json:"heatpump"`
	Electricity  EnergySource `json:"elec"`

	Total                           Sums         `json:"total"`
	CommunalFacilities              EnergySource `json:"communal_facilities"`
	SectorWithoutCommunalFacilities EnergySource `json:"sector_without_communal_facilities"`
}

// sameSector returns the parts a sector contributes from its own
// influence-balance row.
func sameSector(f influence.Figures) ContributionParts {
	return ContributionParts{
		EnergyFromSameSector: Some(f.Energy),
		CO2eCbFromSameSector: Some(f.CO2eTotal),
	}
}

// CalcPrivateResidences builds the residences sector. Heat supply is
// prorated by the residences' share of delivered heat, fuels and
// electricity by their share of the respective domain.
func CalcPrivateResidences(
	r influence.Residences,
	h influence.Heat,
	f influence.Fuels,
	e influence.Electricity,
) PrivateResidences {
	hr := Div(h.Residences.Energy, h.Total.Energy)

	petrol := sameSector(r.Petrol)
	petrol.CO2eCbFromFuels = Some(f.Petrol.CO2eProductionBased * Div(f.Residences.Energy, f.Total.Energy))

	fueloil := sameSector(r.FuelOil)
	fueloil.CO2eCbFromHeat = Some(h.FuelOil.CO2eCombustionBased * hr)

	coal := sameSector(r.Coal)
	coal.CO2eCbFromHeat = Some(h.Coal.CO2eCombustionBased * hr)
	coal.CO2ePbFromHeat = Some(h.Coal.CO2eProductionBased * hr)

	lpg := sameSector(r.LPG)
	lpg.CO2eCbFromHeat = Some(h.LPG.CO2eCombustionBased * hr)

	gas := sameSector(r.Gas)
	gas.CO2eCbFromHeat = Some(h.Gas.CO2eCombustionBased * hr)
	gas.CO2ePbFromHeat = Some(h.Gas.CO2eProductionBased * hr)

	heatnet := sameSector(r.HeatNet)
	heatnet.CO2eCbFromHeat = Some(h.HeatNet.CO2eCombustionBased * hr)

	biomass := sameSector(r.Biomass)
	biomass.CO2ePbFromHeat = Some(h.Biomass.CO2eProductionBased * hr)

	solarth := sameSector(r.SolarThermal)
	solarth.CO2ePbFromHeat = Some(h.SolarThermal.CO2eProductionBased * hr)

	heatpump := sameSector(r.HeatPump)
	heatpump.CO2ePbFromHeat = Some(h.HeatPump.CO2eProductionBased * hr)

	elec := sameSector(r.Electricity)
	elec.CO2eCbFromElec = Some(e.Production.CO2eTotal * Div(e.Residences.Energy, e.Total.Energy))

	var out PrivateResidences
	out.Total = buildFuels([]fuel{
		{petrol, &out.Petrol},
		{fueloil, &out.FuelOil},
		{coal, &out.Coal},
		{lpg, &out.LPG},
		{gas, &out.Gas},
		{heatnet, &out.HeatNet},
		{biomass, &out.Biomass},
		{solarth, &out.SolarThermal},
		{heatpump, &out.HeatPump},
		{elec, &out.Electricity},
	})
	out.CommunalFacilities, out.SectorWithoutCommunalFacilities =
		SplitCommunalFacilities(out.Total, r.CommunalBuildings.Energy)
	return out
}
