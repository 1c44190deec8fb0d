package bisko

import "github.com/rshade/bisko/internal/influence"

// Businesses is the BISKO balance of business and commerce. Agricultural
// energy use is reported here.
type Businesses struct {
	Petrol       EnergySource `json:"petrol"`
	Diesel       EnergySource `json:"diesel"`
	JetFuel      EnergySource `json:"jetfuel"`
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

// withAgri adds the agriculture row of a fuel to the business parts.
func withAgri(p ContributionParts, a influence.Figures) ContributionParts {
	p.EnergyFromAgri = Some(a.Energy)
	p.CO2eCbFromAgri = Some(a.CO2eTotal)
	return p
}

// CalcBusinesses builds the business sector.
//
// For fuel oil, LPG, gas and biomass the heat share also includes the
// "other transport" heat term (h18.a_t); coal, heat net, solar thermal and
// heat pumps use the plain business share.
func CalcBusinesses(
	b influence.Business,
	h influence.Heat,
	f influence.Fuels,
	e influence.Electricity,
	a influence.Agriculture,
) Businesses {
	hb := Div(h.Business.Energy+h.OtherTransport.Energy, h.Total.Energy)
	hb0 := Div(h.Business.Energy, h.Total.Energy)
	fba := Div(f.Business.Energy+f.Agriculture.Energy, f.Total.Energy)

	petrol := withAgri(sameSector(b.Petrol), a.Petrol)
	petrol.CO2eCbFromFuels = Some(f.Petrol.CO2eProductionBased * fba)

	diesel := withAgri(sameSector(b.Diesel), a.Diesel)
	diesel.CO2eCbFromFuels = Some(f.Diesel.CO2eProductionBased * fba)

	jetfuel := sameSector(b.JetFuel)
	jetfuel.CO2eCbFromFuels = Some(f.JetFuel.CO2eProductionBased * Div(f.Business.Energy, f.Total.Energy))

	// Agricultural fuel oil counts with its combustion-based emissions.
	fueloil := withAgri(sameSector(b.FuelOil), a.FuelOil)
	fueloil.CO2eCbFromAgri = Some(a.FuelOil.CO2eCombustionBased)
	fueloil.CO2eCbFromHeat = Some(h.FuelOil.CO2eCombustionBased * hb)

	coal := sameSector(b.Coal)
	coal.CO2eCbFromHeat = Some(h.Coal.CO2eCombustionBased * hb0)
	coal.CO2ePbFromHeat = Some(h.Coal.CO2eProductionBased * hb0)

	lpg := withAgri(sameSector(b.LPG), a.LPG)
	lpg.CO2eCbFromHeat = Some(h.LPG.CO2eCombustionBased * hb)

	gas := withAgri(sameSector(b.Gas), a.Gas)
	gas.CO2eCbFromHeat = Some(h.Gas.CO2eCombustionBased * hb)
	gas.CO2ePbFromHeat = Some(h.Gas.CO2eProductionBased * hb)

	heatnet := sameSector(b.HeatNet)
	heatnet.CO2eCbFromHeat = Some(h.HeatNet.CO2eCombustionBased * hb0)

	biomass := withAgri(sameSector(b.Biomass), a.Biomass)
	biomass.CO2ePbFromHeat = Some(h.Biomass.CO2eProductionBased * hb)

	solarth := sameSector(b.SolarThermal)
	solarth.CO2ePbFromHeat = Some(h.SolarThermal.CO2eProductionBased * hb0)

	heatpump := sameSector(b.HeatPump)
	heatpump.CO2ePbFromHeat = Some(h.HeatPump.CO2eProductionBased * hb0)

	elec := withAgri(sameSector(b.Electricity), a.Electricity)
	elec.CO2eCbFromElec = Some(e.Production.CO2eTotal * Div(e.Business.Energy+e.Agriculture.Energy, e.Total.Energy))

	var out Businesses
	out.Total = buildFuels([]fuel{
		{petrol, &out.Petrol},
		{diesel, &out.Diesel},
		{jetfuel, &out.JetFuel},
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
		SplitCommunalFacilities(out.Total, b.CommunalNonResidential.Energy)
	return out
}
