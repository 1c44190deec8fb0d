package bisko

import "github.com/rshade/bisko/internal/influence"

// Industry is the BISKO balance of industry.
//
// The influence balance has no per-fuel emissions for industry, so the fuel
// rows only carry the sector's energy and what the supply domains
// attribute to it. Process emissions are reported per sub-process.
type Industry struct {
	Diesel       EnergySource `json:"diesel"`
	FuelOil      EnergySource `json:"fueloil"`
	Coal         EnergySource `json:"coal"`
	LPG          EnergySource `json:"lpg"`
	Gas          EnergySource `json:"gas"`
	OtherFossil  EnergySource `json:"other_fossil"`
	HeatNet      EnergySource `json:"heatnet"`
	Biomass      EnergySource `json:"biomass"`
	SolarThermal EnergySource `json:"solarth"`
	HeatPump     EnergySource `json:"heatpump"`
	Electricity  EnergySource `json:"elec"`

	TotalSupply Sums `json:"total_supply"`

	Mining    Emissions `json:"miner"`
	Chemistry Emissions `json:"chemistry"`
	Metal     Emissions `json:"metal"`
	Other     Emissions `json:"other"`

	TotalProduction Emissions    `json:"total_production"`
	Total           EnergySource `json:"total"`
}

func energyOnly(energy float64) ContributionParts {
	return ContributionParts{EnergyFromSameSector: Some(energy)}
}

func processEmissions(f influence.Figures) Emissions {
	return Emissions{CO2eCb: f.CO2eCombustionBased, CO2ePb: f.CO2eProductionBased}
}

// CalcIndustry builds the industry sector. Total energy is the supply
// energy only; total emissions add supply and process emissions.
func CalcIndustry(
	i influence.Industry,
	h influence.Heat,
	f influence.Fuels,
	e influence.Electricity,
) Industry {
	hi := Div(h.Industry.Energy, h.Total.Energy)

	diesel := energyOnly(i.Diesel.Energy)
	diesel.CO2eCbFromFuels = Some(f.Diesel.CO2eProductionBased * Div(f.Industry.Energy, f.Total.Energy))

	fueloil := energyOnly(i.FuelOil.Energy)
	fueloil.CO2eCbFromHeat = Some(h.FuelOil.CO2eCombustionBased * hi)

	coal := energyOnly(i.Coal.Energy)
	coal.CO2eCbFromHeat = Some(h.Coal.CO2eCombustionBased * hi)
	coal.CO2ePbFromHeat = Some(h.Coal.CO2eProductionBased * hi)

	lpg := energyOnly(i.LPG.Energy)
	lpg.CO2eCbFromHeat = Some(h.LPG.CO2eCombustionBased * hi)

	gas := energyOnly(i.Gas.Energy)
	gas.CO2eCbFromHeat = Some(h.Gas.CO2eCombustionBased * hi)
	gas.CO2ePbFromHeat = Some(h.Gas.CO2eProductionBased * hi)

	// Other fossil and other petroleum heat production is attributed to
	// industry in full.
	otherFossil := energyOnly(i.OtherFossil.Energy + i.OtherPetroleum.Energy)
	otherFossil.CO2eCbFromHeat = Some(h.OtherPetroleum.CO2eCombustionBased)
	otherFossil.CO2ePbFromHeat = Some(h.OtherPetroleum.CO2eProductionBased + h.OtherFossil.CO2eProductionBased)

	heatnet := energyOnly(i.HeatNet.Energy)
	heatnet.CO2eCbFromHeat = Some(h.HeatNet.CO2eCombustionBased * hi)

	biomass := energyOnly(i.Biomass.Energy)
	biomass.CO2ePbFromHeat = Some(h.Biomass.CO2eProductionBased * hi)

	solarth := energyOnly(i.SolarThermal.Energy)
	solarth.CO2ePbFromHeat = Some(h.SolarThermal.CO2eProductionBased * hi)

	heatpump := energyOnly(i.HeatPump.Energy)
	heatpump.CO2ePbFromHeat = Some(h.HeatPump.CO2eProductionBased * hi)

	elec := energyOnly(i.Electricity.Energy)
	elec.CO2eCbFromElec = Some(e.Production.CO2eTotal * Div(e.Industry.Energy, e.Total.Energy))

	var out Industry
	out.TotalSupply = buildFuels([]fuel{
		{diesel, &out.Diesel},
		{fueloil, &out.FuelOil},
		{coal, &out.Coal},
		{lpg, &out.LPG},
		{gas, &out.Gas},
		{otherFossil, &out.OtherFossil},
		{heatnet, &out.HeatNet},
		{biomass, &out.Biomass},
		{solarth, &out.SolarThermal},
		{heatpump, &out.HeatPump},
		{elec, &out.Electricity},
	})

	out.Mining = processEmissions(i.Mining)
	out.Chemistry = processEmissions(i.Chemistry)
	out.Metal = processEmissions(i.Metal)
	out.Other = processEmissions(i.OtherProduction)
	out.TotalProduction = SumEmissions([]Emissions{out.Mining, out.Chemistry, out.Metal, out.Other})

	out.Total = EnergySource{
		Energy: out.TotalSupply.Energy,
		CO2eCb: out.TotalSupply.CO2eCb + out.TotalProduction.CO2eCb,
		CO2ePb: out.TotalSupply.CO2ePb + out.TotalProduction.CO2ePb,
	}
	return out
}
