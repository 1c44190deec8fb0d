// Package influence holds the per-sector results of the 2018 influence
// balance ("Einflussbilanz") that the BISKO conversion consumes.
//
// The types are plain nested numeric structures. Field keys follow the
// result keys of the sector calculators (s_* for consumption per energy
// source, p_* for production, d_* for the demand split of a supply domain)
// so that their JSON or YAML dumps decode without a mapping step.
package influence

// Figures is the set of numbers every influence-balance row may carry.
// Keys that are absent in a document decode as 0.
type Figures struct {
	Energy              float64 `json:"energy"                yaml:"energy"`
	CO2eTotal           float64 `json:"CO2e_total"            yaml:"CO2e_total"`
	CO2eCombustionBased float64 `json:"CO2e_combustion_based" yaml:"CO2e_combustion_based"`
	CO2eProductionBased float64 `json:"CO2e_production_based" yaml:"CO2e_production_based"`
}

// Residences is the private residences sector (r18).
type Residences struct {
	Petrol       Figures `json:"s_petrol"   yaml:"s_petrol"`
	FuelOil      Figures `json:"s_fueloil"  yaml:"s_fueloil"`
	Coal         Figures `json:"s_coal"     yaml:"s_coal"`
	LPG          Figures `json:"s_lpg"      yaml:"s_lpg"`
	Gas          Figures `json:"s_gas"      yaml:"s_gas"`
	HeatNet      Figures `json:"s_heatnet"  yaml:"s_heatnet"`
	Biomass      Figures `json:"s_biomass"  yaml:"s_biomass"`
	SolarThermal Figures `json:"s_solarth"  yaml:"s_solarth"`
	HeatPump     Figures `json:"s_heatpump" yaml:"s_heatpump"`
	Electricity  Figures `json:"s_elec"     yaml:"s_elec"`

	// CommunalBuildings is the energy use of municipally owned residential
	// buildings, weighted by building area.
	CommunalBuildings Figures `json:"p_buildings_area_m2_com" yaml:"p_buildings_area_m2_com"`
}

// Business is the business / commerce sector (b18).
type Business struct {
	Petrol       Figures `json:"s_petrol"   yaml:"s_petrol"`
	Diesel       Figures `json:"s_diesel"   yaml:"s_diesel"`
	JetFuel      Figures `json:"s_jetfuel"  yaml:"s_jetfuel"`
	FuelOil      Figures `json:"s_fueloil"  yaml:"s_fueloil"`
	Coal         Figures `json:"s_coal"     yaml:"s_coal"`
	LPG          Figures `json:"s_lpg"      yaml:"s_lpg"`
	Gas          Figures `json:"s_gas"      yaml:"s_gas"`
	HeatNet      Figures `json:"s_heatnet"  yaml:"s_heatnet"`
	Biomass      Figures `json:"s_biomass"  yaml:"s_biomass"`
	SolarThermal Figures `json:"s_solarth"  yaml:"s_solarth"`
	HeatPump     Figures `json:"s_heatpump" yaml:"s_heatpump"`
	Electricity  Figures `json:"s_elec"     yaml:"s_elec"`

	// CommunalNonResidential is the energy use of municipally owned
	// non-residential buildings.
	CommunalNonResidential Figures `json:"p_nonresi_com" yaml:"p_nonresi_com"`
}

// Transport is the transport sector (t18).
type Transport struct {
	Petrol      Figures `json:"s_petrol"     yaml:"s_petrol"`
	Diesel      Figures `json:"s_diesel"     yaml:"s_diesel"`
	JetFuel     Figures `json:"s_jetfuel"    yaml:"s_jetfuel"`
	Bioethanol  Figures `json:"s_bioethanol" yaml:"s_bioethanol"`
	Biodiesel   Figures `json:"s_biodiesel"  yaml:"s_biodiesel"`
	Biogas      Figures `json:"s_biogas"     yaml:"s_biogas"`
	LPG         Figures `json:"s_lpg"        yaml:"s_lpg"`
	Gas         Figures `json:"s_gas"        yaml:"s_gas"`
	Electricity Figures `json:"s_elec"       yaml:"s_elec"`
}

// Industry is the industry sector (i18). Energy is only known per energy
// source; emissions are only known per industrial sub-process.
type Industry struct {
	Diesel          Figures `json:"s_fossil_diesel"   yaml:"s_fossil_diesel"`
	FuelOil         Figures `json:"s_fossil_fueloil"  yaml:"s_fossil_fueloil"`
	Coal            Figures `json:"s_fossil_coal"     yaml:"s_fossil_coal"`
	LPG             Figures `json:"s_fossil_lpg"      yaml:"s_fossil_lpg"`
	Gas             Figures `json:"s_fossil_gas"      yaml:"s_fossil_gas"`
	OtherFossil     Figures `json:"s_fossil_ofossil"  yaml:"s_fossil_ofossil"`
	OtherPetroleum  Figures `json:"s_fossil_opetpro"  yaml:"s_fossil_opetpro"`
	HeatNet         Figures `json:"s_renew_heatnet"   yaml:"s_renew_heatnet"`
	Biomass         Figures `json:"s_renew_biomass"   yaml:"s_renew_biomass"`
	SolarThermal    Figures `json:"s_renew_solarth"   yaml:"s_renew_solarth"`
	HeatPump        Figures `json:"s_renew_heatpump"  yaml:"s_renew_heatpump"`
	Electricity     Figures `json:"s_renew_elec"      yaml:"s_renew_elec"`
	Mining          Figures `json:"p_miner"           yaml:"p_miner"`
	Chemistry       Figures `json:"p_chem"            yaml:"p_chem"`
	Metal           Figures `json:"p_metal"           yaml:"p_metal"`
	OtherProduction Figures `json:"p_other"           yaml:"p_other"`
}

// Agriculture is the agriculture sector (a18). Its energy use is reported
// under business in the BISKO balance.
type Agriculture struct {
	Petrol      Figures `json:"s_petrol"  yaml:"s_petrol"`
	Diesel      Figures `json:"s_diesel"  yaml:"s_diesel"`
	FuelOil     Figures `json:"s_fueloil" yaml:"s_fueloil"`
	LPG         Figures `json:"s_lpg"     yaml:"s_lpg"`
	Gas         Figures `json:"s_gas"     yaml:"s_gas"`
	Biomass     Figures `json:"s_biomass" yaml:"s_biomass"`
	Electricity Figures `json:"s_elec"    yaml:"s_elec"`

	Fermentation Figures `json:"p_fermen" yaml:"p_fermen"`
	Manure       Figures `json:"p_manure" yaml:"p_manure"`
	Soil         Figures `json:"p_soil"   yaml:"p_soil"`
	Other        Figures `json:"p_other"  yaml:"p_other"`
}

// Demand is the split of a supply domain's delivered energy by consuming
// sector.
type Demand struct {
	Total       Figures `json:"d"   yaml:"d"`
	Residences  Figures `json:"d_r" yaml:"d_r"`
	Business    Figures `json:"d_b" yaml:"d_b"`
	Industry    Figures `json:"d_i" yaml:"d_i"`
	Transport   Figures `json:"d_t" yaml:"d_t"`
	Agriculture Figures `json:"d_a" yaml:"d_a"`
}

// Fuels is the fuel supply domain (f18).
type Fuels struct {
	Demand `yaml:",inline"`

	Petrol     Figures `json:"p_petrol"     yaml:"p_petrol"`
	Diesel     Figures `json:"p_diesel"     yaml:"p_diesel"`
	JetFuel    Figures `json:"p_jetfuel"    yaml:"p_jetfuel"`
	Bioethanol Figures `json:"p_bioethanol" yaml:"p_bioethanol"`
	Biodiesel  Figures `json:"p_biodiesel"  yaml:"p_biodiesel"`
	Biogas     Figures `json:"p_biogas"     yaml:"p_biogas"`
}

// Electricity is the electricity supply domain (e18).
type Electricity struct {
	Demand `yaml:",inline"`

	Production Figures `json:"p" yaml:"p"`
}

// Heat is the heat supply domain (h18).
type Heat struct {
	Demand `yaml:",inline"`

	// OtherTransport is the heat-supply energy term added to the business
	// share for fuel oil, LPG, gas and biomass.
	OtherTransport Figures `json:"a_t" yaml:"a_t"`

	FuelOil        Figures `json:"p_fueloil"  yaml:"p_fueloil"`
	Coal           Figures `json:"p_coal"     yaml:"p_coal"`
	LPG            Figures `json:"p_lpg"      yaml:"p_lpg"`
	Gas            Figures `json:"p_gas"      yaml:"p_gas"`
	HeatNet        Figures `json:"p_heatnet"  yaml:"p_heatnet"`
	Biomass        Figures `json:"p_biomass"  yaml:"p_biomass"`
	SolarThermal   Figures `json:"p_solarth"  yaml:"p_solarth"`
	HeatPump       Figures `json:"p_heatpump" yaml:"p_heatpump"`
	OtherPetroleum Figures `json:"p_opetpro"  yaml:"p_opetpro"`
	OtherFossil    Figures `json:"p_ofossil"  yaml:"p_ofossil"`
}

// LULUCF is land use, land-use change and forestry (l18).
type LULUCF struct {
	Forest     Figures `json:"g_forest"     yaml:"g_forest"`
	Crop       Figures `json:"g_crop"       yaml:"g_crop"`
	Grass      Figures `json:"g_grass"      yaml:"g_grass"`
	Grove      Figures `json:"g_grove"      yaml:"g_grove"`
	Wet        Figures `json:"g_wet"        yaml:"g_wet"`
	Water      Figures `json:"g_water"      yaml:"g_water"`
	Settlement Figures `json:"g_settlement" yaml:"g_settlement"`
	Other      Figures `json:"g_other"      yaml:"g_other"`
	Wood       Figures `json:"g_wood"       yaml:"g_wood"`
}

// Balance bundles the nine sector results of one region and year.
type Balance struct {
	Residences  Residences  `json:"r18" yaml:"r18"`
	Business    Business    `json:"b18" yaml:"b18"`
	Transport   Transport   `json:"t18" yaml:"t18"`
	Industry    Industry    `json:"i18" yaml:"i18"`
	Agriculture Agriculture `json:"a18" yaml:"a18"`
	Fuels       Fuels       `json:"f18" yaml:"f18"`
	Electricity Electricity `json:"e18" yaml:"e18"`
	Heat        Heat        `json:"h18" yaml:"h18"`
	LULUCF      LULUCF      `json:"l18" yaml:"l18"`
}
