package bisko

import (
	"fmt"

	"github.com/rshade/bisko/internal/influence"
)

// Lookup resolves reference facts and assumptions by key.
type Lookup interface {
	Fact(key string) (float64, error)
	Ass(key string) (float64, error)
}

// Tank-to-wheel emission factor keys used by the transport sector.
const (
	FactPetrolTankWheel      = "Fact_T_S_petrol_EmFa_tank_wheel_2018"
	FactDieselTankWheel      = "Fact_T_S_diesel_EmFa_tank_wheel_2018"
	FactJetFuelTankWheel     = "Fact_T_S_jetfuel_EmFa_tank_wheel_2018"
	FactLPGTankWheel         = "Fact_T_S_lpg_EmFa_tank_wheel_2018"
	FactCNGTankWheel         = "Fact_T_S_cng_EmFa_tank_wheel_2018"
	FactElectricityTankWheel = "Fact_T_S_electricity_EmFa_tank_wheel_2018"

	AssBioethanolTankWheel = "Ass_T_S_bioethanol_EmFa_tank_wheel"
	AssBiodieselTankWheel  = "Ass_T_S_biodiesel_EmFa_tank_wheel"
	AssBiogasTankWheel     = "Ass_T_S_biogas_EmFa_tank_wheel"
)

// TransportFactKeys lists the facts CalcTransport reads.
func TransportFactKeys() []string {
	return []string{
		FactPetrolTankWheel,
		FactDieselTankWheel,
		FactJetFuelTankWheel,
		FactLPGTankWheel,
		FactCNGTankWheel,
		FactElectricityTankWheel,
	}
}

// TransportAssumptionKeys lists the assumptions CalcTransport reads.
func TransportAssumptionKeys() []string {
	return []string{AssBioethanolTankWheel, AssBiodieselTankWheel, AssBiogasTankWheel}
}

// Transport is the BISKO balance of the transport sector.
type Transport struct {
	Petrol      EnergySource `json:"petrol"`
	Diesel      EnergySource `json:"diesel"`
	JetFuel     EnergySource `json:"jetfuel"`
	Bioethanol  EnergySource `json:"bioethanol"`
	Biodiesel   EnergySource `json:"biodiesel"`
	Biogas      EnergySource `json:"biogas"`
	LPG         EnergySource `json:"lpg"`
	Gas         EnergySource `json:"gas"`
	Electricity EnergySource `json:"elec"`

	Total Sums `json:"total"`
}

// tankWheel builds the same-sector parts of transport fuels from their
// energy and tank-to-wheel factor. It keeps the first lookup error and
// returns empty parts after it.
type tankWheel struct {
	lookup Lookup
	err    error
}

func (tw *tankWheel) parts(f influence.Figures, key string, get func(string) (float64, error)) ContributionParts {
	if tw.err != nil {
		return ContributionParts{}
	}
	factor, err := get(key)
	if err != nil {
		tw.err = fmt.Errorf("transport tank-to-wheel factor %s: %w", key, err)
		return ContributionParts{}
	}
	return ContributionParts{
		EnergyFromSameSector: Some(f.Energy),
		CO2eCbFromSameSector: Some(f.Energy * factor),
	}
}

func (tw *tankWheel) fact(f influence.Figures, key string) ContributionParts {
	return tw.parts(f, key, tw.lookup.Fact)
}

func (tw *tankWheel) ass(f influence.Figures, key string) ContributionParts {
	return tw.parts(f, key, tw.lookup.Ass)
}

// CalcTransport builds the transport sector. Same-sector emissions are not
// taken from the influence balance but recomputed from energy and the
// tank-to-wheel factors of lookup. The first failing lookup aborts the
// sector and is returned wrapped.
func CalcTransport(
	lookup Lookup,
	t influence.Transport,
	h influence.Heat,
	f influence.Fuels,
	e influence.Electricity,
) (Transport, error) {
	tw := &tankWheel{lookup: lookup}
	ft := Div(f.Transport.Energy, f.Total.Energy)
	ht := Div(h.Transport.Energy, h.Total.Energy)

	petrol := tw.fact(t.Petrol, FactPetrolTankWheel)
	petrol.CO2eCbFromFuels = Some(f.Petrol.CO2eProductionBased * ft)

	diesel := tw.fact(t.Diesel, FactDieselTankWheel)
	diesel.CO2eCbFromFuels = Some(f.Diesel.CO2eProductionBased * Div(f.Transport.Energy+f.Agriculture.Energy, f.Total.Energy))

	jetfuel := tw.fact(t.JetFuel, FactJetFuelTankWheel)
	jetfuel.CO2eCbFromFuels = Some(f.JetFuel.CO2eProductionBased * ft)

	bioethanol := tw.ass(t.Bioethanol, AssBioethanolTankWheel)
	bioethanol.CO2eCbFromFuels = Some(f.Bioethanol.CO2eProductionBased * ft)

	biodiesel := tw.ass(t.Biodiesel, AssBiodieselTankWheel)
	biodiesel.CO2eCbFromFuels = Some(f.Biodiesel.CO2eProductionBased * ft)

	biogas := tw.ass(t.Biogas, AssBiogasTankWheel)
	biogas.CO2eCbFromFuels = Some(f.Biogas.CO2eProductionBased * ft)

	lpg := tw.fact(t.LPG, FactLPGTankWheel)
	lpg.CO2eCbFromHeat = Some(h.LPG.CO2eCombustionBased * ht)

	gas := tw.fact(t.Gas, FactCNGTankWheel)
	gas.CO2eCbFromHeat = Some(h.Gas.CO2eCombustionBased * ht)
	gas.CO2ePbFromHeat = Some(h.Gas.CO2eProductionBased * ht)

	elec := tw.fact(t.Electricity, FactElectricityTankWheel)
	elec.CO2eCbFromElec = Some(e.Production.CO2eTotal * Div(e.Transport.Energy, e.Total.Energy))

	if tw.err != nil {
		return Transport{}, tw.err
	}

	var out Transport
	out.Total = buildFuels([]fuel{
		{petrol, &out.Petrol},
		{diesel, &out.Diesel},
		{jetfuel, &out.JetFuel},
		{bioethanol, &out.Bioethanol},
		{biodiesel, &out.Biodiesel},
		{biogas, &out.Biogas},
		{lpg, &out.LPG},
		{gas, &out.Gas},
		{elec, &out.Electricity},
	})
	return out, nil
}
