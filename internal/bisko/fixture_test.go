package bisko

import (
	"fmt"

	"github.com/rshade/bisko/internal/influence"
)

type keyMissingError struct {
	key string
}

func (e *keyMissingError) Error() string { return fmt.Sprintf("no value for %q", e.key) }

// mapLookup serves facts and assumptions from plain maps.
type mapLookup struct {
	facts       map[string]float64
	assumptions map[string]float64
}

func (m mapLookup) Fact(key string) (float64, error) {
	v, ok := m.facts[key]
	if !ok {
		return 0, &keyMissingError{key: key}
	}
	return v, nil
}

func (m mapLookup) Ass(key string) (float64, error) {
	v, ok := m.assumptions[key]
	if !ok {
		return 0, &keyMissingError{key: key}
	}
	return v, nil
}

func sampleLookup() mapLookup {
	return mapLookup{
		facts: map[string]float64{
			FactPetrolTankWheel:      0.26,
			FactDieselTankWheel:      0.27,
			FactJetFuelTankWheel:     0.26,
			FactLPGTankWheel:         0.24,
			FactCNGTankWheel:         0.2,
			FactElectricityTankWheel: 0.4,
		},
		assumptions: map[string]float64{
			AssBioethanolTankWheel: 0,
			AssBiodieselTankWheel:  0,
			AssBiogasTankWheel:     0,
		},
	}
}

func fig(energy, total float64) influence.Figures {
	return influence.Figures{Energy: energy, CO2eTotal: total}
}

func emis(cb, pb float64) influence.Figures {
	return influence.Figures{CO2eCombustionBased: cb, CO2eProductionBased: pb}
}

// sampleBalance is a small but fully populated influence balance.
func sampleBalance() influence.Balance {
	demand := func(total, r, b, i, t, a float64) influence.Demand {
		return influence.Demand{
			Total:       fig(total, 0),
			Residences:  fig(r, 0),
			Business:    fig(b, 0),
			Industry:    fig(i, 0),
			Transport:   fig(t, 0),
			Agriculture: fig(a, 0),
		}
	}

	return influence.Balance{
		Residences: influence.Residences{
			Petrol:            fig(10, 3),
			FuelOil:           fig(400, 120),
			Coal:              fig(20, 8),
			LPG:               fig(30, 7),
			Gas:               fig(900, 200),
			HeatNet:           fig(150, 30),
			Biomass:           fig(200, 5),
			SolarThermal:      fig(40, 1),
			HeatPump:          fig(60, 2),
			Electricity:       fig(500, 250),
			CommunalBuildings: fig(90, 0),
		},
		Business: influence.Business{
			Petrol:                 fig(15, 4),
			Diesel:                 fig(80, 21),
			JetFuel:                fig(5, 1),
			FuelOil:                fig(10, 2),
			Coal:                   fig(12, 5),
			LPG:                    fig(8, 2),
			Gas:                    fig(700, 150),
			HeatNet:                fig(100, 20),
			Biomass:                fig(50, 1),
			SolarThermal:           fig(10, 0),
			HeatPump:               fig(20, 1),
			Electricity:            fig(800, 400),
			CommunalNonResidential: fig(120, 0),
		},
		Transport: influence.Transport{
			Petrol:      fig(1000, 0),
			Diesel:      fig(1500, 0),
			JetFuel:     fig(30, 0),
			Bioethanol:  fig(40, 0),
			Biodiesel:   fig(60, 0),
			Biogas:      fig(5, 0),
			LPG:         fig(10, 0),
			Gas:         fig(20, 0),
			Electricity: fig(50, 0),
		},
		Industry: influence.Industry{
			Diesel:          fig(30, 0),
			FuelOil:         fig(40, 0),
			Coal:            fig(60, 0),
			LPG:             fig(10, 0),
			Gas:             fig(300, 0),
			OtherFossil:     fig(5, 0),
			OtherPetroleum:  fig(7, 0),
			HeatNet:         fig(25, 0),
			Biomass:         fig(15, 0),
			SolarThermal:    fig(2, 0),
			HeatPump:        fig(3, 0),
			Electricity:     fig(450, 0),
			Mining:          emis(11, 1),
			Chemistry:       emis(22, 2),
			Metal:           emis(33, 3),
			OtherProduction: emis(44, 4),
		},
		Agriculture: influence.Agriculture{
			Petrol:       fig(2, 1),
			Diesel:       fig(40, 11),
			FuelOil:      influence.Figures{Energy: 4, CO2eTotal: 100, CO2eCombustionBased: 1},
			LPG:          fig(1, 0.5),
			Gas:          fig(6, 1.2),
			Biomass:      fig(3, 0.1),
			Electricity:  fig(25, 12),
			Fermentation: emis(0, 70),
			Manure:       emis(0, 30),
			Soil:         emis(0, 20),
			Other:        emis(0, 5),
		},
		Fuels: influence.Fuels{
			Demand:     demand(100, 25, 10, 5, 50, 10),
			Petrol:     emis(0, 40),
			Diesel:     emis(0, 80),
			JetFuel:    emis(0, 6),
			Bioethanol: emis(0, 4),
			Biodiesel:  emis(0, 3),
			Biogas:     emis(0, 1),
		},
		Electricity: influence.Electricity{
			Demand:     demand(200, 50, 80, 40, 10, 20),
			Production: fig(0, 1000),
		},
		Heat: influence.Heat{
			Demand:         demand(100, 50, 20, 15, 5, 0),
			OtherTransport: fig(10, 0),
			FuelOil:        emis(60, 6),
			Coal:           emis(30, 3),
			LPG:            emis(12, 1),
			Gas:            emis(200, 40),
			HeatNet:        emis(80, 8),
			Biomass:        emis(0, 9),
			SolarThermal:   emis(0, 2),
			HeatPump:       emis(0, 4),
			OtherPetroleum: emis(9, 2),
			OtherFossil:    emis(5, 3),
		},
		LULUCF: influence.LULUCF{
			Forest:     emis(0, -300),
			Crop:       emis(0, 40),
			Grass:      emis(0, 25),
			Grove:      emis(0, 1),
			Wet:        emis(0, 2),
			Water:      emis(0, 3),
			Settlement: emis(0, 4),
			Other:      emis(0, 5),
			Wood:       emis(0, -20),
		},
	}
}
