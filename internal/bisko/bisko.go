package bisko

import (
	"fmt"

	"github.com/rshade/bisko/internal/influence"
)

// Bisko is the complete BISKO balance of one region.
type Bisko struct {
	PrivateResidences PrivateResidences `json:"priv_residences"`
	Businesses        Businesses        `json:"buissenesses"`
	Transport         Transport         `json:"transport"`
	Industry          Industry          `json:"industry"`
	Agriculture       Agriculture       `json:"agri"`
	LULUCF            LULUCF            `json:"lulucf"`

	Total              EnergySource `json:"total"`
	CommunalFacilities EnergySource `json:"communal_facilities"`

	// Quality is transport energy times half the reciprocal of total
	// energy. The shape of the formula is kept as published; it is not
	// the transport share of total energy.
	Quality float64 `json:"bisko_quality"`
}

// Sectors are the sector results Aggregate folds into a Bisko.
type Sectors struct {
	PrivateResidences PrivateResidences
	Businesses        Businesses
	Transport         Transport
	Industry          Industry
	Agriculture       Agriculture
	LULUCF            LULUCF
}

// Calculate builds every sector of balance in turn and aggregates them.
// A failing fact or assumption lookup aborts the computation.
func Calculate(balance influence.Balance, lookup Lookup) (*Bisko, error) {
	transport, err := CalcTransport(lookup, balance.Transport, balance.Heat, balance.Fuels, balance.Electricity)
	if err != nil {
		return nil, fmt.Errorf("calculating bisko: %w", err)
	}

	b := Aggregate(Sectors{
		PrivateResidences: CalcPrivateResidences(balance.Residences, balance.Heat, balance.Fuels, balance.Electricity),
		Businesses: CalcBusinesses(
			balance.Business, balance.Heat, balance.Fuels, balance.Electricity, balance.Agriculture),
		Transport:   transport,
		Industry:    CalcIndustry(balance.Industry, balance.Heat, balance.Fuels, balance.Electricity),
		Agriculture: CalcAgriculture(balance.Agriculture),
		LULUCF:      CalcLULUCF(balance.LULUCF),
	})
	return &b, nil
}

// Aggregate folds the sector results into the nationwide figures.
//
// Energy and combustion-based emissions come from the four combustion
// sectors. The production-based total also includes agriculture and
// LULUCF, which have no energy or combustion channel.
func Aggregate(s Sectors) Bisko {
	combustion := SumEnergySources([]EnergySource{
		s.PrivateResidences.Total.EnergySource(),
		s.Businesses.Total.EnergySource(),
		s.Transport.Total.EnergySource(),
		s.Industry.Total,
	})

	total := EnergySource{
		Energy: combustion.Energy,
		CO2eCb: combustion.CO2eCb,
		CO2ePb: combustion.CO2ePb + s.Agriculture.Total.CO2ePb + s.LULUCF.Total.CO2ePb,
	}

	return Bisko{
		PrivateResidences: s.PrivateResidences,
		Businesses:        s.Businesses,
		Transport:         s.Transport,
		Industry:          s.Industry,
		Agriculture:       s.Agriculture,
		LULUCF:            s.LULUCF,

		Total: total,
		CommunalFacilities: SumEnergySources([]EnergySource{
			s.PrivateResidences.CommunalFacilities,
			s.Businesses.CommunalFacilities,
		}),
		Quality: s.Transport.Total.Energy * Div(0.5, total.Energy),
	}
}
