package engine

import "github.com/rshade/bisko/internal/bisko"

// Sector keys in result order.
const (
	SectorResidences  = "priv_residences"
	SectorBusinesses  = "buissenesses"
	SectorTransport   = "transport"
	SectorIndustry    = "industry"
	SectorAgriculture = "agri"
	SectorLULUCF      = "lulucf"
	SectorNationwide  = "nationwide"
)

// Sectors lists the sector keys in the order rows are produced.
func Sectors() []string {
	return []string{
		SectorResidences,
		SectorBusinesses,
		SectorTransport,
		SectorIndustry,
		SectorAgriculture,
		SectorLULUCF,
		SectorNationwide,
	}
}

// Row is one line of a flattened result: a fuel, emission category or total
// of one sector. Energy and CO2eCb are nil where the sector has no such
// channel.
type Row struct {
	Sector string   `json:"sector"`
	Item   string   `json:"item"`
	Energy *float64 `json:"energy,omitempty"`
	CO2eCb *float64 `json:"CO2e_cb,omitempty"`
	CO2ePb float64  `json:"CO2e_pb"`
}

// CO2e returns the row's combustion and production based emissions combined.
func (r Row) CO2e() float64 {
	if r.CO2eCb == nil {
		return r.CO2ePb
	}
	return *r.CO2eCb + r.CO2ePb
}

// IsTotal reports whether the row is a sector total.
func (r Row) IsTotal() bool {
	return r.Item == "total"
}

type rowBuilder struct {
	sector string
	rows   []Row
}

func (rb *rowBuilder) source(item string, es bisko.EnergySource) {
	energy, cb := es.Energy, es.CO2eCb
	rb.rows = append(rb.rows, Row{Sector: rb.sector, Item: item, Energy: &energy, CO2eCb: &cb, CO2ePb: es.CO2ePb})
}

func (rb *rowBuilder) emissions(item string, e bisko.Emissions) {
	cb := e.CO2eCb
	rb.rows = append(rb.rows, Row{Sector: rb.sector, Item: item, CO2eCb: &cb, CO2ePb: e.CO2ePb})
}

func (rb *rowBuilder) production(item string, e bisko.ProductionBasedEmission) {
	rb.rows = append(rb.rows, Row{Sector: rb.sector, Item: item, CO2ePb: e.CO2ePb})
}

// Rows flattens b into one row per fuel or emission category, each sector
// ending with its total. The last sector is the nationwide summary.
func Rows(b *bisko.Bisko) []Row {
	if b == nil {
		return nil
	}
	var out []Row
	for _, sector := range Sectors() {
		out = append(out, SectorRows(b, sector)...)
	}
	return out
}

// SectorRows flattens a single sector of b. Unknown sector keys yield nil.
//
//nolint:funlen // One block per sector mirrors the result tree.
func SectorRows(b *bisko.Bisko, sector string) []Row {
	rb := &rowBuilder{sector: sector}
	switch sector {
	case SectorResidences:
		r := b.PrivateResidences
		rb.source("petrol", r.Petrol)
		rb.source("fueloil", r.FuelOil)
		rb.source("coal", r.Coal)
		rb.source("lpg", r.LPG)
		rb.source("gas", r.Gas)
		rb.source("heatnet", r.HeatNet)
		rb.source("biomass", r.Biomass)
		rb.source("solarth", r.SolarThermal)
		rb.source("heatpump", r.HeatPump)
		rb.source("elec", r.Electricity)
		rb.source("communal_facilities", r.CommunalFacilities)
		rb.source("sector_without_communal_facilities", r.SectorWithoutCommunalFacilities)
		rb.source("total", r.Total.EnergySource())
	case SectorBusinesses:
		r := b.Businesses
		rb.source("petrol", r.Petrol)
		rb.source("diesel", r.Diesel)
		rb.source("jetfuel", r.JetFuel)
		rb.source("fueloil", r.FuelOil)
		rb.source("coal", r.Coal)
		rb.source("lpg", r.LPG)
		rb.source("gas", r.Gas)
		rb.source("heatnet", r.HeatNet)
		rb.source("biomass", r.Biomass)
		rb.source("solarth", r.SolarThermal)
		rb.source("heatpump", r.HeatPump)
		rb.source("elec", r.Electricity)
		rb.source("communal_facilities", r.CommunalFacilities)
		rb.source("sector_without_communal_facilities", r.SectorWithoutCommunalFacilities)
		rb.source("total", r.Total.EnergySource())
	case SectorTransport:
		t := b.Transport
		rb.source("petrol", t.Petrol)
		rb.source("diesel", t.Diesel)
		rb.source("jetfuel", t.JetFuel)
		rb.source("bioethanol", t.Bioethanol)
		rb.source("biodiesel", t.Biodiesel)
		rb.source("biogas", t.Biogas)
		rb.source("lpg", t.LPG)
		rb.source("gas", t.Gas)
		rb.source("elec", t.Electricity)
		rb.source("total", t.Total.EnergySource())
	case SectorIndustry:
		i := b.Industry
		rb.source("diesel", i.Diesel)
		rb.source("fueloil", i.FuelOil)
		rb.source("coal", i.Coal)
		rb.source("lpg", i.LPG)
		rb.source("gas", i.Gas)
		rb.source("other_fossil", i.OtherFossil)
		rb.source("heatnet", i.HeatNet)
		rb.source("biomass", i.Biomass)
		rb.source("solarth", i.SolarThermal)
		rb.source("heatpump", i.HeatPump)
		rb.source("elec", i.Electricity)
		rb.source("total_supply", i.TotalSupply.EnergySource())
		rb.emissions("miner", i.Mining)
		rb.emissions("chemistry", i.Chemistry)
		rb.emissions("metal", i.Metal)
		rb.emissions("other", i.Other)
		rb.emissions("total_production", i.TotalProduction)
		rb.source("total", i.Total)
	case SectorAgriculture:
		a := b.Agriculture
		rb.production("forest", a.Forest)
		rb.production("manure", a.Manure)
		rb.production("soil", a.Soil)
		rb.production("other", a.Other)
		rb.production("total", a.Total)
	case SectorLULUCF:
		l := b.LULUCF
		rb.production("forest", l.Forest)
		rb.production("crop", l.Crop)
		rb.production("grass", l.Grass)
		rb.production("grove", l.Grove)
		rb.production("wet", l.Wet)
		rb.production("water", l.Water)
		rb.production("settlement", l.Settlement)
		rb.production("other", l.Other)
		rb.production("wood", l.Wood)
		rb.production("total", l.Total)
	case SectorNationwide:
		rb.source("communal_facilities", b.CommunalFacilities)
		rb.source("total", b.Total)
	default:
		return nil
	}
	return rb.rows
}
