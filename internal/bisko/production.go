package bisko

import "github.com/rshade/bisko/internal/influence"

// Agriculture carries the production-based emissions of agriculture. Its
// energy use is booked under Businesses.
type Agriculture struct {
	// Forest holds enteric fermentation; the key is kept for compatibility
	// with existing result dumps.
	Forest ProductionBasedEmission `json:"forest"`
	Manure ProductionBasedEmission `json:"manure"`
	Soil   ProductionBasedEmission `json:"soil"`
	Other  ProductionBasedEmission `json:"other"`

	Total ProductionBasedEmission `json:"total"`
}

// LULUCF carries the production-based emissions of land use, land-use
// change and forestry.
type LULUCF struct {
	Forest     ProductionBasedEmission `json:"forest"`
	Crop       ProductionBasedEmission `json:"crop"`
	Grass      ProductionBasedEmission `json:"grass"`
	Grove      ProductionBasedEmission `json:"grove"`
	Wet        ProductionBasedEmission `json:"wet"`
	Water      ProductionBasedEmission `json:"water"`
	Settlement ProductionBasedEmission `json:"settlement"`
	Other      ProductionBasedEmission `json:"other"`
	Wood       ProductionBasedEmission `json:"wood"`

	Total ProductionBasedEmission `json:"total"`
}

func productionBased(f influence.Figures) ProductionBasedEmission {
	return ProductionBasedEmission{CO2ePb: f.CO2eProductionBased}
}

// CalcAgriculture builds the agriculture sector.
func CalcAgriculture(a influence.Agriculture) Agriculture {
	out := Agriculture{
		Forest: productionBased(a.Fermentation),
		Manure: productionBased(a.Manure),
		Soil:   productionBased(a.Soil),
		Other:  productionBased(a.Other),
	}
	out.Total = SumProductionBased([]ProductionBasedEmission{out.Forest, out.Manure, out.Soil, out.Other})
	return out
}

// CalcLULUCF builds the LULUCF sector.
func CalcLULUCF(l influence.LULUCF) LULUCF {
	out := LULUCF{
		Forest:     productionBased(l.Forest),
		Crop:       productionBased(l.Crop),
		Grass:      productionBased(l.Grass),
		Grove:      productionBased(l.Grove),
		Wet:        productionBased(l.Wet),
		Water:      productionBased(l.Water),
		Settlement: productionBased(l.Settlement),
		Other:      productionBased(l.Other),
		Wood:       productionBased(l.Wood),
	}
	out.Total = SumProductionBased([]ProductionBasedEmission{
		out.Forest, out.Crop, out.Grass, out.Grove, out.Wet,
		out.Water, out.Settlement, out.Other, out.Wood,
	})
	return out
}
