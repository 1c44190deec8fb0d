// Package bisko converts the per-sector results of a municipal influence
// balance into the standardized BISKO greenhouse-gas balance.
//
// The influence balance attributes energy and emissions to the sector that
// statistically consumes the energy. BISKO instead reallocates emissions to
// the sector that burns the fuel, so every sector figure is assembled from
// prorated shares of the heat, electricity and fuel supply domains plus the
// sector's own consumption.
//
// # Building blocks
//
//   - [Partial] is an explicit nullable number; absent parts fold as 0.
//   - [Contribution] is one fuel's contribution to a sector, with its derived
//     energy, combustion-based (CO2e_cb) and production-based (CO2e_pb)
//     emissions fixed at construction.
//   - [CalcSums] folds the contributions of a sector into its [Sums].
//   - [SplitCommunalFacilities] separates municipally owned buildings from
//     the residences and business totals.
//
// # Sectors
//
// [CalcPrivateResidences], [CalcBusinesses], [CalcTransport] and
// [CalcIndustry] build the four combustion sectors. [CalcAgriculture] and
// [CalcLULUCF] only carry production-based emissions. [Calculate] runs all
// of them and aggregates the nationwide figures; [Aggregate] is the fold
// alone, for callers that run the builders themselves.
//
// Everything in this package is pure: the same inputs always produce the
// same tree and nothing is mutated after construction.
package bisko
