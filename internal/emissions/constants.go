// Package emissions converts activity data (fuel, electricity, fertilizer,
// crops, livestock, steel production) into greenhouse-gas emission estimates
// using published emission factors.
package emissions

const (
	// FertilizerN2ONFactor is kg N2O-N emitted per kg of nitrogen applied.
	// Source: IPCC 2006 guidelines, Tier 1 default for direct N2O from
	// managed soils.
	FertilizerN2ONFactor = 0.01

	// N2ONToN2ORatio converts N2O-N mass to N2O mass (molecular weight
	// ratio 44/28).
	N2ONToN2ORatio = 44.0 / 28.0

	// N2OGWP is the 100-year Global Warming Potential of N2O.
	// Source: IPCC AR5.
	N2OGWP = 265.0

	// ElectricityKgPerKWh is the grid emission factor in kg CO2 per kWh.
	// Source: CEA grid emission factor for the Indian grid.
	ElectricityKgPerKWh = 0.716

	// DieselKgPerLitre is kg CO2e per litre of diesel combusted.
	DieselKgPerLitre = 2.68

	// PetrolKgPerLitre is kg CO2e per litre of petrol combusted.
	PetrolKgPerLitre = 2.27

	// RiceAreaKgPerHa is kg CO2e per hectare per year for flooded rice
	// paddies (methane, normalized to CO2e).
	RiceAreaKgPerHa = 7870.0

	// RiceYieldKgPerKg is kg CO2e per kg of rice produced.
	RiceYieldKgPerKg = 0.9

	// SteelTonnesPerTonne is tonnes of CO2 per tonne of crude steel.
	// Source: worldsteel global average intensity.
	SteelTonnesPerTonne = 2.55

	// LivestockKgPerHeadYear is kg CO2e per head of cattle per year from
	// enteric fermentation (methane, normalized to CO2e).
	LivestockKgPerHeadYear = 912.5

	// KgPerTonne converts tonnes to kilograms.
	KgPerTonne = 1000.0
)
