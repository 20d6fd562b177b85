package emissions

// FactorSet is an immutable collection of emission factors used by an
// Estimator. A FactorSet is fixed at construction time; tests can substitute
// alternate factor sets without touching the calculation logic.
type FactorSet struct {
	// FertilizerN2ON is kg N2O-N per kg N applied.
	FertilizerN2ON float64

	// N2OGWP is the Global Warming Potential multiplier for N2O.
	N2OGWP float64

	// ElectricityKgPerKWh is kg CO2 per kWh of grid electricity.
	ElectricityKgPerKWh float64

	// DieselKgPerLitre is kg CO2e per litre of diesel.
	DieselKgPerLitre float64

	// PetrolKgPerLitre is kg CO2e per litre of petrol.
	PetrolKgPerLitre float64

	// RiceAreaKgPerHa is kg CO2e per hectare per year of rice paddy.
	RiceAreaKgPerHa float64

	// RiceYieldKgPerKg is kg CO2e per kg of rice produced.
	RiceYieldKgPerKg float64

	// SteelTonnesPerTonne is tonnes CO2 per tonne of crude steel.
	SteelTonnesPerTonne float64

	// LivestockKgPerHeadYear is kg CO2e per head of cattle per year.
	LivestockKgPerHeadYear float64
}

// DefaultFactors returns the published factor set used for reports.
func DefaultFactors() FactorSet {
	return FactorSet{
		FertilizerN2ON:         FertilizerN2ONFactor,
		N2OGWP:                 N2OGWP,
		ElectricityKgPerKWh:    ElectricityKgPerKWh,
		DieselKgPerLitre:       DieselKgPerLitre,
		PetrolKgPerLitre:       PetrolKgPerLitre,
		RiceAreaKgPerHa:        RiceAreaKgPerHa,
		RiceYieldKgPerKg:       RiceYieldKgPerKg,
		SteelTonnesPerTonne:    SteelTonnesPerTonne,
		LivestockKgPerHeadYear: LivestockKgPerHeadYear,
	}
}

// FertilizerFactor returns the effective kg CO2e per kg N applied, the
// product of the three conversion steps (N applied -> N2O-N -> N2O -> CO2e).
func (f FactorSet) FertilizerFactor() float64 {
	return f.FertilizerN2ON * N2ONToN2ORatio * f.N2OGWP
}
