package emissions

// Estimator converts activity quantities into kg CO2e estimates using a
// fixed FactorSet. All methods are pure: same input, same output, no side
// effects. Inputs are assumed non-negative; callers validate quantities
// before invoking the estimator.
type Estimator struct {
	factors FactorSet
}

// NewEstimator creates an estimator using the default published factors.
func NewEstimator() *Estimator {
	return NewEstimatorWithFactors(DefaultFactors())
}

// NewEstimatorWithFactors creates an estimator over an explicit factor set.
func NewEstimatorWithFactors(factors FactorSet) *Estimator {
	return &Estimator{factors: factors}
}

// Factors returns the factor set the estimator was built with.
func (e *Estimator) Factors() FactorSet {
	return e.factors
}

// EstimateFertilizer calculates emissions from synthetic nitrogen fertilizer.
//
// The calculation applies three sequential conversions:
//  1. N2O-N (kg) = N applied × 0.01
//  2. N2O (kg)   = N2O-N × (44/28)
//  3. CO2e (kg)  = N2O × GWP (265)
func (e *Estimator) EstimateFertilizer(nKg float64) float64 {
	n2oN := nKg * e.factors.FertilizerN2ON
	n2o := n2oN * N2ONToN2ORatio
	return n2o * e.factors.N2OGWP
}

// EstimateElectricity calculates emissions from grid electricity in kg CO2.
func (e *Estimator) EstimateElectricity(kwh float64) float64 {
	return kwh * e.factors.ElectricityKgPerKWh
}

// EstimateElectricityForGrid calculates grid electricity emissions using the
// intensity of a named grid instead of the default factor.
func (e *Estimator) EstimateElectricityForGrid(kwh float64, grid string) float64 {
	return kwh * GetGridFactor(grid)
}

// EstimateFuel calculates combustion emissions for a known fuel kind.
func (e *Estimator) EstimateFuel(litres float64, kind FuelKind) float64 {
	if kind == FuelDiesel {
		return litres * e.factors.DieselKgPerLitre
	}
	return litres * e.factors.PetrolKgPerLitre
}

// EstimateFuelByName calculates combustion emissions from a free-form fuel
// name. "diesel" (case-insensitive) selects the diesel factor; any other
// value falls through to the petrol factor. This preserves the historical
// dispatch behavior; new callers should parse a FuelKind at the validation
// boundary and use EstimateFuel.
func (e *Estimator) EstimateFuelByName(litres float64, fuelType string) float64 {
	kind, err := ParseFuelKind(fuelType)
	if err != nil {
		kind = FuelPetrol
	}
	return e.EstimateFuel(litres, kind)
}

// EstimateRice calculates emissions from flooded rice paddies as the average
// of an area-based and a yield-based estimate:
//
//	area-based  = area_ha × 7,870
//	yield-based = yield_t × 1000 × 0.9
//	result      = (area-based + yield-based) / 2
func (e *Estimator) EstimateRice(areaHa, yieldTonnes float64) float64 {
	areaKg := areaHa * e.factors.RiceAreaKgPerHa
	yieldKg := yieldTonnes * KgPerTonne * e.factors.RiceYieldKgPerKg
	return (areaKg + yieldKg) / 2
}

// EstimateSteel calculates direct emissions from crude steel/alloy
// production. The factor is published in tonnes CO2 per tonne of steel, so
// the result is scaled to kilograms.
func (e *Estimator) EstimateSteel(tonnes float64) float64 {
	return tonnes * e.factors.SteelTonnesPerTonne * KgPerTonne
}

// EstimateLivestock calculates annual enteric methane emissions for a cattle
// herd, using a flat per-head factor.
func (e *Estimator) EstimateLivestock(headcount int) float64 {
	return float64(headcount) * e.factors.LivestockKgPerHeadYear
}
