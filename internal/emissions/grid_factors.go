package emissions

// GridEmissionFactors maps named electricity grids to carbon intensity.
// Values are in kg CO2 per kWh.
//
// Sources: CEA (India), EPA eGRID (US), EEA (EU), IEA country profiles.
var GridEmissionFactors = map[string]float64{
	"in": 0.716, // India (CEA weighted average)
	"us": 0.386, // United States (eGRID national average)
	"eu": 0.251, // EU-27 average
	"cn": 0.582, // China
	"au": 0.656, // Australia
	"br": 0.074, // Brazil (hydro-dominated)
	"za": 0.928, // South Africa (coal-heavy)
}

// DefaultGridFactor is used when a grid is not listed in
// GridEmissionFactors. Reports default to the Indian grid, matching the
// tool's original deployment context.
const DefaultGridFactor = ElectricityKgPerKWh

// GetGridFactor returns the electricity emission factor for the given named
// grid in kg CO2 per kWh. Unknown or empty grid names return
// DefaultGridFactor.
func GetGridFactor(grid string) float64 {
	if factor, ok := GridEmissionFactors[grid]; ok {
		return factor
	}
	return DefaultGridFactor
}
