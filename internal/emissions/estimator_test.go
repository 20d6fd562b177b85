package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateFertilizer(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name string
		nKg  float64
		want float64
	}{
		{name: "zero nitrogen", nKg: 0, want: 0},
		{name: "100 kg N", nKg: 100, want: 100 * 0.01 * (44.0 / 28.0) * 265},
		{name: "fractional input", nKg: 12.5, want: 12.5 * 0.01 * (44.0 / 28.0) * 265},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.EstimateFertilizer(tt.nKg)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFertilizerFactor(t *testing.T) {
	f := DefaultFactors()

	// Effective factor is ~1.6518 kg CO2e per kg N applied.
	factor := f.FertilizerFactor()
	assert.InDelta(t, 1.65178, factor, 0.0001)

	// Sequential computation and composite factor must agree.
	e := NewEstimator()
	assert.InDelta(t, 100*factor, e.EstimateFertilizer(100), 1e-9)
}

func TestEstimateElectricity(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name string
		kwh  float64
		want float64
	}{
		{name: "zero", kwh: 0, want: 0},
		{name: "200 kWh", kwh: 200, want: 143.2},
		{name: "1000 kWh", kwh: 1000, want: 716},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.EstimateElectricity(tt.kwh), 1e-9)
		})
	}
}

func TestEstimateElectricityForGrid(t *testing.T) {
	e := NewEstimator()

	// Named grid overrides the default factor.
	assert.InDelta(t, 1000*0.386, e.EstimateElectricityForGrid(1000, "us"), 1e-9)

	// Unknown grids fall back to the default 0.716 factor.
	assert.InDelta(t, 716.0, e.EstimateElectricityForGrid(1000, "atlantis"), 1e-9)
	assert.InDelta(t, 716.0, e.EstimateElectricityForGrid(1000, ""), 1e-9)
}

func TestEstimateFuel(t *testing.T) {
	e := NewEstimator()

	assert.InDelta(t, 50*2.68, e.EstimateFuel(50, FuelDiesel), 1e-9)
	assert.InDelta(t, 50*2.27, e.EstimateFuel(50, FuelPetrol), 1e-9)
	assert.Zero(t, e.EstimateFuel(0, FuelDiesel))
}

func TestEstimateFuelByName(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name     string
		fuelType string
		want     float64
	}{
		{name: "diesel lowercase", fuelType: "diesel", want: 2.68},
		{name: "diesel capitalized", fuelType: "Diesel", want: 2.68},
		{name: "diesel uppercase", fuelType: "DIESEL", want: 2.68},
		{name: "petrol", fuelType: "petrol", want: 2.27},
		// Historical behavior: anything that is not diesel uses the
		// petrol factor, including unrecognized fuel names.
		{name: "kerosene falls through to petrol", fuelType: "kerosene", want: 2.27},
		{name: "empty string falls through to petrol", fuelType: "", want: 2.27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.EstimateFuelByName(1, tt.fuelType), 1e-9)
		})
	}
}

func TestEstimateRice(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name        string
		areaHa      float64
		yieldTonnes float64
		want        float64
	}{
		{name: "zero everything", areaHa: 0, yieldTonnes: 0, want: 0},
		{name: "area only", areaHa: 2, yieldTonnes: 0, want: (2 * 7870.0) / 2},
		{name: "yield only", areaHa: 0, yieldTonnes: 5, want: (5 * 1000 * 0.9) / 2},
		{name: "both terms", areaHa: 2, yieldTonnes: 5, want: (2*7870.0 + 5*1000*0.9) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.EstimateRice(tt.areaHa, tt.yieldTonnes), 1e-9)
		})
	}
}

func TestEstimateSteel(t *testing.T) {
	e := NewEstimator()

	assert.InDelta(t, 25500.0, e.EstimateSteel(10), 1e-9)
	assert.Zero(t, e.EstimateSteel(0))
}

func TestEstimateLivestock(t *testing.T) {
	e := NewEstimator()

	assert.InDelta(t, 4562.5, e.EstimateLivestock(5), 1e-9)
	assert.Zero(t, e.EstimateLivestock(0))
}

func TestEstimatorWithAlternateFactors(t *testing.T) {
	// Factor substitution leaves the calculation logic untouched.
	factors := DefaultFactors()
	factors.ElectricityKgPerKWh = 0.5
	factors.DieselKgPerLitre = 3.0

	e := NewEstimatorWithFactors(factors)

	assert.InDelta(t, 50.0, e.EstimateElectricity(100), 1e-9)
	assert.InDelta(t, 30.0, e.EstimateFuel(10, FuelDiesel), 1e-9)
	// Untouched factors keep their defaults.
	assert.InDelta(t, 912.5, e.EstimateLivestock(1), 1e-9)
}

func TestParseFuelKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FuelKind
		wantErr bool
	}{
		{name: "diesel", input: "diesel", want: FuelDiesel},
		{name: "diesel mixed case", input: "DiEsEl", want: FuelDiesel},
		{name: "petrol", input: "Petrol", want: FuelPetrol},
		{name: "surrounding whitespace", input: "  diesel ", want: FuelDiesel},
		{name: "kerosene rejected", input: "kerosene", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFuelKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuelKindString(t *testing.T) {
	assert.Equal(t, "Diesel", FuelDiesel.String())
	assert.Equal(t, "Petrol", FuelPetrol.String())
	assert.Equal(t, "FuelKind(7)", FuelKind(7).String())
}
