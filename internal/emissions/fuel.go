package emissions

import (
	"fmt"
	"strings"
)

// FuelKind identifies one of the two supported liquid fuels.
type FuelKind int

const (
	// FuelDiesel is diesel fuel (2.68 kg CO2e/L).
	FuelDiesel FuelKind = iota

	// FuelPetrol is petrol/gasoline (2.27 kg CO2e/L).
	FuelPetrol
)

// String returns a human-readable representation of the FuelKind.
func (k FuelKind) String() string {
	switch k {
	case FuelDiesel:
		return "Diesel"
	case FuelPetrol:
		return "Petrol"
	default:
		return fmt.Sprintf("FuelKind(%d)", int(k))
	}
}

// ParseFuelKind parses a fuel name into a FuelKind. Matching is
// case-insensitive and exhaustive: anything other than "diesel" or "petrol"
// is an error. Callers that need the historical fall-through behavior should
// use Estimator.EstimateFuelByName instead.
func ParseFuelKind(name string) (FuelKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "diesel":
		return FuelDiesel, nil
	case "petrol":
		return FuelPetrol, nil
	default:
		return 0, fmt.Errorf("unknown fuel kind %q (expected diesel or petrol)", name)
	}
}
