package report

import "math"

// EPA equivalency factors (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e per unit of the activity; the equivalency is
// kg_CO2e / factor.
const (
	// EPAMilesDrivenFactor is kg CO2e per mile driven in an average
	// passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// MinEquivalencyThresholdKg is the minimum total below which
	// equivalencies are suppressed; they become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0
)

// Equivalencies expresses a CO2e total as relatable real-world quantities
// for the report's interpretation section.
type Equivalencies struct {
	// MilesDriven is the equivalent miles driven in an average passenger
	// vehicle.
	MilesDriven float64 `json:"miles_driven"`

	// SmartphonesCharged is the equivalent number of smartphone charges.
	SmartphonesCharged float64 `json:"smartphones_charged"`

	// Display is the prose form, e.g. "Equivalent to driving ~781 miles
	// or charging ~18,248 smartphones". Empty when IsEmpty.
	Display string `json:"display,omitempty"`

	// IsEmpty is true when the total was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// CalculateEquivalencies converts a kg CO2e total into EPA equivalencies.
// Totals below MinEquivalencyThresholdKg yield an empty result.
func CalculateEquivalencies(kg float64) Equivalencies {
	if kg < MinEquivalencyThresholdKg {
		return Equivalencies{IsEmpty: true}
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	display := printer.Sprintf("Equivalent to driving ~%d miles or charging ~%d smartphones",
		int64(math.Round(miles)), int64(math.Round(phones)))

	return Equivalencies{
		MilesDriven:        miles,
		SmartphonesCharged: phones,
		Display:            display,
	}
}
