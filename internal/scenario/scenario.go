// Package scenario defines the user-facing input model for a single MRV
// report request and the validation boundary in front of the emission
// calculator. The calculator itself accepts any numeric input; every
// quantity is checked here first.
package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// Sector identifies the activity boundary a report covers.
type Sector string

const (
	// SectorAgriculture covers farming activity (crops, fertilizer,
	// fuel, electricity, livestock).
	SectorAgriculture Sector = "agriculture"

	// SectorAlloy covers alloy/steel production facilities.
	SectorAlloy Sector = "alloy"
)

// ParseSector parses a sector name, case-insensitively.
func ParseSector(s string) (Sector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SectorAgriculture):
		return SectorAgriculture, nil
	case string(SectorAlloy), "steel", "alloy/steel":
		return SectorAlloy, nil
	default:
		return "", fmt.Errorf("unknown sector %q (expected agriculture or alloy)", s)
	}
}

// Crop is the main crop grown on the reported area. Only rice carries its
// own emission source (paddy methane); every other crop contributes zero
// for that source.
type Crop string

const (
	// CropGeneral is any non-rice crop.
	CropGeneral Crop = "General"

	// CropRice enables the rice-paddy emission source and requires an
	// annual yield figure.
	CropRice Crop = "Rice"
)

// ErrNegativeQuantity is returned when any activity quantity is negative.
var ErrNegativeQuantity = errors.New("activity quantity must be non-negative")

// Agriculture holds the annual activity data for a farm.
type Agriculture struct {
	AreaHa         float64 `yaml:"area_ha" json:"area_ha"`
	Crop           Crop    `yaml:"crop" json:"crop"`
	RiceYieldT     float64 `yaml:"rice_yield_t" json:"rice_yield_t"`
	FertilizerNKg  float64 `yaml:"fertilizer_n_kg" json:"fertilizer_n_kg"`
	DieselL        float64 `yaml:"diesel_l" json:"diesel_l"`
	PetrolL        float64 `yaml:"petrol_l" json:"petrol_l"`
	ElectricityKWh float64 `yaml:"electricity_kwh" json:"electricity_kwh"`
	LivestockHead  int     `yaml:"livestock_head" json:"livestock_head"`
}

// Alloy holds the annual activity data for an alloy/steel facility.
type Alloy struct {
	SteelProductionT float64 `yaml:"steel_production_t" json:"steel_production_t"`
	ElectricityKWh   float64 `yaml:"electricity_kwh" json:"electricity_kwh"`
	DieselL          float64 `yaml:"diesel_l" json:"diesel_l"`
	PetrolL          float64 `yaml:"petrol_l" json:"petrol_l"`
}

// Scenario is one complete report request: reporting metadata, the sector
// selector, an optional baseline, and the sector's activity data.
type Scenario struct {
	Organisation  string `yaml:"organisation" json:"organisation"`
	Location      string `yaml:"location" json:"location"`
	ReportingYear string `yaml:"reporting_year" json:"reporting_year"`

	Sector Sector `yaml:"sector" json:"sector"`

	// BaselineT is the business-as-usual emission level in t CO2e/year.
	// Zero means no baseline was supplied.
	BaselineT float64 `yaml:"baseline_t" json:"baseline_t"`

	Agriculture *Agriculture `yaml:"agriculture,omitempty" json:"agriculture,omitempty"`
	Alloy       *Alloy       `yaml:"alloy,omitempty" json:"alloy,omitempty"`
}

// Validate checks the scenario before it reaches the calculator. It rejects
// unknown sectors and crops, missing sector blocks, and any negative
// quantity.
func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	if s.BaselineT < 0 {
		return fmt.Errorf("baseline_t: %w", ErrNegativeQuantity)
	}

	switch s.Sector {
	case SectorAgriculture:
		if s.Agriculture == nil {
			return errors.New("agriculture block is required for the agriculture sector")
		}
		return s.Agriculture.validate()
	case SectorAlloy:
		if s.Alloy == nil {
			return errors.New("alloy block is required for the alloy sector")
		}
		return s.Alloy.validate()
	default:
		return fmt.Errorf("unknown sector %q (expected agriculture or alloy)", s.Sector)
	}
}

func (a *Agriculture) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"area_ha", a.AreaHa},
		{"rice_yield_t", a.RiceYieldT},
		{"fertilizer_n_kg", a.FertilizerNKg},
		{"diesel_l", a.DieselL},
		{"petrol_l", a.PetrolL},
		{"electricity_kwh", a.ElectricityKWh},
		{"livestock_head", float64(a.LivestockHead)},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s: %w", f.name, ErrNegativeQuantity)
		}
	}

	switch a.Crop {
	case CropGeneral, CropRice:
	case "":
		// Default to a non-rice crop when unspecified.
		a.Crop = CropGeneral
	default:
		return fmt.Errorf("unknown crop %q (expected General or Rice)", a.Crop)
	}

	if a.Crop != CropRice && a.RiceYieldT != 0 {
		return errors.New("rice_yield_t is only valid when crop is Rice")
	}
	return nil
}

func (a *Alloy) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"steel_production_t", a.SteelProductionT},
		{"electricity_kwh", a.ElectricityKWh},
		{"diesel_l", a.DieselL},
		{"petrol_l", a.PetrolL},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s: %w", f.name, ErrNegativeQuantity)
		}
	}
	return nil
}

// DisplayOrganisation returns the organisation name or a placeholder when
// the field was left blank.
func (s *Scenario) DisplayOrganisation() string {
	if s.Organisation == "" {
		return "Unnamed facility / organisation"
	}
	return s.Organisation
}

// DisplayLocation returns the location or a placeholder.
func (s *Scenario) DisplayLocation() string {
	if s.Location == "" {
		return "Location not specified"
	}
	return s.Location
}

// DisplayReportingYear returns the reporting year or a placeholder.
func (s *Scenario) DisplayReportingYear() string {
	if s.ReportingYear == "" {
		return "Reporting year not specified"
	}
	return s.ReportingYear
}
