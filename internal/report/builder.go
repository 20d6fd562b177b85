package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/carbon-mrv/internal/emissions"
	"github.com/rshade/carbon-mrv/internal/scenario"
)

// Source display names, in the fixed breakdown order of the report.
const (
	SourceFertilizer  = "Synthetic nitrogen fertilizer"
	SourceDiesel      = "Diesel"
	SourcePetrol      = "Petrol"
	SourceElectricity = "Electricity (grid)"
	SourceRice        = "Rice paddies"
	SourceLivestock   = "Livestock (enteric methane)"
	SourceSteel       = "Steel production"
)

// Builder turns a validated scenario into a Report using an emission
// estimator. A Builder is safe for concurrent use; each Build call works on
// request-local state only.
type Builder struct {
	estimator *emissions.Estimator
	logger    zerolog.Logger
}

// NewBuilder creates a Builder over the default published factor set.
func NewBuilder(logger zerolog.Logger) *Builder {
	return NewBuilderWithEstimator(emissions.NewEstimator(), logger)
}

// NewBuilderWithEstimator creates a Builder over an explicit estimator,
// letting tests substitute alternate factor sets.
func NewBuilderWithEstimator(est *emissions.Estimator, logger zerolog.Logger) *Builder {
	return &Builder{estimator: est, logger: logger}
}

// Build validates the scenario and produces a complete report for it.
func (b *Builder) Build(s *scenario.Scenario) (*Report, error) {
	start := time.Now()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Scenario:    *s,
		BaselineT:   s.BaselineT,
	}

	switch s.Sector {
	case scenario.SectorAgriculture:
		r.Results = b.agricultureRows(s.Agriculture)
	case scenario.SectorAlloy:
		r.Results = b.alloyRows(s.Alloy)
	default:
		// Validate already rejected anything else.
		return nil, fmt.Errorf("invalid scenario: unknown sector %q", s.Sector)
	}

	r.aggregate()

	b.logger.Info().
		Str("report_id", r.ID).
		Str("sector", string(s.Sector)).
		Float64("total_kg", r.TotalKg).
		Float64("baseline_t", r.BaselineT).
		Float64("credits_t", r.CreditsT).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("report built")

	return r, nil
}

// agricultureRows produces the six-row agriculture breakdown in the fixed
// report order: fertilizer, diesel, petrol, electricity, rice, livestock.
func (b *Builder) agricultureRows(a *scenario.Agriculture) []SourceResult {
	est := b.estimator
	f := est.Factors()

	rows := []SourceResult{
		{
			Source:      SourceFertilizer,
			Activity:    formatQty(a.FertilizerNKg) + " kg N/year",
			Factor:      formatQty(f.FertilizerFactor()) + " kg CO2e/kg N",
			Formula:     "Emissions = N x 0.01 x 44/28 x 265",
			EmissionsKg: est.EstimateFertilizer(a.FertilizerNKg),
		},
		{
			Source:      SourceDiesel,
			Activity:    formatQty(a.DieselL) + " L/year",
			Factor:      formatFactor(f.DieselKgPerLitre) + " kg CO2e/L",
			Formula:     "Emissions = Diesel_L x " + formatFactor(f.DieselKgPerLitre),
			EmissionsKg: est.EstimateFuel(a.DieselL, emissions.FuelDiesel),
		},
		{
			Source:      SourcePetrol,
			Activity:    formatQty(a.PetrolL) + " L/year",
			Factor:      formatFactor(f.PetrolKgPerLitre) + " kg CO2e/L",
			Formula:     "Emissions = Petrol_L x " + formatFactor(f.PetrolKgPerLitre),
			EmissionsKg: est.EstimateFuel(a.PetrolL, emissions.FuelPetrol),
		},
		{
			Source:      SourceElectricity,
			Activity:    formatQty(a.ElectricityKWh) + " kWh/year",
			Factor:      formatFactor(f.ElectricityKgPerKWh) + " kg CO2/kWh",
			Formula:     "Emissions = kWh x " + formatFactor(f.ElectricityKgPerKWh),
			EmissionsKg: est.EstimateElectricity(a.ElectricityKWh),
		},
		b.riceRow(a),
		{
			Source:      SourceLivestock,
			Activity:    formatCount(a.LivestockHead) + " head of cattle",
			Factor:      formatFactor(f.LivestockKgPerHeadYear) + " kg CO2e/head/year",
			Formula:     "Emissions = headcount x " + formatFactor(f.LivestockKgPerHeadYear),
			EmissionsKg: est.EstimateLivestock(a.LivestockHead),
		},
	}
	return rows
}

// riceRow builds the rice-paddy row. Only the Rice crop variant carries the
// area/yield computation; other crops contribute a display-only zero row.
func (b *Builder) riceRow(a *scenario.Agriculture) SourceResult {
	if a.Crop != scenario.CropRice {
		return SourceResult{
			Source:      SourceRice,
			Activity:    "Not applicable",
			Factor:      "-",
			Formula:     "-",
			EmissionsKg: 0,
		}
	}
	f := b.estimator.Factors()
	return SourceResult{
		Source:   SourceRice,
		Activity: formatQty(a.AreaHa) + " ha & " + formatQty(a.RiceYieldT) + " t/year",
		Factor: printer.Sprintf("%d", int64(f.RiceAreaKgPerHa)) + " kg CO2e/ha/year & " +
			formatFactor(f.RiceYieldKgPerKg) + " kg CO2e/kg rice",
		Formula:     "Emissions = (Area x 7,870 + Yield_kg x 0.9) / 2",
		EmissionsKg: b.estimator.EstimateRice(a.AreaHa, a.RiceYieldT),
	}
}

// alloyRows produces the four-row alloy/steel breakdown in the fixed report
// order: steel, electricity, diesel, petrol.
func (b *Builder) alloyRows(a *scenario.Alloy) []SourceResult {
	est := b.estimator
	f := est.Factors()

	return []SourceResult{
		{
			Source:   SourceSteel,
			Activity: formatQty(a.SteelProductionT) + " tonnes/year",
			Factor: formatFactor(f.SteelTonnesPerTonne) + " t CO2/tonne (~" +
				printer.Sprintf("%d", int64(f.SteelTonnesPerTonne*emissions.KgPerTonne)) + " kg CO2/tonne)",
			Formula:     "Emissions = production_t x " + formatFactor(f.SteelTonnesPerTonne) + " x 1000",
			EmissionsKg: est.EstimateSteel(a.SteelProductionT),
		},
		{
			Source:      SourceElectricity,
			Activity:    formatQty(a.ElectricityKWh) + " kWh/year",
			Factor:      formatFactor(f.ElectricityKgPerKWh) + " kg CO2/kWh",
			Formula:     "Emissions = kWh x " + formatFactor(f.ElectricityKgPerKWh),
			EmissionsKg: est.EstimateElectricity(a.ElectricityKWh),
		},
		{
			Source:      SourceDiesel,
			Activity:    formatQty(a.DieselL) + " L/year",
			Factor:      formatFactor(f.DieselKgPerLitre) + " kg CO2e/L",
			Formula:     "Emissions = Diesel_L x " + formatFactor(f.DieselKgPerLitre),
			EmissionsKg: est.EstimateFuel(a.DieselL, emissions.FuelDiesel),
		},
		{
			Source:      SourcePetrol,
			Activity:    formatQty(a.PetrolL) + " L/year",
			Factor:      formatFactor(f.PetrolKgPerLitre) + " kg CO2e/L",
			Formula:     "Emissions = Petrol_L x " + formatFactor(f.PetrolKgPerLitre),
			EmissionsKg: est.EstimateFuel(a.PetrolL, emissions.FuelPetrol),
		},
	}
}
