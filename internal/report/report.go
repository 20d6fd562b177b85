// Package report aggregates per-source emission estimates into an MRV
// (Measurement, Reporting, Verification) report and renders it as text,
// markdown, or JSON.
package report

import (
	"time"

	"github.com/rshade/carbon-mrv/internal/scenario"
)

// SourceResult is one row of the emissions breakdown: a single emission
// source, the activity data that produced it, the factor or formula applied,
// and the resulting mass of CO2e.
type SourceResult struct {
	// Source is the display name of the emission source.
	Source string `json:"source"`

	// Activity is the activity data as entered, with units.
	Activity string `json:"activity"`

	// Factor describes the emission factor applied, or "-" when the
	// source does not apply to this scenario.
	Factor string `json:"factor"`

	// Formula is the calculation formula for the source.
	Formula string `json:"formula"`

	// EmissionsKg is the estimated emissions in kg CO2e per year.
	EmissionsKg float64 `json:"emissions_kg"`
}

// DominantSource identifies the largest contributor to total emissions.
type DominantSource struct {
	Source      string  `json:"source"`
	EmissionsKg float64 `json:"emissions_kg"`
	SharePct    float64 `json:"share_pct"`
}

// Report is a complete emission report for one scenario. Reports are
// immutable after construction; each submission produces a fresh one.
type Report struct {
	// ID uniquely identifies this report.
	ID string `json:"id"`

	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generated_at"`

	// Scenario echoes the validated input the report was built from.
	Scenario scenario.Scenario `json:"scenario"`

	// Results is the ordered per-source breakdown.
	Results []SourceResult `json:"results"`

	// TotalKg is the sum of all result emissions in kg CO2e/year.
	TotalKg float64 `json:"total_kg"`

	// TotalT is TotalKg expressed in tonnes.
	TotalT float64 `json:"total_t"`

	// BaselineT is the user-supplied baseline in t CO2e/year, if any.
	BaselineT float64 `json:"baseline_t"`

	// BaselineSupplied reports whether a baseline greater than zero was
	// provided.
	BaselineSupplied bool `json:"baseline_supplied"`

	// CreditsT is the indicative carbon-credit potential in t CO2e/year:
	// max(0, baseline - total) when a baseline was supplied, else 0.
	CreditsT float64 `json:"credits_t"`

	// Dominant is the largest-emitting source, nil when there are no
	// results. Ties keep the first source in breakdown order.
	Dominant *DominantSource `json:"dominant,omitempty"`

	// Equivalencies translates the total into relatable quantities.
	Equivalencies Equivalencies `json:"equivalencies"`
}

// KgToTonnes converts kilograms to tonnes.
func KgToTonnes(kg float64) float64 {
	return kg / 1000.0
}

// aggregate fills the derived totals of a report from its results and
// baseline. The dominant source is found by a maximum scan over the rows;
// on ties the first occurrence wins.
func (r *Report) aggregate() {
	var total float64
	for _, res := range r.Results {
		total += res.EmissionsKg
	}
	r.TotalKg = total
	r.TotalT = KgToTonnes(total)

	r.BaselineSupplied = r.BaselineT > 0
	if r.BaselineSupplied && r.BaselineT > r.TotalT {
		r.CreditsT = r.BaselineT - r.TotalT
	} else {
		r.CreditsT = 0
	}

	r.Dominant = nil
	for _, res := range r.Results {
		if r.Dominant == nil || res.EmissionsKg > r.Dominant.EmissionsKg {
			d := DominantSource{
				Source:      res.Source,
				EmissionsKg: res.EmissionsKg,
			}
			if total > 0 {
				d.SharePct = res.EmissionsKg / total * 100
			}
			r.Dominant = &d
		}
	}

	r.Equivalencies = CalculateEquivalencies(total)
}
