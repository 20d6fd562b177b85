package report

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rshade/carbon-mrv/internal/scenario"
)

// RenderText renders the report as a plain-text MRV document.
func RenderText(r *Report) string {
	return render(r, false)
}

// RenderMarkdown renders the report as a markdown MRV document.
func RenderMarkdown(r *Report) string {
	return render(r, true)
}

type docWriter struct {
	sb       strings.Builder
	markdown bool
}

func (w *docWriter) title(s string) {
	if w.markdown {
		w.sb.WriteString("# " + s + "\n\n")
		return
	}
	w.sb.WriteString(s + "\n" + strings.Repeat("=", len(s)) + "\n\n")
}

func (w *docWriter) heading(s string) {
	if w.markdown {
		w.sb.WriteString("## " + s + "\n\n")
		return
	}
	w.sb.WriteString(s + "\n" + strings.Repeat("-", len(s)) + "\n\n")
}

func (w *docWriter) subheading(s string) {
	if w.markdown {
		w.sb.WriteString("### " + s + "\n\n")
		return
	}
	w.sb.WriteString(s + "\n\n")
}

func (w *docWriter) para(s string) {
	w.sb.WriteString(s + "\n\n")
}

func (w *docWriter) bullets(lines []string) {
	for _, line := range lines {
		w.sb.WriteString("- " + line + "\n")
	}
	w.sb.WriteString("\n")
}

func render(r *Report, markdown bool) string {
	w := &docWriter{markdown: markdown}
	s := &r.Scenario

	switch s.Sector {
	case scenario.SectorAlloy:
		w.title("MRV Carbon Footprint & Carbon Credit Report - Alloy / Steel")
	default:
		w.title("MRV Carbon Footprint & Carbon Credit Report - Agriculture")
	}

	w.bullets([]string{
		"Organisation / Facility: " + s.DisplayOrganisation(),
		"Location: " + s.DisplayLocation(),
		"Reporting year: " + s.DisplayReportingYear(),
		"Report ID: " + r.ID,
	})

	w.heading("Purpose of this MRV Report")
	w.para("This document provides a structured Measurement, Reporting and " +
		"Verification (MRV) summary of greenhouse gas (GHG) emissions for the " +
		"specified activity boundary. It is suitable as an evidence document " +
		"for carbon accounting, crediting, or internal ESG reporting.")

	renderMeasurement(w, r)
	renderReporting(w, r)
	renderVerification(w)

	return w.sb.String()
}

func renderMeasurement(w *docWriter, r *Report) {
	s := &r.Scenario

	w.heading("Section A - Measurement")

	w.subheading("A.1 Activity data collected")
	if s.Sector == scenario.SectorAlloy {
		a := s.Alloy
		w.para("The following annual activity data were provided by the alloy/steel facility:")
		w.bullets([]string{
			"Crude steel/alloy production: " + formatQty(a.SteelProductionT) + " tonnes/year",
			"Electricity consumption: " + formatQty(a.ElectricityKWh) + " kWh/year",
			"Diesel consumption: " + formatQty(a.DieselL) + " litres/year",
			"Petrol consumption: " + formatQty(a.PetrolL) + " litres/year",
		})
	} else {
		a := s.Agriculture
		w.para("The following primary activity data were provided by the farmer/producer " +
			"for the defined reporting year:")
		crop := "Main crop: " + string(a.Crop)
		if a.Crop == scenario.CropRice {
			crop += " (rice yield: " + formatQty(a.RiceYieldT) + " tonnes/year)"
		}
		w.bullets([]string{
			"Cultivated area: " + formatQty(a.AreaHa) + " ha",
			crop,
			"Synthetic nitrogen fertilizer applied: " + formatQty(a.FertilizerNKg) + " kg N/year",
			"Diesel consumption: " + formatQty(a.DieselL) + " litres/year",
			"Petrol consumption: " + formatQty(a.PetrolL) + " litres/year",
			"Electricity consumption: " + formatQty(a.ElectricityKWh) + " kWh/year",
			"Number of cattle (enteric methane): " + formatCount(a.LivestockHead) + " head",
		})
	}

	w.subheading("A.2 Emission factors used")
	factors := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Factor == "-" {
			continue
		}
		factors = append(factors, res.Source+": "+res.Factor)
	}
	w.bullets(factors)

	w.subheading("A.3 Calculation formulas")
	w.para("For each emission source, emissions in kg CO2e are computed as " +
		"Activity data x Emission factor. Key formulas are:")
	formulas := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Formula == "-" {
			continue
		}
		formulas = append(formulas, res.Source+": "+res.Formula)
	}
	w.bullets(formulas)
}

func renderReporting(w *docWriter, r *Report) {
	w.heading("Section B - Reporting")

	w.subheading("B.1 Summary of GHG emissions")
	w.para("Total GHG emissions for the defined activity boundary are estimated at " +
		formatQty(r.TotalT) + " t CO2e/year (" + formatQty(r.TotalKg) + " kg CO2e/year).")

	if r.BaselineSupplied {
		w.para("A baseline scenario of " + formatQty(r.BaselineT) + " t CO2e/year was provided by the user.")
		w.para("The difference between baseline and project emissions is " +
			formatCredits(r.CreditsT) + " t CO2e/year, which represents the maximum " +
			"potential annual volume of carbon credits, subject to verification and " +
			"eligibility under a recognised standard.")
	} else {
		w.para("No baseline scenario was provided, so this report focuses on absolute " +
			"emissions rather than emission reductions.")
	}

	w.subheading("B.2 Emissions breakdown by source")
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Source", "Activity data", "Emission factor", "Emissions (kg CO2e/year)"})
	for _, res := range r.Results {
		tw.AppendRow(table.Row{res.Source, res.Activity, res.Factor, formatQty(res.EmissionsKg)})
	}
	if w.markdown {
		w.sb.WriteString(tw.RenderMarkdown() + "\n\n")
	} else {
		w.sb.WriteString(tw.Render() + "\n\n")
	}

	w.subheading("B.3 Interpretation of results")
	if r.Dominant != nil && r.TotalKg > 0 {
		w.para("The largest contributor to total emissions is " + r.Dominant.Source +
			", with approximately " + formatQty(r.Dominant.EmissionsKg) + " kg CO2e/year (" +
			formatQty(r.Dominant.SharePct) + "% of total emissions). Prioritising " +
			"mitigation interventions for this source will usually yield the greatest impact.")
	} else {
		w.para("The breakdown table above shows the relative contribution of each " +
			"source to total emissions. Mitigation options should focus on the " +
			"largest contributors.")
	}
	if !r.Equivalencies.IsEmpty {
		w.para(r.Equivalencies.Display + ".")
	}
}

func renderVerification(w *docWriter) {
	w.heading("Section C - Verification")

	w.subheading("C.1 Evidence and documentation")
	w.para("For third-party verification, the following evidence is typically required " +
		"to substantiate the activity data used in this report:")
	w.bullets([]string{
		"Fuel purchase records (diesel/petrol invoices, logbooks).",
		"Electricity bills or meter readings covering the reporting year.",
		"Fertilizer purchase records and application logs.",
		"Production records (for alloy/steel plants) or yield/harvest records (for farms).",
		"Livestock registers (for enteric methane estimates).",
		"Any previous MRV reports or baseline studies.",
	})

	w.subheading("C.2 Assumptions and limitations")
	w.para("This report relies on default emission factors and simplified formulas. " +
		"Actual emissions may differ depending on site-specific technology, management " +
		"practices and local conditions. For formal carbon crediting, the applicable " +
		"methodology of the chosen standard (e.g., Gold Standard, Verra, ISO 14064) " +
		"must be followed.")

	w.subheading("C.3 Sign-off (for internal use or verification)")
	w.bullets([]string{
		"Prepared by: ___________________________",
		"Designation: ____________________________",
		"Date: _________________________________",
	})
}
