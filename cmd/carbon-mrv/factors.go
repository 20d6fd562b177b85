package main

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rshade/carbon-mrv/internal/emissions"
)

func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Print the published emission factor tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := emissions.DefaultFactors()

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetTitle("Emission factors")
			tw.AppendHeader(table.Row{"Source", "Factor", "Unit"})
			tw.AppendRows([]table.Row{
				{"Synthetic N fertilizer", formatFactor(f.FertilizerFactor()), "kg CO2e / kg N applied"},
				{"Grid electricity (default)", formatFactor(f.ElectricityKgPerKWh), "kg CO2 / kWh"},
				{"Diesel fuel", formatFactor(f.DieselKgPerLitre), "kg CO2e / L"},
				{"Petrol fuel", formatFactor(f.PetrolKgPerLitre), "kg CO2e / L"},
				{"Rice paddies (area term)", formatFactor(f.RiceAreaKgPerHa), "kg CO2e / ha / year"},
				{"Rice paddies (yield term)", formatFactor(f.RiceYieldKgPerKg), "kg CO2e / kg rice"},
				{"Steel production", formatFactor(f.SteelTonnesPerTonne), "t CO2 / tonne crude steel"},
				{"Livestock (enteric methane)", formatFactor(f.LivestockKgPerHeadYear), "kg CO2e / head / year"},
			})
			tw.Render()

			grids := make([]string, 0, len(emissions.GridEmissionFactors))
			for grid := range emissions.GridEmissionFactors {
				grids = append(grids, grid)
			}
			sort.Strings(grids)

			gw := table.NewWriter()
			gw.SetOutputMirror(cmd.OutOrStdout())
			gw.SetTitle("Named electricity grids (kg CO2 / kWh)")
			gw.AppendHeader(table.Row{"Grid", "Factor"})
			for _, grid := range grids {
				gw.AppendRow(table.Row{grid, formatFactor(emissions.GridEmissionFactors[grid])})
			}
			gw.Render()

			return nil
		},
	}
	return cmd
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
