package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rshade/carbon-mrv/internal/api/models"
	"github.com/rshade/carbon-mrv/internal/emissions"
)

// FactorsHandler serves the published emission factor tables.
type FactorsHandler struct {
	factors emissions.FactorSet
}

// NewFactorsHandler creates a factors handler over a factor set.
func NewFactorsHandler(factors emissions.FactorSet) *FactorsHandler {
	return &FactorsHandler{factors: factors}
}

// GetFactors handles GET /api/v1/factors.
func (h *FactorsHandler) GetFactors(c *gin.Context) {
	f := h.factors

	grids := make(map[string]float64, len(emissions.GridEmissionFactors))
	for grid, factor := range emissions.GridEmissionFactors {
		grids[grid] = factor
	}

	c.JSON(http.StatusOK, models.FactorsResponse{
		Factors: map[string]float64{
			"fertilizer_kg_co2e_per_kg_n":      f.FertilizerFactor(),
			"electricity_kg_co2_per_kwh":       f.ElectricityKgPerKWh,
			"diesel_kg_co2e_per_l":             f.DieselKgPerLitre,
			"petrol_kg_co2e_per_l":             f.PetrolKgPerLitre,
			"rice_area_kg_co2e_per_ha":         f.RiceAreaKgPerHa,
			"rice_yield_kg_co2e_per_kg":        f.RiceYieldKgPerKg,
			"steel_t_co2_per_tonne":            f.SteelTonnesPerTonne,
			"livestock_kg_co2e_per_head_year":  f.LivestockKgPerHeadYear,
		},
		GridFactors:       grids,
		DefaultGridFactor: emissions.DefaultGridFactor,
	})
}
