// Package models defines the request/response envelopes of the HTTP API.
package models

// ErrorResponse is the error envelope returned for all failed requests.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned by the API.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidScenario = "INVALID_SCENARIO"
	CodeInternalError   = "INTERNAL_ERROR"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// FactorsResponse is returned by GET /api/v1/factors.
type FactorsResponse struct {
	// Factors is the default published emission factor set.
	Factors map[string]float64 `json:"factors"`

	// GridFactors maps named electricity grids to kg CO2/kWh.
	GridFactors map[string]float64 `json:"grid_factors"`

	// DefaultGridFactor is the electricity factor used when no grid is
	// named.
	DefaultGridFactor float64 `json:"default_grid_factor"`
}
