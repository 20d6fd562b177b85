// Package handlers implements the HTTP handlers of the report API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rshade/carbon-mrv/internal/api/models"
	"github.com/rshade/carbon-mrv/internal/report"
	"github.com/rshade/carbon-mrv/internal/scenario"
)

// ReportHandler serves report computation requests.
type ReportHandler struct {
	builder *report.Builder
	onBuilt func(sector string)
	onError func(code string)
}

// NewReportHandler creates a report handler around a builder. The optional
// callbacks feed the Prometheus counters.
func NewReportHandler(b *report.Builder, onBuilt func(sector string), onError func(code string)) *ReportHandler {
	if onBuilt == nil {
		onBuilt = func(string) {}
	}
	if onError == nil {
		onError = func(string) {}
	}
	return &ReportHandler{builder: b, onBuilt: onBuilt, onError: onError}
}

// CreateReport handles POST /api/v1/report. The body is a scenario JSON
// document; the response is the full report. The optional "format" query
// parameter selects a rendered document ("text" or "markdown") instead of
// JSON.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var s scenario.Scenario
	if err := c.ShouldBindJSON(&s); err != nil {
		h.onError(models.CodeInvalidRequest)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidRequest,
				Message: err.Error(),
			},
		})
		return
	}

	if err := s.Validate(); err != nil {
		h.onError(models.CodeInvalidScenario)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidScenario,
				Message: err.Error(),
			},
		})
		return
	}

	r, err := h.builder.Build(&s)
	if err != nil {
		h.onError(models.CodeInvalidScenario)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidScenario,
				Message: err.Error(),
			},
		})
		return
	}
	h.onBuilt(string(s.Sector))

	switch c.Query("format") {
	case "text":
		c.String(http.StatusOK, report.RenderText(r))
	case "markdown":
		c.String(http.StatusOK, report.RenderMarkdown(r))
	default:
		c.JSON(http.StatusOK, r)
	}
}
