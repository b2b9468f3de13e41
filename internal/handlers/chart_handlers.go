package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/epeers/deficits/internal/app"
	"github.com/epeers/deficits/internal/chart"
	"github.com/epeers/deficits/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Suptitle}}</h1>
<img src="/chart.png" alt="{{.Title}}">
</body>
</html>
`))

// ChartHandler serves the rendered chart and the data behind it
type ChartHandler struct {
	result   *app.Result
	renderer *chart.Renderer

	once sync.Once
	png  []byte
	err  error
}

// NewChartHandler creates a new ChartHandler for a completed run
func NewChartHandler(result *app.Result, renderer *chart.Renderer) *ChartHandler {
	return &ChartHandler{
		result:   result,
		renderer: renderer,
	}
}

// Index handles GET /
func (h *ChartHandler) Index(c *gin.Context) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, struct{ Title, Suptitle string }{chart.WindowTitle, chart.Suptitle})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Chart handles GET /chart.png
// @Summary Deficit chart
// @Description Per-year deficits colored by administration above the per-administration averages
// @Tags chart
// @Produce png
// @Success 200 {file} binary
// @Failure 500 {object} models.ErrorResponse
// @Router /chart.png [get]
func (h *ChartHandler) Chart(c *gin.Context) {
	// the result is immutable, so one rendering serves every request
	h.once.Do(func() {
		var buf bytes.Buffer
		h.err = h.renderer.Render(&buf, chart.FormatPNG, h.result.Merged, h.result.Averages, h.result.Palette)
		h.png = buf.Bytes()
	})
	if h.err != nil {
		log.Errorf("chart rendering failed: %v", h.err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: fmt.Sprintf("failed to render chart: %v", h.err),
		})
		return
	}
	c.Data(http.StatusOK, "image/png", h.png)
}

// Years handles GET /api/years
// @Summary Merged fiscal-year series
// @Description Deficit as percent of GDP for each fiscal year with the responsible president
// @Tags data
// @Produce json
// @Success 200 {object} models.YearsResponse
// @Router /api/years [get]
func (h *ChartHandler) Years(c *gin.Context) {
	c.JSON(http.StatusOK, models.YearsResponse{
		CutoffYear: app.CutoffFiscalYear,
		Years:      h.result.Merged,
	})
}

// Averages handles GET /api/averages
// @Summary Per-administration averages
// @Description Mean deficit as percent of GDP per president, in order of first appearance
// @Tags data
// @Produce json
// @Success 200 {object} models.AveragesResponse
// @Router /api/averages [get]
func (h *ChartHandler) Averages(c *gin.Context) {
	c.JSON(http.StatusOK, models.AveragesResponse{Averages: h.result.Averages})
}

// Attributions handles GET /api/attributions
// @Summary Fiscal attribution ranges
// @Description Fiscal-year responsibility range of every president from the anchor onward
// @Tags data
// @Produce json
// @Success 200 {object} models.AttributionsResponse
// @Router /api/attributions [get]
func (h *ChartHandler) Attributions(c *gin.Context) {
	c.JSON(http.StatusOK, models.AttributionsResponse{Attributions: h.result.Attributions})
}

// Warnings handles GET /api/warnings
// @Summary Parse warnings
// @Description Raw rows that were skipped or coerced while loading
// @Tags data
// @Produce json
// @Success 200 {object} models.WarningsResponse
// @Router /api/warnings [get]
func (h *ChartHandler) Warnings(c *gin.Context) {
	warnings := h.result.Warnings
	if warnings == nil {
		warnings = []models.Warning{}
	}
	c.JSON(http.StatusOK, models.WarningsResponse{Warnings: warnings})
}
