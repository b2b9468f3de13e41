package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epeers/deficits/internal/app"
	"github.com/epeers/deficits/internal/chart"
	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *app.Result {
	merged := []models.MergedYearRecord{
		{FiscalYear: 1970, DeficitPctGDP: models.Float64(-0.28), President: "Lyndon B. Johnson"},
		{FiscalYear: 1971, DeficitPctGDP: models.Float64(-2.07), President: "Richard Nixon"},
		{FiscalYear: 1972, DeficitPctGDP: models.Float64(-1.88), President: "Richard Nixon"},
	}
	return &app.Result{
		RunID: "test-run",
		Attributions: []models.FiscalAttribution{
			{President: "Lyndon B. Johnson", StartFiscalYear: 1966, EndFiscalYearExclusive: 1971},
			{President: "Richard Nixon", StartFiscalYear: 1971, EndFiscalYearExclusive: 1976},
		},
		Merged:   merged,
		Averages: services.AverageByPresident(merged),
		Palette:  services.AssignPalette(merged),
	}
}

func setupTestRouter(result *app.Result) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(result, chart.NewRenderer())
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "test-run", w.Header().Get("X-Run-ID"))
}

func TestIndex(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Budget deficits</title>")
	assert.Contains(t, w.Body.String(), `src="/chart.png"`)
}

func TestChartPNG(t *testing.T) {
	router := setupTestRouter(testResult())

	w := get(t, router, "/chart.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	first := w.Body.Bytes()
	require.Greater(t, len(first), 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(first[:8]))

	again := get(t, router, "/chart.png")
	assert.Equal(t, first, again.Body.Bytes())
}

func TestChartNothingToRender(t *testing.T) {
	result := testResult()
	result.Merged = nil
	result.Palette = services.AssignPalette(nil)

	w := get(t, setupTestRouter(result), "/chart.png")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Error)
}

func TestYears(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/api/years")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.YearsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, app.CutoffFiscalYear, resp.CutoffYear)
	require.Len(t, resp.Years, 3)
	assert.Equal(t, "Richard Nixon", resp.Years[2].President)
	require.NotNil(t, resp.Years[0].DeficitPctGDP)
	assert.InDelta(t, -0.28, *resp.Years[0].DeficitPctGDP, 1e-9)
}

func TestAverages(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/api/averages")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AveragesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Averages, 2)
	assert.Equal(t, "Lyndon B. Johnson", resp.Averages[0].President)
	assert.Equal(t, "Richard Nixon", resp.Averages[1].President)
	assert.Equal(t, 2, resp.Averages[1].Years)
}

func TestAttributions(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/api/attributions")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AttributionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attributions, 2)
	assert.Equal(t, 1971, resp.Attributions[1].StartFiscalYear)
}

func TestWarningsEmptyList(t *testing.T) {
	w := get(t, setupTestRouter(testResult()), "/api/warnings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"warnings":[]}`, w.Body.String())
}
