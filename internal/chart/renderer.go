package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/services"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output image format
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	WindowTitle = "Budget deficits"
	Suptitle    = "US Budget deficits as a % of GDP in 1970-2010, " +
		"by administration, with adjustments for 10/01 - 09/30 fiscal year"
)

// ErrNothingToRender is returned for an empty merged series
var ErrNothingToRender = errors.New("no fiscal years to render")

var averageBarColor = color.Gray{Y: 128}

// FormatFromPath picks the output format from a file extension, defaulting to PNG
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", filepath.Ext(path))
	}
}

// Renderer draws the per-year chart above the per-administration averages
type Renderer struct {
	Width    vg.Length
	Height   vg.Length
	BarWidth vg.Length
}

// NewRenderer creates a Renderer with the default page size
func NewRenderer() *Renderer {
	return &Renderer{
		Width:    14 * vg.Inch,
		Height:   9 * vg.Inch,
		BarWidth: vg.Points(16),
	}
}

// Render draws merged above averages and writes the image to w. Failures are
// returned as is; there is no retry.
func (r *Renderer) Render(w io.Writer, format Format, merged []models.MergedYearRecord, averages []models.PresidentAverage, palette *services.Palette) error {
	if len(merged) == 0 {
		return ErrNothingToRender
	}

	yearly, err := r.yearlyPlot(merged, palette)
	if err != nil {
		return fmt.Errorf("failed to build yearly chart: %w", err)
	}
	means, err := r.averagesPlot(averages)
	if err != nil {
		return fmt.Errorf("failed to build averages chart: %w", err)
	}

	var canvas interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch format {
	case FormatPNG:
		canvas = vgimg.PngCanvas{Canvas: vgimg.New(r.Width, r.Height)}
	case FormatSVG:
		canvas = vgsvg.New(r.Width, r.Height)
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(24),
	}
	cells := plot.Align([][]*plot.Plot{{yearly}, {means}}, tiles, draw.New(canvas))
	yearly.Draw(cells[0][0])
	means.Draw(cells[1][0])

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", format, err)
	}
	return nil
}

// RenderFile renders into path, choosing the format from its extension
func (r *Renderer) RenderFile(path string, merged []models.MergedYearRecord, averages []models.PresidentAverage, palette *services.Palette) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := r.Render(f, format, merged, averages, palette); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}
	log.Infof("chart written to %s", path)
	return nil
}

// yearlyPlot draws one bar per fiscal year of the negated deficit, colored and
// legended by president
func (r *Renderer) yearlyPlot(merged []models.MergedYearRecord, palette *services.Palette) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Suptitle
	p.Y.Label.Text = "Deficits as % of GDP"
	p.X.Tick.Marker = fiveYearTicks(merged)
	p.Legend.Left = true
	p.Legend.Top = false

	legended := make(map[string]bool)
	for _, run := range presidentRuns(merged) {
		values := make(plotter.Values, len(run))
		for i, m := range run {
			if m.DeficitPctGDP != nil {
				values[i] = -*m.DeficitPctGDP
			}
		}

		bars, err := plotter.NewBarChart(values, r.BarWidth)
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(run[0].FiscalYear)
		bars.LineStyle.Width = 0
		if c, ok := palette.Color(run[0].President); ok {
			bars.Color = c
		}
		p.Add(bars)

		if !legended[run[0].President] {
			legended[run[0].President] = true
			p.Legend.Add(LegendLabel(run[0].President), bars)
		}
	}
	return p, nil
}

// averagesPlot draws one grey bar per president, annotated with its value
func (r *Renderer) averagesPlot(averages []models.PresidentAverage) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Average deficits as % of GDP"

	values := make(plotter.Values, len(averages))
	names := make([]string, len(averages))
	xys := make(plotter.XYs, len(averages))
	labels := make([]string, len(averages))
	for i, a := range averages {
		values[i] = -a.DeficitPctGDP
		names[i] = a.President
		xys[i] = plotter.XY{X: float64(i), Y: values[i] * 0.9}
		labels[i] = services.FormatPercent(values[i])
	}

	bars, err := plotter.NewBarChart(values, r.BarWidth*3)
	if err != nil {
		return nil, err
	}
	bars.Color = averageBarColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = text.XCenter
		annotations.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(annotations)
	return p, nil
}

// LegendLabel is the president's last name
func LegendLabel(president string) string {
	fields := strings.Fields(president)
	if len(fields) == 0 {
		return president
	}
	return fields[len(fields)-1]
}

// presidentRuns splits merged into runs of consecutive years with the same president
func presidentRuns(merged []models.MergedYearRecord) [][]models.MergedYearRecord {
	var runs [][]models.MergedYearRecord
	start := 0
	for i := 1; i <= len(merged); i++ {
		if i == len(merged) ||
			merged[i].President != merged[start].President ||
			merged[i].FiscalYear != merged[i-1].FiscalYear+1 {
			runs = append(runs, merged[start:i])
			start = i
		}
	}
	return runs
}

// fiveYearTicks places a labeled tick on every fiscal year divisible by 5
func fiveYearTicks(merged []models.MergedYearRecord) plot.ConstantTicks {
	var ticks plot.ConstantTicks
	for _, m := range merged {
		if m.FiscalYear%5 == 0 {
			ticks = append(ticks, plot.Tick{Value: float64(m.FiscalYear), Label: strconv.Itoa(m.FiscalYear)})
		}
	}
	return ticks
}
