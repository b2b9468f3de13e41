// Package app wires the deficit pipeline: load the two raw series, attribute
// fiscal years to presidents, merge, and prepare what the chart needs.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/epeers/deficits/config"
	"github.com/epeers/deficits/internal/cache"
	"github.com/epeers/deficits/internal/models"
	"github.com/epeers/deficits/internal/services"
	"github.com/epeers/deficits/internal/sources"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Scope of the chart. The reference chart was made in 2011, so data after
// fiscal 2010 is dropped.
const (
	CutoffFiscalYear = 2010
	AnchorPresident  = "John F. Kennedy"

	DeficitURL    = "https://www.usgovernmentdebt.us/rev/usgs_downchart_csv.php?year=1970_2020&state=US&units=p&view=2&fy=fy20&chart=G0-fed&stack=1&title=Fifty%20Years%20Of%20Federal%20Deficits%20As%20Pct%20GDP&local=s&thing="
	PresidentsURL = "https://gist.githubusercontent.com/namuol/2657233/raw/74135b2637e624848c163759be9cd14ae33f5153/presidents.csv"

	DeficitCacheFile    = "deficit.csv"
	PresidentsCacheFile = "presidents.csv"
)

// currentTermEnds resolves the term still running when the presidents file was published
var currentTermEnds = map[string]time.Time{
	"Barack Obama": time.Date(2017, time.January, 20, 0, 0, 0, 0, time.UTC),
}

// SeriesLoader provides the two raw inputs
type SeriesLoader interface {
	LoadDeficitSeries(ctx context.Context) ([]models.DeficitRecord, error)
	LoadPresidentTerms(ctx context.Context) ([]models.PresidentTerm, error)
}

// Result is everything one run derives. It is not modified after Run returns.
type Result struct {
	RunID        string
	Deficits     []models.DeficitRecord
	Terms        []models.PresidentTerm
	Attributions []models.FiscalAttribution
	Merged       []models.MergedYearRecord
	Averages     []models.PresidentAverage
	Palette      *services.Palette
	Warnings     []models.Warning
}

// LoaderConfig returns the fixed source configuration
func LoaderConfig() sources.LoaderConfig {
	return sources.LoaderConfig{
		Deficit:             sources.Source{Name: "deficit", URL: DeficitURL, CacheFile: DeficitCacheFile},
		Presidents:          sources.Source{Name: "presidents", URL: PresidentsURL, CacheFile: PresidentsCacheFile},
		MaxFiscalYear:       CutoffFiscalYear,
		LeftOfficeOverrides: currentTermEnds,
	}
}

// NewLoader builds the cache-backed loader for cfg.CacheDir
func NewLoader(cfg *config.Config) *sources.Loader {
	return sources.NewLoader(sources.NewClient(), cache.NewFileCache(filepath.Clean(cfg.CacheDir)), LoaderConfig())
}

// Run executes load, attribute, merge and palette assignment once.
// Any error is fatal to the run.
func Run(ctx context.Context, loader SeriesLoader) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	logger := log.WithField("run_id", res.RunID)
	logger.Info("run begins")
	defer services.TrackTime("run", time.Now())

	ctx, wc := services.NewWarningContext(ctx)

	if err := loadInputs(ctx, loader, res); err != nil {
		return nil, err
	}
	res.Warnings = wc.GetWarnings()
	if len(res.Warnings) > 0 {
		logger.Warnf("%d raw rows needed attention while parsing", len(res.Warnings))
	}

	attributions, err := services.BuildFiscalAttributions(res.Terms, services.AttributionOptions{Anchor: AnchorPresident})
	if err != nil {
		return nil, fmt.Errorf("failed to attribute fiscal years: %w", err)
	}
	res.Attributions = attributions

	merged, err := services.MergeSeries(res.Deficits, attributions)
	if err != nil {
		return nil, fmt.Errorf("failed to merge deficit series: %w", err)
	}
	res.Merged = merged
	res.Averages = services.AverageByPresident(merged)
	res.Palette = services.AssignPalette(merged)

	logger.WithFields(log.Fields{
		"fiscal_years": len(merged),
		"presidents":   len(res.Palette.Presidents()),
	}).Info("run ends")
	return res, nil
}

// loadInputs reads the deficit series, then the presidential terms. Warnings
// therefore come out in file order: deficit rows first.
func loadInputs(ctx context.Context, loader SeriesLoader, res *Result) error {
	defer services.TrackTime("load", time.Now())

	deficits, err := loader.LoadDeficitSeries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deficit series: %w", err)
	}
	res.Deficits = deficits

	terms, err := loader.LoadPresidentTerms(ctx)
	if err != nil {
		return fmt.Errorf("failed to load presidential terms: %w", err)
	}
	res.Terms = terms
	return nil
}
