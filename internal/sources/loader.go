package sources

import (
	"context"
	"fmt"

	"github.com/epeers/deficits/internal/cache"
	"github.com/epeers/deficits/internal/models"
	log "github.com/sirupsen/logrus"
)

// Loader provides the two raw series, each backed by a local cache file.
// A missing cache file costs exactly one GET against the source URL, and the
// response is persisted verbatim before it is parsed.
type Loader struct {
	client *Client
	cache  *cache.FileCache
	cfg    LoaderConfig
}

// NewLoader creates a new Loader
func NewLoader(client *Client, fileCache *cache.FileCache, cfg LoaderConfig) *Loader {
	return &Loader{
		client: client,
		cache:  fileCache,
		cfg:    cfg,
	}
}

// LoadDeficitSeries returns the deficit series up to and including the configured cutoff year
func (l *Loader) LoadDeficitSeries(ctx context.Context) ([]models.DeficitRecord, error) {
	raw, err := l.raw(ctx, l.cfg.Deficit)
	if err != nil {
		return nil, err
	}

	records, err := ParseDeficitCSV(ctx, raw, l.cfg.MaxFiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.cfg.Deficit.CacheFile, err)
	}
	log.Debugf("loaded %d deficit rows through FY%d", len(records), l.cfg.MaxFiscalYear)
	return records, nil
}

// LoadPresidentTerms returns the presidential terms in source order with
// left-office overrides applied
func (l *Loader) LoadPresidentTerms(ctx context.Context) ([]models.PresidentTerm, error) {
	raw, err := l.raw(ctx, l.cfg.Presidents)
	if err != nil {
		return nil, err
	}

	terms, err := ParsePresidentsCSV(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.cfg.Presidents.CacheFile, err)
	}
	log.Debugf("loaded %d presidential terms", len(terms))
	return ApplyLeftOfficeOverrides(terms, l.cfg.LeftOfficeOverrides), nil
}

func (l *Loader) raw(ctx context.Context, src Source) ([]byte, error) {
	data, ok, err := l.cache.Get(src.CacheFile)
	if err != nil {
		return nil, err
	}
	if ok {
		log.Debugf("%s served from cache %s", src.Name, l.cache.Path(src.CacheFile))
		return data, nil
	}

	data, err = l.client.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := l.cache.Put(src.CacheFile, data); err != nil {
		return nil, err
	}
	log.Infof("downloaded %s into %s", src.Name, l.cache.Path(src.CacheFile))
	return data, nil
}
