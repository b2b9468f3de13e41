package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/epeers/deficits/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newFixtureServer(t *testing.T, status int) *fixtureServer {
	t.Helper()
	deficit, err := os.ReadFile("testdata/deficit.csv")
	require.NoError(t, err)
	presidents, err := os.ReadFile("testdata/presidents.csv")
	require.NoError(t, err)

	fs := &fixtureServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		switch r.URL.Path {
		case "/deficit":
			w.Write(deficit)
		case "/presidents":
			w.Write(presidents)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func testLoaderConfig(baseURL string) LoaderConfig {
	return LoaderConfig{
		Deficit:       Source{Name: "deficit", URL: baseURL + "/deficit", CacheFile: "deficit.csv"},
		Presidents:    Source{Name: "presidents", URL: baseURL + "/presidents", CacheFile: "presidents.csv"},
		MaxFiscalYear: 2010,
		LeftOfficeOverrides: map[string]time.Time{
			"Barack Obama": time.Date(2017, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestLoader_FetchesOnceThenUsesCache(t *testing.T) {
	srv := newFixtureServer(t, http.StatusOK)
	dir := t.TempDir()
	cfg := testLoaderConfig(srv.URL)
	ctx := context.Background()

	fresh, err := NewLoader(NewClient(), cache.NewFileCache(dir), cfg).LoadDeficitSeries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())

	served, err := os.ReadFile("testdata/deficit.csv")
	require.NoError(t, err)
	stored, err := os.ReadFile(filepath.Join(dir, "deficit.csv"))
	require.NoError(t, err)
	assert.Equal(t, served, stored, "raw response is persisted verbatim")

	// a new loader over the same directory must not touch the network
	cached, err := NewLoader(NewClient(), cache.NewFileCache(dir), cfg).LoadDeficitSeries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())
	assert.Equal(t, fresh, cached)

	direct, err := ParseDeficitCSV(ctx, served, 2010)
	require.NoError(t, err)
	assert.Equal(t, direct, cached)
}

func TestLoader_PresidentTermsWithOverride(t *testing.T) {
	srv := newFixtureServer(t, http.StatusOK)
	loader := NewLoader(NewClient(), cache.NewFileCache(t.TempDir()), testLoaderConfig(srv.URL))

	terms, err := loader.LoadPresidentTerms(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 11)

	obama := terms[len(terms)-1]
	require.NotNil(t, obama.LeftOffice)
	assert.Equal(t, time.Date(2017, 1, 20, 0, 0, 0, 0, time.UTC), *obama.LeftOffice)
}

func TestLoader_SourceFetchError(t *testing.T) {
	srv := newFixtureServer(t, http.StatusServiceUnavailable)
	dir := t.TempDir()
	loader := NewLoader(NewClient(), cache.NewFileCache(dir), testLoaderConfig(srv.URL))

	_, err := loader.LoadDeficitSeries(context.Background())
	require.Error(t, err)

	var fetchErr *SourceFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Equal(t, "deficit", fetchErr.Source)

	assert.NoFileExists(t, filepath.Join(dir, "deficit.csv"), "failed fetches are not cached")
	assert.Equal(t, int32(1), srv.hits.Load(), "no retry")
}

func TestClient_Fetch(t *testing.T) {
	srv := newFixtureServer(t, http.StatusOK)
	client := NewClientWithHTTPClient(srv.Client())

	body, err := client.Fetch(context.Background(), Source{Name: "presidents", URL: srv.URL + "/presidents"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "Barack Obama")

	_, err = client.Fetch(context.Background(), Source{Name: "missing", URL: srv.URL + "/missing"})
	var fetchErr *SourceFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}
