package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"summitcare.com.au/web/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("SUMMIT_WEB_CONTENT_DIR", "../../content")
	t.Setenv("SUMMIT_WEB_PUBLIC_DIR", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewSiteUsesBuiltInLocations(t *testing.T) {
	cfg := testConfig(t)
	site, err := NewSite(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, "Summit Care", site.Brand.Name)
	require.Equal(t, "https://www.summitcare.com.au", site.BaseURL)
	require.Positive(t, site.Locations.Len())
	require.Equal(t, "../../content", site.CMS.ContentDir())
}

func TestNewSiteLocationsFile(t *testing.T) {
	cfg := testConfig(t)
	file := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(file, []byte("locations:\n  - slug: katoomba\n    name: Katoomba\n"), 0o644))
	cfg.Web.LocationsFile = file

	site, err := NewSite(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"katoomba"}, site.Locations.Slugs())

	cfg.Web.LocationsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewSite(cfg, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRouterServesPages(t *testing.T) {
	cfg := testConfig(t)
	site, err := NewSite(cfg, nil)
	require.NoError(t, err)
	srv := Router(site, cfg.Web.PublicDir, zaptest.NewLogger(t))

	for path, want := range map[string]int{
		"/healthz":            http.StatusOK,
		"/":                   http.StatusOK,
		"/sil/parramatta":     http.StatusOK,
		"/about/about-summit": http.StatusOK,
		"/assets/effects.css": http.StatusOK,
		"/nope/nope/nope":     http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, want, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
