// Package app wires configuration into the site and its HTTP router. Both
// the server and the static generator build on it.
package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"summitcare.com.au/web/internal/cms"
	"summitcare.com.au/web/internal/config"
	"summitcare.com.au/web/internal/handlers"
	"summitcare.com.au/web/internal/i18n"
	"summitcare.com.au/web/internal/locations"
	mw "summitcare.com.au/web/internal/middleware"
	"summitcare.com.au/web/internal/pages"
	"summitcare.com.au/web/internal/ui"
)

// NewSite builds the page context from cfg.
func NewSite(cfg *config.Config, logger *zap.Logger) (*pages.Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.Default()
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}

	table, err := loadLocations(cfg.Web.LocationsFile)
	if err != nil {
		return nil, err
	}

	client := cms.NewClient(cfg.Web.CMSBaseURL)
	client.SetContentDir(cfg.Web.ContentDir)
	client.SetCacheTTL(cfg.Web.CMSCacheTTL)
	client.SetLogger(logger.Named("cms"))

	ui.InitEffectStyles()

	return &pages.Site{
		Brand: pages.Brand{
			Name:    cfg.Web.BrandName,
			Phone:   cfg.Web.Phone,
			Email:   cfg.Web.Email,
			LogoURL: cfg.Web.BaseURL + "/assets/img/logo.png",
			Region:  "NSW",
			Country: "AU",
		},
		BaseURL:   cfg.Web.BaseURL,
		Locations: table,
		CMS:       client,
		Bundle:    bundle,
		Analytics: pages.Analytics{
			GA4MeasurementID: cfg.Web.GA4MeasurementID,
			GTMContainerID:   cfg.Web.GTMContainerID,
			Debug:            cfg.Web.AnalyticsDebug,
		},
	}, nil
}

func loadLocations(file string) (*locations.Table, error) {
	if file == "" {
		t, err := locations.Default()
		if err != nil {
			return nil, fmt.Errorf("load locations: %w", err)
		}
		return t, nil
	}
	t, err := locations.LoadFile(file)
	if err != nil {
		return nil, fmt.Errorf("load locations %s: %w", file, err)
	}
	return t, nil
}

// Router returns the HTTP handler serving site.
func Router(site *pages.Site, publicDir string, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(logger.Named("http")))
	r.Use(mw.Locale(site.Bundle))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	handlers.New(site, publicDir).Mount(r)
	return r
}
