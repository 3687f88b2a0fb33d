package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"summitcare.com.au/web/internal/app"
	"summitcare.com.au/web/internal/config"
	"summitcare.com.au/web/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr(), "HTTP listen address")
	flag.StringVar(&cfg.Web.PublicDir, "public", cfg.Web.PublicDir, "public assets directory")
	flag.StringVar(&cfg.Web.ContentDir, "content", cfg.Web.ContentDir, "markdown content directory")
	flag.StringVar(&cfg.Web.LocationsFile, "locations", cfg.Web.LocationsFile, "locations YAML file (default: built in)")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	site, err := app.NewSite(cfg, logger)
	if err != nil {
		return err
	}

	handler := app.Router(site, cfg.Web.PublicDir, logger)
	if cfg.Web.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Web.ReadTimeout,
		WriteTimeout:      cfg.Web.WriteTimeout,
		IdleTimeout:       cfg.Web.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverLogger := logger.Named("http").With(zap.String("addr", addr))
	errCh := make(chan error, 1)
	go func() {
		serverLogger.Info("web listening", zap.Int("locations", site.Locations.Len()), zap.Bool("h2c", cfg.Web.H2C))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
