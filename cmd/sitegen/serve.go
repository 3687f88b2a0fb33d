package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"summitcare.com.au/web/internal/sitegen"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build, serve the output locally and rebuild on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("addr", ":1313", "listen address")
	cmd.Flags().Duration("debounce", 300*time.Millisecond, "quiet period before a rebuild")
	return cmd
}

func serve(parent context.Context, opts *options) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, logger, err := opts.builder()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if _, err := b.Build(ctx); err != nil {
		return err
	}

	watchDirs := []string{opts.Content, opts.Public}
	if opts.Locations != "" {
		watchDirs = append(watchDirs, filepath.Dir(opts.Locations))
	}
	w, err := sitegen.NewWatcher(logger.Named("watch"), watchDirs...)
	if err != nil {
		return err
	}
	go func() {
		_ = w.Run(ctx, opts.Debounce, func() {
			if _, err := b.Build(ctx); err != nil {
				logger.Error("rebuild failed", zap.Error(err))
				return
			}
			logger.Info("site rebuilt")
		})
	}()

	files := http.FileServer(http.Dir(b.OutDir))
	srv := &http.Server{
		Addr:              opts.Addr,
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			files.ServeHTTP(w, r)
		}),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving", zap.String("addr", opts.Addr), zap.String("dir", b.OutDir))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
