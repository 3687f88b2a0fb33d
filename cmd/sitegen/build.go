package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, logger, err := opts.builder()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			report, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("built %d pages (%d locations) into %s\n", len(report.Pages), len(report.Locations), opts.Out)
			logger.Debug("build report", zap.Strings("pages", report.Pages))
			return nil
		},
	}
}
