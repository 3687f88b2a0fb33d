package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"summitcare.com.au/web/internal/app"
	"summitcare.com.au/web/internal/config"
	"summitcare.com.au/web/internal/observability"
	"summitcare.com.au/web/internal/pages"
	"summitcare.com.au/web/internal/sitegen"
)

// options are the generator settings, read from flags, SUMMIT_SITEGEN_*
// variables and sitegen.yaml in that order of precedence.
type options struct {
	Out       string        `mapstructure:"out"`
	Public    string        `mapstructure:"public"`
	Content   string        `mapstructure:"content"`
	Locations string        `mapstructure:"locations"`
	BaseURL   string        `mapstructure:"base-url"`
	Lang      string        `mapstructure:"lang"`
	LogLevel  string        `mapstructure:"log-level"`
	Addr      string        `mapstructure:"addr"`
	Debounce  time.Duration `mapstructure:"debounce"`
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	opts := &options{}

	root := &cobra.Command{
		Use:           "sitegen",
		Short:         "Build the Summit Care site as static HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadOptions(cmd, cfgFile, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./sitegen.yaml)")
	flags.String("out", "dist", "output directory")
	flags.String("public", "public", "static files copied into the output")
	flags.String("content", "content", "markdown content directory")
	flags.String("locations", "", "locations YAML file (default: built in)")
	flags.String("base-url", "", "absolute site URL used for canonical links and the sitemap")
	flags.String("lang", "en", "language to render")
	flags.String("log-level", "info", "log level")

	root.AddCommand(newBuildCmd(opts), newServeCmd(opts))
	return root
}

func loadOptions(cmd *cobra.Command, cfgFile string, opts *options) error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sitegen")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SUMMIT_SITEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return v.Unmarshal(opts)
}

// builder loads the site the same way the server does, with opts layered
// over the SUMMIT_WEB_* environment. Every Build reloads content and the
// locations file.
func (o *options) builder() (*sitegen.Builder, *zap.Logger, error) {
	logger, err := observability.NewLogger(o.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, nil, err
	}
	cfg.Web.ContentDir = o.Content
	cfg.Web.PublicDir = o.Public
	if o.Locations != "" {
		cfg.Web.LocationsFile = o.Locations
	}
	if o.BaseURL != "" {
		cfg.Web.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}

	return &sitegen.Builder{
		OutDir:    o.Out,
		PublicDir: o.Public,
		Lang:      o.Lang,
		Logger:    logger.Named("sitegen"),
		Load: func() (*pages.Site, error) {
			return app.NewSite(cfg, logger)
		},
	}, logger, nil
}
