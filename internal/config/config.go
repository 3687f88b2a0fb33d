// Package config loads web server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config holds all web server configuration.
type Config struct {
	Web WebConfig `envPrefix:"SUMMIT_WEB_"`

	// CloudRunPort is the platform-provided PORT, used when SUMMIT_WEB_PORT is unset.
	CloudRunPort string `env:"PORT"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// WebConfig holds the SUMMIT_WEB_* settings.
type WebConfig struct {
	Port          string        `env:"PORT"`
	BaseURL       string        `env:"BASE_URL" envDefault:"https://www.summitcare.com.au"`
	ContentDir    string        `env:"CONTENT_DIR" envDefault:"content"`
	PublicDir     string        `env:"PUBLIC_DIR" envDefault:"public"`
	LocationsFile string        `env:"LOCATIONS_FILE"`
	CMSBaseURL    string        `env:"CMS_BASE_URL"`
	CMSCacheTTL   time.Duration `env:"CMS_CACHE_TTL" envDefault:"5m"`
	H2C           bool          `env:"H2C" envDefault:"false"`

	BrandName string `env:"BRAND_NAME" envDefault:"Summit Care"`
	Phone     string `env:"PHONE" envDefault:"1300 786 648"`
	Email     string `env:"EMAIL" envDefault:"intake@summitcare.com.au"`

	GA4MeasurementID string `env:"GA_MEASUREMENT_ID"`
	GTMContainerID   string `env:"GTM_CONTAINER_ID"`
	AnalyticsDebug   bool   `env:"ANALYTICS_DEBUG"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the given dotenv files, if present, then parses the environment.
// Variables already set in the environment win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Web.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Web.BaseURL), "/")
	return cfg, nil
}

// Port resolves SUMMIT_WEB_PORT, then PORT, then 8080.
func (c *Config) Port() string {
	for _, p := range []string{c.Web.Port, c.CloudRunPort} {
		if p = strings.TrimSpace(p); p != "" {
			return p
		}
	}
	return defaultPort
}

// Addr is the listen address for Port.
func (c *Config) Addr() string { return ":" + c.Port() }
