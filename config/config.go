package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the verification service
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Headlines HeadlinesConfig `mapstructure:"headlines"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ProvidersConfig groups the evidence provider settings
type ProvidersConfig struct {
	GNews      GNewsConfig      `mapstructure:"gnews"`
	FactCheck  FactCheckConfig  `mapstructure:"factcheck"`
	DuckDuckGo DuckDuckGoConfig `mapstructure:"duckduckgo"`
}

// GNewsConfig contains GNews API settings. An empty APIKey disables the
// provider without error.
type GNewsConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	Endpoint   string        `mapstructure:"endpoint"`
	MaxResults int           `mapstructure:"max_results"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// FactCheckConfig contains Google Fact Check Tools API settings. An empty
// APIKey disables the provider without error.
type FactCheckConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Endpoint string        `mapstructure:"endpoint"`
	PageSize int           `mapstructure:"page_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// DuckDuckGoConfig contains settings for the keyless web search provider
type DuckDuckGoConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	MaxResults int           `mapstructure:"max_results"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// RatePerMinute caps outgoing requests; DuckDuckGo throttles hard.
	RatePerMinute int `mapstructure:"rate_per_minute"`
}

// HeadlinesConfig controls the live headlines endpoint
type HeadlinesConfig struct {
	Categories []string          `mapstructure:"categories"`
	Feeds      map[string]string `mapstructure:"feeds"`
	Timeout    time.Duration     `mapstructure:"timeout"`
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

func (t TelemetryConfig) Validate() error {
	if t.Enabled && t.MetricsPort < 0 {
		return fmt.Errorf("telemetry.metrics_port cannot be negative")
	}
	return nil
}

func (p ProvidersConfig) Validate() error {
	if p.GNews.MaxResults < 0 {
		return fmt.Errorf("providers.gnews.max_results cannot be negative")
	}
	if p.FactCheck.PageSize < 0 {
		return fmt.Errorf("providers.factcheck.page_size cannot be negative")
	}
	if p.DuckDuckGo.MaxResults < 0 {
		return fmt.Errorf("providers.duckduckgo.max_results cannot be negative")
	}
	return nil
}

// Normalize applies defaults for unset provider values.
func (p ProvidersConfig) Normalize() ProvidersConfig {
	if p.GNews.Endpoint == "" {
		p.GNews.Endpoint = "https://gnews.io/api/v4"
	}
	if p.GNews.MaxResults == 0 {
		p.GNews.MaxResults = 10
	}
	if p.GNews.Timeout <= 0 {
		p.GNews.Timeout = 10 * time.Second
	}
	if p.FactCheck.Endpoint == "" {
		p.FactCheck.Endpoint = "https://factchecktools.googleapis.com/v1alpha1/claims:search"
	}
	if p.FactCheck.PageSize == 0 {
		p.FactCheck.PageSize = 10
	}
	if p.FactCheck.Timeout <= 0 {
		p.FactCheck.Timeout = 10 * time.Second
	}
	if p.DuckDuckGo.Endpoint == "" {
		p.DuckDuckGo.Endpoint = "https://html.duckduckgo.com/html/"
	}
	if p.DuckDuckGo.MaxResults == 0 {
		p.DuckDuckGo.MaxResults = 8
	}
	if p.DuckDuckGo.Timeout <= 0 {
		p.DuckDuckGo.Timeout = 8 * time.Second
	}
	if p.DuckDuckGo.RatePerMinute <= 0 {
		p.DuckDuckGo.RatePerMinute = 20
	}
	return p
}

// Normalize applies defaults for unset headline values.
func (h HeadlinesConfig) Normalize() HeadlinesConfig {
	if len(h.Categories) == 0 {
		h.Categories = []string{"politics", "technology", "business", "entertainment", "world"}
	}
	if h.Timeout <= 0 {
		h.Timeout = 8 * time.Second
	}
	return h
}

// LoadConfig loads config from file, falling back to defaults plus
// CROSSCHECK_* environment variables when no file is present.
func LoadConfig(path string) *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetDefault("general.log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("telemetry.enabled", true)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("CROSSCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only walks keys viper already knows about, so every key that
	// may arrive via environment alone must be bound explicitly. Credentials
	// in particular never appear in config files.
	for _, key := range []string{
		"general.debug",
		"general.log_level",
		"providers.gnews.api_key",
		"providers.gnews.endpoint",
		"providers.gnews.max_results",
		"providers.gnews.timeout",
		"providers.factcheck.api_key",
		"providers.factcheck.endpoint",
		"providers.factcheck.page_size",
		"providers.factcheck.timeout",
		"providers.duckduckgo.endpoint",
		"providers.duckduckgo.max_results",
		"providers.duckduckgo.timeout",
		"providers.duckduckgo.rate_per_minute",
		"headlines.timeout",
	} {
		_ = v.BindEnv(key)
	}

	// Credentials usually arrive via env only, no config file required.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	cfg.Providers = cfg.Providers.Normalize()
	cfg.Headlines = cfg.Headlines.Normalize()

	if err := cfg.Providers.Validate(); err != nil {
		panic(err)
	}
	if err := cfg.Telemetry.Validate(); err != nil {
		panic(err)
	}
	return &cfg
}
