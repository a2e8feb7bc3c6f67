// Package config loads application configuration from an optional yaml file
// and FACULTY_-prefixed environment variables, and owns global logger setup.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Fetch   FetchConfig   `yaml:"fetch" mapstructure:"fetch"`
	Browser BrowserConfig `yaml:"browser" mapstructure:"browser"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// FetchConfig controls the static HTTP fetcher.
type FetchConfig struct {
	TimeoutSecs       int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MinDelaySecs      float64 `yaml:"min_delay_secs" mapstructure:"min_delay_secs"`
	MaxDelaySecs      float64 `yaml:"max_delay_secs" mapstructure:"max_delay_secs"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// BrowserConfig controls the headless-browser fetcher.
type BrowserConfig struct {
	SettleDelaySecs     int `yaml:"settle_delay_secs" mapstructure:"settle_delay_secs"`
	SelectorTimeoutSecs int `yaml:"selector_timeout_secs" mapstructure:"selector_timeout_secs"`
}

// CacheConfig controls the sqlite page cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Path     string `yaml:"path" mapstructure:"path"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// TTL returns the cache lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// OutputConfig controls where run results are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServerConfig configures the read-only records API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FACULTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("fetch.timeout_secs", 15)
	v.SetDefault("fetch.min_delay_secs", 1.0)
	v.SetDefault("fetch.max_delay_secs", 3.0)
	v.SetDefault("fetch.requests_per_second", 1.0)
	v.SetDefault("browser.settle_delay_secs", 2)
	v.SetDefault("browser.selector_timeout_secs", 15)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "page_cache.db")
	v.SetDefault("cache.ttl_hours", 24)
	v.SetDefault("output.dir", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks mode-specific configuration invariants before a command
// starts work.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "run":
		if c.Fetch.TimeoutSecs <= 0 {
			problems = append(problems, "fetch.timeout_secs must be > 0")
		}
		if c.Fetch.MinDelaySecs < 0 || c.Fetch.MaxDelaySecs < c.Fetch.MinDelaySecs {
			problems = append(problems, "fetch delay range is invalid")
		}
		if c.Cache.Enabled && c.Cache.TTLHours <= 0 {
			problems = append(problems, "cache.ttl_hours must be > 0 when cache is enabled")
		}
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
