package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/ledgible/renderer"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands.
type Config struct {
	Context   int    // unchanged lines shown around a change by check
	Color     string // auto, always or never
	LogLevel  string
	LogFormat string
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// LoadConfig reads the config file, the environment and a .env file from the
// current directory if any. path may be empty to search the default locations.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("context", 3)
	v.SetDefault("color", colorAuto)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ledgible")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ledgible"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Context:   v.GetInt("context"),
		Color:     v.GetString("color"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values of the config.
func (c *Config) Validate() error {
	if c.Context < 0 {
		return fmt.Errorf("invalid context %d: must be positive or zero", c.Context)
	}
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	return nil
}

// settings loads the config, applies the global flags and sets up logging.
// Every command calls it first.
func settings() (*Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := setupLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColor forces or keeps the color capability of a sink according to a
// color setting.
func applyColor(sink renderer.Sink, color string) renderer.Sink {
	switch color {
	case colorAlways:
		return renderer.WithColor(sink, true)
	case colorNever:
		return renderer.WithColor(sink, false)
	default:
		return sink
	}
}
