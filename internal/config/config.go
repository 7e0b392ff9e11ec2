// Package config loads commuteplot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. COMMUTEPLOT_OUTPUT_DIR.
const EnvPrefix = "commuteplot"

// Config holds the environment-provided defaults. Command-line flags
// override them.
type Config struct {
	// OutputDir is the directory the charts are written to.
	OutputDir string `split_words:"true" default:"." validate:"required"`

	// DPI is the raster resolution of the charts.
	DPI float64 `default:"300" validate:"gte=72,lte=600"`

	// ShowTitles draws the chart titles.
	ShowTitles bool `split_words:"true"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `split_words:"true" default:"info" validate:"oneof=trace debug info warn error"`

	// LogJSON writes JSON log lines instead of pretty console output.
	LogJSON bool `split_words:"true"`

	// DevMode forces trace logging.
	DevMode bool `split_words:"true"`
}

// Parse loads envFile when it exists, then reads and validates the
// environment.
func Parse(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
