// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds every setting of the fooddash tool.
type Config struct {
	DatasetPath      string   `env:"DATASET_PATH" envDefault:"dataset/zomato.csv" validate:"required"`
	DatasetSeparator string   `env:"DATASET_SEPARATOR" envDefault:"," validate:"len=1"`
	OutputDir        string   `env:"OUTPUT_DIR" envDefault:"outputs" validate:"required"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile          string   `env:"LOG_FILE"`
	PrettyLogs       bool     `env:"PRETTY_LOGS" envDefault:"false"`
	CacheSize        int      `env:"CACHE_SIZE" envDefault:"4" validate:"min=1"`
	TopN             int      `env:"TOP_N" envDefault:"20" validate:"min=0,max=20"`
	CityChartSize    int      `env:"CITY_CHART_SIZE" envDefault:"10" validate:"min=0,max=20"`
	FeaturedCuisines []string `env:"FEATURED_CUISINES" envDefault:"Italian,American,Arabian,Japanese,Home-made" envSeparator:","`
}

// Load reads the given env files, or .env when none are given, then parses
// and validates the environment. Missing env files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Separator returns the dataset delimiter as a rune.
func (c *Config) Separator() rune {
	r, _ := utf8.DecodeRuneInString(c.DatasetSeparator)
	return r
}
