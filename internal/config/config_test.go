package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"DATASET_PATH", "DATASET_SEPARATOR", "OUTPUT_DIR", "LOG_LEVEL", "LOG_FILE",
	"PRETTY_LOGS", "CACHE_SIZE", "TOP_N", "CITY_CHART_SIZE", "FEATURED_CUISINES",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "dataset/zomato.csv", cfg.DatasetPath)
		assert.Equal(t, ',', cfg.Separator())
		assert.Equal(t, "outputs", cfg.OutputDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.PrettyLogs)
		assert.Equal(t, 4, cfg.CacheSize)
		assert.Equal(t, 20, cfg.TopN)
		assert.Equal(t, 10, cfg.CityChartSize)
		assert.Equal(t, []string{"Italian", "American", "Arabian", "Japanese", "Home-made"}, cfg.FeaturedCuisines)
	})

	t.Run("should read an env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DATASET_SEPARATOR=;\nTOP_N=5\nFEATURED_CUISINES=Cafe,Sushi\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ';', cfg.Separator())
		assert.Equal(t, 5, cfg.TopN)
		assert.Equal(t, []string{"Cafe", "Sushi"}, cfg.FeaturedCuisines)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TOP_N", "21")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "invalid config")

		t.Setenv("TOP_N", "3")
		t.Setenv("LOG_LEVEL", "verbose")
		_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})

	t.Run("should reject non numeric values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CACHE_SIZE", "many")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "parse env")
	})
}
