package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should reject an unknown level", func(t *testing.T) {
		_, err := New(Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("should write json records to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fooddash.log")
		log, err := New(Options{Level: "info", File: path})
		require.NoError(t, err)
		log.Debug("hidden")
		log.Info("dataset cleaned")
		_ = log.Sync()

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(b)), "\n")
		require.Len(t, lines, 1)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
		assert.Equal(t, "info", rec["level"])
		assert.Equal(t, "dataset cleaned", rec["msg"])
	})

	t.Run("should build a console logger", func(t *testing.T) {
		log, err := New(Options{Level: "debug", Pretty: true})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(-1))
	})
}
