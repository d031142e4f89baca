package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/couchcryptid/weather-overview/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})

	logger.Debug("hidden")
	logger.Info("report generated", "days", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "report generated", rec["msg"])
	assert.Equal(t, "weather-overview", rec["service"])
	assert.InDelta(t, 2, rec["days"], 0)
}

func TestNewWriterLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, &config.Config{LogLevel: "debug", LogFormat: "text"})

	logger.Debug("loading table", "path", "weather.csv")

	out := buf.String()
	assert.Contains(t, out, "loading table")
	assert.Contains(t, out, "weather.csv")
	assert.NotContains(t, out, `"msg"`)
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, format := range []string{"json", "text"} {
		t.Run(format, func(t *testing.T) {
			logger := NewLogger(&config.Config{LogLevel: "warn", LogFormat: format})
			require.NotNil(t, logger)
			assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
			assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
		})
	}
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelOf("debug"))
	assert.Equal(t, slog.LevelInfo, levelOf("info"))
	assert.Equal(t, slog.LevelWarn, levelOf("warn"))
	assert.Equal(t, slog.LevelError, levelOf("error"))
	assert.Equal(t, slog.LevelInfo, levelOf("bogus"))
}

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()
	require.NotNil(t, m.TableCache)
	m.ReportsGenerated.Inc()
	m.TableCache.WithLabelValues("hit").Inc()
}
