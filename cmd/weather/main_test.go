package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/weather-overview/internal/config"
	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/couchcryptid/weather-overview/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.csv")
	content := "date,min,max\n2021-07-06,59,86\n2021-07-07,57,90\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_PrintsOverviewThenDaily(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{path: writeData(t), overview: true, daily: true}, discardLogger())
	require.NoError(t, err)

	want := "2 Day Overview\n" +
		"  The lowest temperature will be 13.9°C, and will occur on Wednesday 07 July 2021.\n" +
		"  The highest temperature will be 32.2°C, and will occur on Wednesday 07 July 2021.\n" +
		"  The average low this week is 14.4°C.\n" +
		"  The average high this week is 31.1°C.\n" +
		"\n" +
		"---- Tuesday 06 July 2021 ----\n" +
		"  Minimum Temperature: 15.0°C\n" +
		"  Maximum Temperature: 30.0°C\n" +
		"\n" +
		"---- Wednesday 07 July 2021 ----\n" +
		"  Minimum Temperature: 13.9°C\n" +
		"  Maximum Temperature: 32.2°C\n" +
		"\n"
	assert.Equal(t, want, out.String())
}

func TestRun_DailyOnly(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{path: writeData(t), daily: true}, discardLogger())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Day Overview")
	assert.Contains(t, out.String(), "---- Tuesday 06 July 2021 ----")
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{path: filepath.Join(t.TempDir(), "nope.csv"), overview: true}, discardLogger())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_JSONLogsGoToWriter(t *testing.T) {
	var out, logs bytes.Buffer
	logger := observability.NewWriterLogger(&logs, &config.Config{LogLevel: "debug", LogFormat: "json"})

	require.NoError(t, run(&out, options{path: writeData(t), overview: true}, logger))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &rec))
	assert.Equal(t, "table loaded", rec["msg"])
	assert.InDelta(t, 2, rec["rows"], 0)
	assert.Contains(t, out.String(), "2 Day Overview")
	assert.NotContains(t, out.String(), "table loaded")
}
