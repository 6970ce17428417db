package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		gt.Equal(t, ParseLevel(in), want)
	}
}

func TestNewJSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", FormatAuto, &buf)

	logger.Debug("hidden")
	logger.Info("export finished", "date", "2025-01-15", "pages", 4)

	var rec map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &rec)).Required()
	gt.Equal(t, rec["msg"], any("export finished"))
	gt.Equal(t, rec["date"], any("2025-01-15"))
	gt.Equal(t, rec["pages"], any(float64(4)))
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", FormatConsole, &buf)
	logger.Debug("rendering report", "clusters", 3)

	gt.True(t, bytes.Contains(buf.Bytes(), []byte("rendering report")))
}
