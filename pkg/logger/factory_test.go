package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swindon/laravel-helpers/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("nil output keeps default", func(t *testing.T) {
		assert.NotNil(t, logger.New(logger.WithOutput(nil)))
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithContextValue(t *testing.T) {
	type key struct{}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("command", key{}),
		logger.WithContextValue("", key{}),
		logger.WithContextValue("ignored", nil),
	)

	log.InfoContext(context.WithValue(context.Background(), key{}, "strkit sanitize"), "run")
	entry := decode(t, buf)
	assert.Equal(t, "strkit sanitize", entry["command"])
	assert.NotContains(t, entry, "ignored")

	buf.Reset()
	log.InfoContext(context.Background(), "run")
	assert.NotContains(t, decode(t, buf), "command")
}

func TestWithContextExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, func(context.Context) (slog.Attr, bool) {
			return slog.Int("n", 7), true
		}),
	)

	log.With("static", true).WithGroup("g").Info("msg", "inner", 1)
	entry := decode(t, buf)
	assert.Equal(t, true, entry["static"])
	group, ok := entry["g"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1, group["inner"], 0)
	assert.InDelta(t, 7, group["n"], 0)
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		expected string
		json     bool
		debug    bool
	}{
		{env: "production", expected: "production", json: true},
		{env: "PROD", expected: "production", json: true},
		{env: "testing", expected: "testing", debug: true},
		{env: "development", expected: "development", debug: true},
		{env: "", expected: "development", debug: true},
		{env: "anything", expected: "development", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "strkit"), logger.WithOutput(buf))
			log.Debug("debug")

			if !tt.debug {
				assert.Empty(t, buf.String())
				log.Info("info")
			}

			out := buf.String()
			if tt.json {
				entry := decode(t, buf)
				assert.Equal(t, tt.expected, entry["env"])
				assert.Equal(t, "strkit", entry["service"])
				return
			}
			assert.Contains(t, out, "env="+tt.expected)
			assert.Contains(t, out, "service=strkit")
			assert.Contains(t, out, "level=DEBUG")
		})
	}

	t.Run("level override after preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("development", ""),
			logger.WithLevel(slog.LevelError),
			logger.WithOutput(buf),
		)
		log.Warn("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: " Warning ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
	}

	for _, tt := range tests {
		level, err := logger.ParseLevel(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, level)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}
