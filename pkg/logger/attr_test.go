package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swindon/laravel-helpers/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("input", slog.Int("length", 3), slog.String("policy", "ugc"))
	require.Equal(t, "input", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "length", g[0].Key)
	assert.Equal(t, "policy", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{attr: logger.Component("sanitizer"), key: "component", want: "sanitizer"},
		{attr: logger.Command("strkit uuid5"), key: "command", want: "strkit uuid5"},
		{attr: logger.Policy("strict"), key: "policy", want: "strict"},
		{attr: logger.Score(0.5), key: "score", want: 0.5},
		{attr: logger.InputLength(42), key: "input_length", want: int64(42)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.want, tt.attr.Value.Any())
	}
}
