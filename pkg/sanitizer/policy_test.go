package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swindon/laravel-helpers/pkg/sanitizer"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected sanitizer.Policy
	}{
		{input: "regex", expected: sanitizer.PolicyRegex},
		{input: "STRICT", expected: sanitizer.PolicyStrict},
		{input: " ugc ", expected: sanitizer.PolicyUGC},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			p, err := sanitizer.ParsePolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	t.Run("unknown policy", func(t *testing.T) {
		t.Parallel()

		_, err := sanitizer.ParsePolicy("lenient")
		require.Error(t, err)
		assert.ErrorIs(t, err, sanitizer.ErrUnknownPolicy)
	})
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	input := `<b>Hello</b><iframe src="evil"></iframe>`

	assert.Equal(t, "<b>Hello</b>", sanitizer.Sanitize(sanitizer.PolicyRegex, input))
	assert.Equal(t, "Hello", sanitizer.Sanitize(sanitizer.PolicyStrict, input))
	assert.Equal(t, "<b>Hello</b>", sanitizer.Sanitize(sanitizer.PolicyUGC, input))
	assert.Equal(t, "Hello", sanitizer.Sanitize(sanitizer.Policy("other"), input))
}

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "removes formatting", input: "<b>Hello</b> <i>World</i>", expected: "Hello World"},
		{name: "removes script with content", input: "<script>alert(1)</script>Hello", expected: "Hello"},
		{name: "keeps plain text", input: "plain text", expected: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestUGC(t *testing.T) {
	t.Parallel()

	t.Run("keeps safe formatting", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<p><b>bold</b> text</p>", sanitizer.UGC("<p><b>bold</b> text</p>"))
	})

	t.Run("drops event handlers from links", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.UGC(`<a href="http://example.com" onclick="evil()">link</a>`)
		assert.NotContains(t, result, "onclick")
		assert.Contains(t, result, `href="http://example.com"`)
		assert.Contains(t, result, "link</a>")
	})

	t.Run("drops javascript links", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.UGC(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, result, "javascript")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, sanitizer.UGC(""))
	})
}
