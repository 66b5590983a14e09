package strutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swindon/laravel-helpers/pkg/strutil"
)

func TestUUID5(t *testing.T) {
	t.Parallel()

	t.Run("known value in DNS namespace", func(t *testing.T) {
		t.Parallel()

		id, err := strutil.UUID5("python.org", "")
		require.NoError(t, err)
		assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d", id)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a, err := strutil.UUID5("example", uuid.NameSpaceURL.String())
		require.NoError(t, err)
		b, err := strutil.UUID5("example", "url")
		require.NoError(t, err)
		assert.Equal(t, a, b)

		parsed, err := uuid.Parse(a)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(5), parsed.Version())
	})

	t.Run("namespace changes the result", func(t *testing.T) {
		t.Parallel()

		dns := strutil.MustUUID5("example", "dns")
		url := strutil.MustUUID5("example", "url")
		assert.NotEqual(t, dns, url)
	})

	t.Run("invalid namespace", func(t *testing.T) {
		t.Parallel()

		_, err := strutil.UUID5("example", "not-a-namespace")
		require.Error(t, err)
		assert.ErrorIs(t, err, strutil.ErrInvalidNamespace)

		assert.Panics(t, func() { strutil.MustUUID5("example", "nope") })
	})
}

func TestNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected uuid.UUID
	}{
		{input: "", expected: uuid.NameSpaceDNS},
		{input: "DNS", expected: uuid.NameSpaceDNS},
		{input: "url", expected: uuid.NameSpaceURL},
		{input: "oid", expected: uuid.NameSpaceOID},
		{input: " x500 ", expected: uuid.NameSpaceX500},
		{input: "6ba7b811-9dad-11d1-80b4-00c04fd430c8", expected: uuid.NameSpaceURL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			ns, err := strutil.Namespace(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ns)
		})
	}
}
