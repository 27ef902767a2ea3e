package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	tkn := ToToken("docs/intro.md")
	assert.NotContains(t, tkn, "docs")

	after, err := FromToken(tkn)
	require.NoError(t, err)
	assert.Equal(t, "docs/intro.md", after)
}

func TestFromToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tkn  string
	}{
		{
			name: "invalid base64",
			tkn:  "not-valid-base64!!!",
		},
		{
			name: "missing prefix",
			tkn:  base64.RawURLEncoding.EncodeToString([]byte("docs/intro.md")),
		},
		{
			name: "empty key",
			tkn:  base64.RawURLEncoding.EncodeToString([]byte(tokenPrefix)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			after, err := FromToken(tt.tkn)
			var tokenErr TokenError
			require.ErrorAs(t, err, &tokenErr)
			require.Error(t, tokenErr.Unwrap())
			assert.Equal(t, "invalid pagination token", err.Error())
			assert.Empty(t, after)
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	items := []string{"a.md", "b.md", "c.md", "d.md", "e.md"}
	key := func(s string) string { return s }

	var (
		pages [][]string
		tkn   string
	)
	for {
		page, next, err := Page(items, key, tkn, 2)
		require.NoError(t, err)
		pages = append(pages, page)
		if next == "" {
			break
		}
		tkn = next
	}
	assert.Equal(t, [][]string{{"a.md", "b.md"}, {"c.md", "d.md"}, {"e.md"}}, pages)
}

func TestPage_Edges(t *testing.T) {
	t.Parallel()

	key := func(s string) string { return s }

	page, next, err := Page([]string{"a", "b"}, key, "", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, page)
	assert.Empty(t, next)

	page, next, err = Page([]string{"a", "b"}, key, ToToken("z"), 5)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Empty(t, next)

	// Removed items do not break a token.
	page, _, err = Page([]string{"a", "c"}, key, ToToken("b"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, page)

	_, _, err = Page([]string{"a"}, key, "!!", 5)
	require.ErrorAs(t, err, &TokenError{})
}
