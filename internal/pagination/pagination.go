// Package pagination provides utilities around page tokens.
package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

var tokenEncoding = base64.RawURLEncoding

const tokenPrefix = "after:"

var errMalformed = errors.New("malformed token payload")

// TokenError is an opaque error related to pagination tokens. The error message
// does not reveal internal details; use [errors.Unwrap] to access the cause.
type TokenError struct {
	cause error
}

// Error satisfies [error].
func (terr TokenError) Error() string {
	return "invalid pagination token"
}

// Unwrap returns the underlying cause of the token error.
func (terr TokenError) Unwrap() error {
	return terr.cause
}

// FromToken decodes an opaque pagination token into the key of the last item
// of the previous page. Returns a [TokenError] if decoding fails.
func FromToken(tkn string) (after string, err error) {
	data, err := tokenEncoding.DecodeString(tkn)
	if err != nil {
		return "", TokenError{cause: err}
	}
	after, ok := strings.CutPrefix(string(data), tokenPrefix)
	if !ok || after == "" {
		return "", TokenError{cause: errMalformed}
	}
	return after, nil
}

// ToToken encodes the key of the last item on a page into an opaque
// pagination token.
func ToToken(after string) string {
	return tokenEncoding.EncodeToString([]byte(tokenPrefix + after))
}

// Page returns up to size items whose key sorts after the key in tkn. Items
// must be sorted by key. An empty tkn starts at the first item. The next
// token is empty on the last page.
func Page[T any](items []T, key func(T) string, tkn string, size int) (page []T, next string, err error) {
	start := 0
	if tkn != "" {
		var after string
		if after, err = FromToken(tkn); err != nil {
			return nil, "", err
		}
		start = len(items)
		for i, item := range items {
			if key(item) > after {
				start = i
				break
			}
		}
	}
	end := min(start+max(size, 1), len(items))
	page = items[start:end]
	if end < len(items) {
		next = ToToken(key(page[len(page)-1]))
	}
	return page, next, nil
}
