package markup

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/internal/content"
)

var htmlToMarkdown = content.HTMLToMarkdown()

// String renders c and returns the markup.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := Buffered(ctx, &sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// PlainText renders c and converts the markup to CommonMark, suitable as the
// text alternative of an HTML email.
func PlainText(ctx context.Context, c templ.Component) (string, error) {
	html, err := String(ctx, c)
	if err != nil {
		return "", err
	}
	text, err := htmlToMarkdown([]byte(html))
	if err != nil {
		return "", fmt.Errorf("failed to convert markup to text: %w", err)
	}
	return string(text), nil
}
