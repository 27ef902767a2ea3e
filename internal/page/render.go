package page

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/internal/content"
	"github.com/stolasapp/elemental/pkg/element"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Convert turns the source document at sourcePath into a complete page. The
// content type follows from the file extension.
func (l *Layout) Convert(sourcePath string, data []byte) (element.Document, error) {
	body, err := content.Body(content.ContentType(sourcePath), data)
	if err != nil {
		return element.Document{}, fmt.Errorf("failed to convert %s: %w", sourcePath, err)
	}
	return l.Document(FromSource(body, sourcePath)), nil
}

// Render writes c to w in format. Markdown output keeps only the visible
// text of the page.
func Render(ctx context.Context, w io.Writer, c templ.Component, format content.Format) error {
	if format != content.FormatMarkdown {
		return markup.Buffered(ctx, w, c)
	}
	text, err := markup.PlainText(ctx, c)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
