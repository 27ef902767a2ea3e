// Package content turns source documents into HTML fragments suitable for a
// page body, and rendered pages back into Markdown.
package content

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Media types of the source documents Body understands.
const (
	MediaTypeHTML     = "text/html"
	MediaTypeMarkdown = "text/markdown"
	MediaTypePlain    = "text/plain"
)

var (
	markdownToHTML  = MarkdownToHTML()
	sanitizeHTML    = SanitizeHTML()
	extractHTMLBody = ExtractHTMLBody()
	textToHTML      = TextToHTML()

	// Pipelines run after the input was decoded to UTF-8.
	markdownBodyPipeline = Chain(markdownToHTML, sanitizeHTML)
	htmlBodyPipeline     = Chain(extractHTMLBody, sanitizeHTML)
	textBodyPipeline     = textToHTML
)

// Format is an output format of rendered pages.
type Format uint8

// Format values.
const (
	FormatHTML Format = iota + 1
	FormatMarkdown
)

// ParseFormat parses a format name: html, markdown, or md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext returns the file extension of the format, including the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".html"
}

// ContentType guesses the content type of a source file from its extension.
// Unknown extensions are treated as plain text.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return MediaTypeMarkdown
	case ".html", ".htm":
		return MediaTypeHTML
	case ".txt", "":
		return MediaTypePlain
	}
	if typ := mime.TypeByExtension(ext); typ != "" {
		return typ
	}
	return MediaTypePlain
}

// Body converts a source document of the given content type into a sanitized
// HTML fragment. The input is decoded to UTF-8 first, honoring any charset
// parameter of the content type.
func Body(contentType string, input []byte) ([]byte, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type %q: %w", contentType, err)
	}

	input, err = UTF8Transformer(contentType)(input)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case MediaTypeMarkdown:
		return markdownBodyPipeline(input)
	case MediaTypePlain:
		return textBodyPipeline(input)
	case MediaTypeHTML:
		return htmlBodyPipeline(input)
	default:
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}
}
