package element

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/internal/content"
	"github.com/stolasapp/elemental/pkg/markup"
)

var (
	markdownPipeline  = content.Chain(content.MarkdownToHTML(), content.SanitizeHTML())
	sanitizerPipeline = content.SanitizeHTML()
)

// Text is character data, escaped when rendered.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup.EscapeText(s))
		return err
	})
}

// Raw is trusted markup written as is. Never pass it user input; use
// [Sanitized] for that.
func Raw(html string) templ.Component {
	return templ.Raw(html)
}

// Group renders components one after another. Nil components are skipped.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Children returns a content slot holding components. With no components the
// slot is nil, which renders as empty content.
func Children(components ...templ.Component) markup.Slot {
	if len(components) == 0 {
		return nil
	}
	group := Group(components...)
	return func() templ.Component { return group }
}

// Markdown renders CommonMark source to sanitized HTML.
func Markdown(src string) templ.Component {
	return transformed(markdownPipeline, src)
}

// Sanitized is untrusted HTML, stripped down to a safe subset of elements and
// attributes.
func Sanitized(html string) templ.Component {
	return transformed(sanitizerPipeline, html)
}

func transformed(transformer content.Transformer, input string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out, err := transformer.Transform([]byte(input))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
