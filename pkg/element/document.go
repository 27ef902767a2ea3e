package element

import (
	"context"
	"io"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

const doctype = "<!doctype html>"

// Document is a complete HTML document: the doctype followed by <html>
// holding Head and Body.
type Document struct {
	Lang attr.Lang
	Dir  attr.Dir
	Head markup.Slot
	Body markup.Slot
}

// Render satisfies [templ.Component]. Nothing is written unless the whole
// document renders.
func (d Document) Render(ctx context.Context, w io.Writer) error {
	root := HTML{
		Global: Global{Lang: d.Lang, Dir: d.Dir},
		Content: Children(
			Head{Content: d.Head},
			Body{Content: d.Body},
		),
	}
	return markup.Buffered(ctx, w, Group(Raw(doctype), root))
}
