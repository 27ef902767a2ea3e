package element

import (
	"context"
	"io"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Anchor is the <a> element, a hyperlink.
type Anchor struct {
	Global
	Download       attr.Download
	Href           attr.URL
	HrefLang       attr.Lang
	Ping           attr.URLList
	ReferrerPolicy attr.ReferrerPolicy
	Rel            attr.Rel
	Target         attr.Target
	Type           attr.MediaType
	Content        markup.Slot
}

// Tag satisfies [markup.Element].
func (Anchor) Tag() string { return atom.A.String() }

// Attrs satisfies [markup.Element].
func (e Anchor) Attrs() attr.List {
	return e.list().With(
		attr.Named("download", e.Download),
		attr.Named("href", e.Href),
		attr.Named("hreflang", e.HrefLang),
		attr.Named("ping", e.Ping),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
		attr.Named("rel", e.Rel),
		attr.Named("target", e.Target),
		attr.Named("type", e.Type),
	)
}

// Children satisfies [markup.Parent].
func (e Anchor) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Anchor) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Map is the <map> element, an image map holding [Area] elements.
type Map struct {
	Global
	Name    attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Map) Tag() string { return atom.Map.String() }

// Attrs satisfies [markup.Element].
func (e Map) Attrs() attr.List {
	return e.list().With(attr.Named("name", e.Name))
}

// Children satisfies [markup.Parent].
func (e Map) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Map) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
