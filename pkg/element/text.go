package element

import (
	"context"
	"io"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Blockquote is the <blockquote> element.
type Blockquote struct {
	Global
	Cite    attr.URL
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Blockquote) Tag() string { return atom.Blockquote.String() }

// Attrs satisfies [markup.Element].
func (e Blockquote) Attrs() attr.List {
	return e.list().With(attr.Named("cite", e.Cite))
}

// Children satisfies [markup.Parent].
func (e Blockquote) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Blockquote) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Q is the <q> element, an inline quotation.
type Q struct {
	Global
	Cite    attr.URL
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Q) Tag() string { return atom.Q.String() }

// Attrs satisfies [markup.Element].
func (e Q) Attrs() attr.List {
	return e.list().With(attr.Named("cite", e.Cite))
}

// Children satisfies [markup.Parent].
func (e Q) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Q) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Edit records a change to the document, shared by [Del] and [Ins].
type Edit struct {
	Cite     attr.URL
	DateTime attr.Text
}

func (e Edit) list() attr.List {
	return attr.List{
		attr.Named("cite", e.Cite),
		attr.Named("datetime", e.DateTime),
	}
}

// Del is the <del> element, removed content.
type Del struct {
	Global
	Edit    Edit
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Del) Tag() string { return atom.Del.String() }

// Attrs satisfies [markup.Element].
func (e Del) Attrs() attr.List { return e.list().With(e.Edit.list()...) }

// Children satisfies [markup.Parent].
func (e Del) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Del) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Ins is the <ins> element, inserted content.
type Ins struct {
	Global
	Edit    Edit
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Ins) Tag() string { return atom.Ins.String() }

// Attrs satisfies [markup.Element].
func (e Ins) Attrs() attr.List { return e.list().With(e.Edit.list()...) }

// Children satisfies [markup.Parent].
func (e Ins) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Ins) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Data is the <data> element, content paired with a machine-readable value.
type Data struct {
	Global
	Value   attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Data) Tag() string { return atom.Data.String() }

// Attrs satisfies [markup.Element].
func (e Data) Attrs() attr.List {
	return e.list().With(attr.Named("value", e.Value))
}

// Children satisfies [markup.Parent].
func (e Data) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Data) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Time is the <time> element.
type Time struct {
	Global
	DateTime attr.Text
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (Time) Tag() string { return atom.Time.String() }

// Attrs satisfies [markup.Element].
func (e Time) Attrs() attr.List {
	return e.list().With(attr.Named("datetime", e.DateTime))
}

// Children satisfies [markup.Parent].
func (e Time) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Time) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// OL is the <ol> element, an ordered list.
type OL struct {
	Global
	Reversed attr.Flag
	Start    attr.Int
	Type     attr.ListType
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (OL) Tag() string { return atom.Ol.String() }

// Attrs satisfies [markup.Element].
func (e OL) Attrs() attr.List {
	return e.list().With(
		attr.Named("reversed", e.Reversed),
		attr.Named("start", e.Start),
		attr.Named("type", e.Type),
	)
}

// Children satisfies [markup.Parent].
func (e OL) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e OL) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// LI is the <li> element.
type LI struct {
	Global
	Value   attr.Int
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (LI) Tag() string { return atom.Li.String() }

// Attrs satisfies [markup.Element].
func (e LI) Attrs() attr.List {
	return e.list().With(attr.Named("value", e.Value))
}

// Children satisfies [markup.Parent].
func (e LI) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e LI) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Bdo is the <bdo> element, overriding the text direction with Global.Dir.
type Bdo = basic[bdoTag]

type bdoTag struct{}

func (bdoTag) tag() string { return atom.Bdo.String() }

// Dialog is the <dialog> element.
type Dialog struct {
	Global
	Open    attr.Flag
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Dialog) Tag() string { return atom.Dialog.String() }

// Attrs satisfies [markup.Element].
func (e Dialog) Attrs() attr.List {
	return e.list().With(attr.Named("open", e.Open))
}

// Children satisfies [markup.Parent].
func (e Dialog) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Dialog) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Details is the <details> element. Details sharing a Name form an exclusive
// accordion.
type Details struct {
	Global
	Open    attr.Flag
	Name    attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Details) Tag() string { return atom.Details.String() }

// Attrs satisfies [markup.Element].
func (e Details) Attrs() attr.List {
	return e.list().With(
		attr.Named("open", e.Open),
		attr.Named("name", e.Name),
	)
}

// Children satisfies [markup.Parent].
func (e Details) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Details) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Slot is the <slot> element, a placeholder inside a shadow tree. Its
// content is the fallback.
type Slot struct {
	Global
	Name    attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Slot) Tag() string { return atom.Slot.String() }

// Attrs satisfies [markup.Element].
func (e Slot) Attrs() attr.List {
	return e.list().With(attr.Named("name", e.Name))
}

// Children satisfies [markup.Parent].
func (e Slot) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Slot) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
