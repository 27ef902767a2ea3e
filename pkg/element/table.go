package element

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// ColGroup is the <colgroup> element. A column group either spans a number
// of columns or lists them as [Col] children, never both.
type ColGroup struct {
	Global
	Layout ColGroupLayout
}

// ColGroupLayout is one of [ColGroupSpan] or [ColGroupColumns].
type ColGroupLayout interface {
	span() attr.Span
	columns() []Col
}

// ColGroupSpan is a column group spanning Span columns, with no children.
type ColGroupSpan struct {
	Span attr.Span
}

func (l ColGroupSpan) span() attr.Span { return l.Span }
func (ColGroupSpan) columns() []Col    { return nil }

// ColGroupColumns is a column group made of explicit columns.
type ColGroupColumns struct {
	Cols []Col
}

func (ColGroupColumns) span() attr.Span  { return attr.Span{} }
func (l ColGroupColumns) columns() []Col { return l.Cols }

// Tag satisfies [markup.Element].
func (ColGroup) Tag() string { return atom.Colgroup.String() }

// Attrs satisfies [markup.Element].
func (e ColGroup) Attrs() attr.List {
	var span attr.Span
	if e.Layout != nil {
		span = e.Layout.span()
	}
	return e.list().With(attr.Named("span", span))
}

// Children satisfies [markup.Parent].
func (e ColGroup) Children() markup.Slot {
	if e.Layout == nil {
		return nil
	}
	cols := e.Layout.columns()
	if len(cols) == 0 {
		return nil
	}
	components := make([]templ.Component, len(cols))
	for i, col := range cols {
		components[i] = col
	}
	return Children(components...)
}

// Render satisfies [templ.Component].
func (e ColGroup) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Col is the <col> element, one column of a [ColGroup].
type Col struct {
	Global
	Span attr.Span
}

// Tag satisfies [markup.Element].
func (Col) Tag() string { return atom.Col.String() }

// Attrs satisfies [markup.Element].
func (e Col) Attrs() attr.List {
	return e.list().With(attr.Named("span", e.Span))
}

// Render satisfies [templ.Component].
func (e Col) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// TD is the <td> element, a data cell.
type TD struct {
	Global
	ColSpan attr.Int
	RowSpan attr.Int
	Headers attr.Tokens
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (TD) Tag() string { return atom.Td.String() }

// Attrs satisfies [markup.Element].
func (e TD) Attrs() attr.List {
	return e.list().With(
		attr.Named("colspan", e.ColSpan),
		attr.Named("rowspan", e.RowSpan),
		attr.Named("headers", e.Headers),
	)
}

// Children satisfies [markup.Parent].
func (e TD) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e TD) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// TH is the <th> element, a header cell.
type TH struct {
	Global
	Abbr    attr.Text
	ColSpan attr.Int
	RowSpan attr.Int
	Headers attr.Tokens
	Scope   attr.Scope
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (TH) Tag() string { return atom.Th.String() }

// Attrs satisfies [markup.Element].
func (e TH) Attrs() attr.List {
	return e.list().With(
		attr.Named("abbr", e.Abbr),
		attr.Named("colspan", e.ColSpan),
		attr.Named("rowspan", e.RowSpan),
		attr.Named("headers", e.Headers),
		attr.Named("scope", e.Scope),
	)
}

// Children satisfies [markup.Parent].
func (e TH) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e TH) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
