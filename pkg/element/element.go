// Package element declares the HTML elements as Go types.
//
// Each element is a struct whose fields are its attributes. Every field is
// optional and its zero value leaves the attribute out, so a struct literal
// with no fields renders the bare tag. Elements that carry content have a
// Content slot; void elements have none and never render a closing tag.
//
// All elements implement [templ.Component] and nest inside each other's
// content or inside templ templates:
//
//	element.Anchor{
//		Href:    attr.MustURL("href", "https://example.com"),
//		Target:  attr.TargetBlank,
//		Content: element.Children(element.Text("Visit")),
//	}
package element

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// ErrStructure is returned when an element was assembled in a way its types
// could not rule out, such as a [Base] with neither href nor target.
const ErrStructure = attr.Error("invalid element structure")

var (
	_ templ.Component = Anchor{}
	_ markup.Parent   = Anchor{}
	_ markup.Element  = Meta{}
	_ markup.Checker  = Base{}
	_ markup.Checker  = Area{}
	_ markup.Parent   = ColGroup{}
)

// tagName identifies the element a generic declaration stands for.
type tagName interface {
	tag() string
}

// basic is an element with global attributes and content only.
type basic[T tagName] struct {
	Global
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (basic[T]) Tag() string {
	var t T
	return t.tag()
}

// Attrs satisfies [markup.Element].
func (e basic[T]) Attrs() attr.List { return e.list() }

// Children satisfies [markup.Parent].
func (e basic[T]) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e basic[T]) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// empty is a void element with global attributes only.
type empty[T tagName] struct {
	Global
}

// Tag satisfies [markup.Element].
func (empty[T]) Tag() string {
	var t T
	return t.tag()
}

// Attrs satisfies [markup.Element].
func (e empty[T]) Attrs() attr.List { return e.list() }

// Render satisfies [templ.Component].
func (e empty[T]) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
