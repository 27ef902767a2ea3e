// Package markup serializes typed elements to HTML text.
//
// An [Element] exposes a tag name and its attributes in declaration order. A
// [Parent] additionally owns a content [Slot]; elements that are not parents
// are void and never emit a closing tag. Rendering is atomic: the caller's
// writer only receives output once the whole element rendered without error.
package markup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/pkg/attr"
)

// Slot produces an element's children. The serializer invokes it at most once
// per render and never for void elements. A nil slot, or a slot returning nil,
// is empty content.
type Slot func() templ.Component

// Element is a typed HTML element declaration.
type Element interface {
	// Tag returns the element's tag name.
	Tag() string
	// Attrs returns the element's attribute slots in declaration order.
	Attrs() attr.List
}

// Parent is an element that carries content and a closing tag.
type Parent interface {
	Element
	Children() Slot
}

// Checker is implemented by elements with invariants that cannot be enforced
// by their types alone. A failing check aborts the render before any output.
type Checker interface {
	Check() error
}

// buffer collects the output of a top-level render. Nested renders that
// receive a *buffer write into it directly.
type buffer struct {
	bytes.Buffer
}

// Render serializes el to w.
func Render(ctx context.Context, w io.Writer, el Element) error {
	return Buffered(ctx, w, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(ctx, w.(*buffer), el)
	}))
}

var bufferPool = sync.Pool{
	New: func() any { return &buffer{} },
}

// Buffered renders c to w atomically. If c fails, nothing is written to w.
func Buffered(ctx context.Context, w io.Writer, c templ.Component) error {
	if buf, ok := w.(*buffer); ok {
		return c.Render(ctx, buf)
	}
	buf := bufferPool.Get().(*buffer) //nolint:forcetypeassert // guaranteed by pool
	defer bufferPool.Put(buf)
	buf.Reset()

	if err := c.Render(ctx, buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func write(ctx context.Context, buf *buffer, el Element) error {
	tag := el.Tag()
	if chk, ok := el.(Checker); ok {
		if err := chk.Check(); err != nil {
			slog.DebugContext(ctx, "element failed structural check",
				slog.String("tag", tag),
				slog.Any("error", err),
			)
			return err
		}
	}

	buf.WriteByte('<')
	buf.WriteString(tag)
	writeAttrs(buf, el.Attrs())
	buf.WriteByte('>')

	parent, ok := el.(Parent)
	if !ok {
		return nil
	}
	if slot := parent.Children(); slot != nil {
		if child := slot(); child != nil {
			if err := child.Render(ctx, buf); err != nil {
				return fmt.Errorf("failed to render <%s> content: %w", tag, err)
			}
		}
	}
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
	return nil
}

func writeAttrs(buf *buffer, attrs attr.List) {
	for _, a := range attrs {
		if a.Value == nil {
			continue
		}
		text, ok := a.Value.AttrValue()
		if !ok {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		if text == "" {
			continue
		}
		buf.WriteString(`="`)
		buf.WriteString(EscapeAttr(text))
		buf.WriteByte('"')
	}
}
