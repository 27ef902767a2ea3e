package element

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Base is the <base> element, setting the document base URL, the default
// browsing context for links, or both. At least one must be given, which
// Config guarantees when set.
type Base struct {
	Global
	Config BaseConfig
}

// BaseConfig is one of [BaseHref], [BaseTarget], or [BaseHrefTarget].
type BaseConfig interface {
	base() (attr.URL, attr.Target)
	check() error
}

// BaseHref sets the document base URL.
type BaseHref struct {
	Href attr.URL
}

func (c BaseHref) base() (attr.URL, attr.Target) { return c.Href, attr.Target{} }

func (c BaseHref) check() error {
	if !present(c.Href) {
		return fmt.Errorf("%w: <base> href config without href", ErrStructure)
	}
	return nil
}

// BaseTarget sets the default link target.
type BaseTarget struct {
	Target attr.Target
}

func (c BaseTarget) base() (attr.URL, attr.Target) { return attr.URL{}, c.Target }

func (c BaseTarget) check() error {
	if !present(c.Target) {
		return fmt.Errorf("%w: <base> target config without target", ErrStructure)
	}
	return nil
}

// BaseHrefTarget sets both the base URL and the default link target.
type BaseHrefTarget struct {
	Href   attr.URL
	Target attr.Target
}

func (c BaseHrefTarget) base() (attr.URL, attr.Target) { return c.Href, c.Target }

func (c BaseHrefTarget) check() error {
	if !present(c.Href) || !present(c.Target) {
		return fmt.Errorf("%w: <base> href and target config needs both", ErrStructure)
	}
	return nil
}

func present(v attr.Value) bool {
	_, ok := v.AttrValue()
	return ok
}

// Href returns the configured base URL, if any.
func (e Base) Href() attr.URL {
	if e.Config == nil {
		return attr.URL{}
	}
	href, _ := e.Config.base()
	return href
}

// Target returns the configured default target, if any.
func (e Base) Target() attr.Target {
	if e.Config == nil {
		return attr.Target{}
	}
	_, target := e.Config.base()
	return target
}

// Tag satisfies [markup.Element].
func (Base) Tag() string { return atom.Base.String() }

// Attrs satisfies [markup.Element].
func (e Base) Attrs() attr.List {
	return e.list().With(
		attr.Named("href", e.Href()),
		attr.Named("target", e.Target()),
	)
}

// Check satisfies [markup.Checker].
func (e Base) Check() error {
	if e.Config == nil {
		return fmt.Errorf("%w: <base> requires href or target", ErrStructure)
	}
	return e.Config.check()
}

// Render satisfies [templ.Component].
func (e Base) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
