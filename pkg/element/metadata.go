package element

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// HTML is the <html> root element.
type HTML = basic[htmlTag]

type htmlTag struct{}

func (htmlTag) tag() string { return atom.Html.String() }

// Meta is the <meta> element, document metadata that other elements cannot
// express.
type Meta struct {
	Global
	Charset   attr.Charset
	Name      attr.Text
	HTTPEquiv attr.HTTPEquiv
	Content   attr.Text
	Media     attr.Text
}

// MetaUTF8 declares the document encoding as UTF-8.
func MetaUTF8() Meta {
	return Meta{Charset: attr.CharsetUTF8}
}

// MetaViewport sets the viewport, typically "width=device-width,
// initial-scale=1".
func MetaViewport(content string) Meta {
	return Meta{Name: "viewport", Content: attr.Text(content)}
}

// MetaDescription sets the page description shown by search engines.
func MetaDescription(description string) Meta {
	return Meta{Name: "description", Content: attr.Text(description)}
}

// MetaRedirect reloads the page after seconds, or navigates to url when it is
// present.
func MetaRedirect(seconds int, url attr.URL) Meta {
	content := strconv.Itoa(max(seconds, 0))
	if u, ok := url.AttrValue(); ok {
		content += ";url=" + u
	}
	return Meta{HTTPEquiv: attr.HTTPEquivRefresh, Content: attr.Text(content)}
}

// MetaThemeColor sets the color browsers use for their own UI around the
// page. An adaptive color yields one <meta> per color scheme, and an absent
// color yields nil.
func MetaThemeColor(c attr.Color) templ.Component {
	switch {
	case c.String() == "":
		return nil
	case !c.IsAdaptive():
		return Meta{Name: "theme-color", Content: attr.Text(c.String())}
	}
	return Group(
		Meta{Name: "theme-color", Content: attr.Text(c.Light().String()), Media: "(prefers-color-scheme: light)"},
		Meta{Name: "theme-color", Content: attr.Text(c.Dark().String()), Media: "(prefers-color-scheme: dark)"},
	)
}

// MetaColorScheme declares the color schemes the page supports, such as
// "light dark". Adaptive colors need it to switch.
func MetaColorScheme(schemes string) Meta {
	return Meta{Name: "color-scheme", Content: attr.Text(schemes)}
}

// Tag satisfies [markup.Element].
func (Meta) Tag() string { return atom.Meta.String() }

// Attrs satisfies [markup.Element].
func (e Meta) Attrs() attr.List {
	return e.list().With(
		attr.Named("charset", e.Charset),
		attr.Named("name", e.Name),
		attr.Named("http-equiv", e.HTTPEquiv),
		attr.Named("content", e.Content),
		attr.Named("media", e.Media),
	)
}

// Render satisfies [templ.Component].
func (e Meta) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Link is the <link> element, relating the document to an external
// resource such as a stylesheet or icon.
type Link struct {
	Global
	As             attr.LinkAs
	Blocking       attr.Tokens
	Crossorigin    attr.Crossorigin
	Disabled       attr.Flag
	FetchPriority  attr.FetchPriority
	Href           attr.URL
	HrefLang       attr.Lang
	ImageSizes     attr.Text
	ImageSrcset    attr.Text
	Integrity      attr.Text
	Media          attr.Text
	ReferrerPolicy attr.ReferrerPolicy
	Rel            attr.Rel
	Sizes          attr.Text
	Type           attr.MediaType
}

// Stylesheet links the stylesheet at href.
func Stylesheet(href attr.URL) Link {
	return Link{Rel: attr.NewRel(attr.LinkStylesheet), Href: href}
}

// Tag satisfies [markup.Element].
func (Link) Tag() string { return atom.Link.String() }

// Attrs satisfies [markup.Element].
func (e Link) Attrs() attr.List {
	return e.list().With(
		attr.Named("as", e.As),
		attr.Named("blocking", e.Blocking),
		attr.Named("crossorigin", e.Crossorigin),
		attr.Named("disabled", e.Disabled),
		attr.Named("fetchpriority", e.FetchPriority),
		attr.Named("href", e.Href),
		attr.Named("hreflang", e.HrefLang),
		attr.Named("imagesizes", e.ImageSizes),
		attr.Named("imagesrcset", e.ImageSrcset),
		attr.Named("integrity", e.Integrity),
		attr.Named("media", e.Media),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
		attr.Named("rel", e.Rel),
		attr.Named("sizes", e.Sizes),
		attr.Named("type", e.Type),
	)
}

// Render satisfies [templ.Component].
func (e Link) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Style is the <style> element. Its content is CSS and should be given as
// [Raw] text.
type Style struct {
	Global
	Media    attr.Text
	Blocking attr.Tokens
	Nonce    attr.Text
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (Style) Tag() string { return atom.Style.String() }

// Attrs satisfies [markup.Element].
func (e Style) Attrs() attr.List {
	return e.list().With(
		attr.Named("media", e.Media),
		attr.Named("blocking", e.Blocking),
		attr.Named("nonce", e.Nonce),
	)
}

// Children satisfies [markup.Parent].
func (e Style) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Style) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Script is the <script> element, embedding or referencing executable code.
type Script struct {
	Global
	Src            attr.URL
	Async          attr.Flag
	Defer          attr.Flag
	Type           attr.ScriptType
	Integrity      attr.Text
	ReferrerPolicy attr.ReferrerPolicy
	NoModule       attr.Flag
	FetchPriority  attr.FetchPriority
	Blocking       attr.Tokens
	Crossorigin    attr.Crossorigin
	Nonce          attr.Text
	Content        markup.Slot
}

// Tag satisfies [markup.Element].
func (Script) Tag() string { return atom.Script.String() }

// Attrs satisfies [markup.Element].
func (e Script) Attrs() attr.List {
	return e.list().With(
		attr.Named("src", e.Src),
		attr.Named("async", e.Async),
		attr.Named("defer", e.Defer),
		attr.Named("type", e.Type),
		attr.Named("integrity", e.Integrity),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
		attr.Named("nomodule", e.NoModule),
		attr.Named("fetchpriority", e.FetchPriority),
		attr.Named("blocking", e.Blocking),
		attr.Named("crossorigin", e.Crossorigin),
		attr.Named("nonce", e.Nonce),
	)
}

// Children satisfies [markup.Parent].
func (e Script) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Script) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Template is the <template> element, holding inert markup for scripts to
// clone, or a declarative shadow root.
type Template struct {
	Global
	ShadowRootMode           attr.ShadowRootMode
	ShadowRootClonable       attr.Flag
	ShadowRootDelegatesFocus attr.Flag
	ShadowRootSerializable   attr.Flag
	Content                  markup.Slot
}

// Tag satisfies [markup.Element].
func (Template) Tag() string { return atom.Template.String() }

// Attrs satisfies [markup.Element].
func (e Template) Attrs() attr.List {
	return e.list().With(
		attr.Named("shadowrootmode", e.ShadowRootMode),
		attr.Named("shadowrootclonable", e.ShadowRootClonable),
		attr.Named("shadowrootdelegatesfocus", e.ShadowRootDelegatesFocus),
		attr.Named("shadowrootserializable", e.ShadowRootSerializable),
	)
}

// Children satisfies [markup.Parent].
func (e Template) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Template) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
