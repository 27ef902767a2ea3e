package element

import (
	"context"
	"io"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Img is the <img> element.
type Img struct {
	Global
	Alt            attr.Text
	Src            attr.URL
	Srcset         attr.Text
	Sizes          attr.Text
	Width          attr.Int
	Height         attr.Int
	Loading        attr.Loading
	Decoding       attr.Decoding
	FetchPriority  attr.FetchPriority
	Crossorigin    attr.Crossorigin
	ReferrerPolicy attr.ReferrerPolicy
	IsMap          attr.Flag
	UseMap         attr.URL
}

// Tag satisfies [markup.Element].
func (Img) Tag() string { return atom.Img.String() }

// Attrs satisfies [markup.Element].
func (e Img) Attrs() attr.List {
	return e.list().With(
		attr.Named("alt", e.Alt),
		attr.Named("src", e.Src),
		attr.Named("srcset", e.Srcset),
		attr.Named("sizes", e.Sizes),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
		attr.Named("loading", e.Loading),
		attr.Named("decoding", e.Decoding),
		attr.Named("fetchpriority", e.FetchPriority),
		attr.Named("crossorigin", e.Crossorigin),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
		attr.Named("ismap", e.IsMap),
		attr.Named("usemap", e.UseMap),
	)
}

// Render satisfies [templ.Component].
func (e Img) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Source is the <source> element, one candidate resource of a [Picture],
// [Audio], or [Video].
type Source struct {
	Global
	Type   attr.MediaType
	Src    attr.URL
	Srcset attr.Text
	Sizes  attr.Text
	Media  attr.Text
	Height attr.Int
	Width  attr.Int
}

// Tag satisfies [markup.Element].
func (Source) Tag() string { return atom.Source.String() }

// Attrs satisfies [markup.Element].
func (e Source) Attrs() attr.List {
	return e.list().With(
		attr.Named("type", e.Type),
		attr.Named("src", e.Src),
		attr.Named("srcset", e.Srcset),
		attr.Named("sizes", e.Sizes),
		attr.Named("media", e.Media),
		attr.Named("height", e.Height),
		attr.Named("width", e.Width),
	)
}

// Render satisfies [templ.Component].
func (e Source) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Track is the <track> element, a timed text track of an [Audio] or [Video].
type Track struct {
	Global
	Default attr.Flag
	Kind    attr.TrackKind
	Label   attr.Text
	Src     attr.URL
	SrcLang attr.Lang
}

// Tag satisfies [markup.Element].
func (Track) Tag() string { return atom.Track.String() }

// Attrs satisfies [markup.Element].
func (e Track) Attrs() attr.List {
	return e.list().With(
		attr.Named("default", e.Default),
		attr.Named("kind", e.Kind),
		attr.Named("label", e.Label),
		attr.Named("src", e.Src),
		attr.Named("srclang", e.SrcLang),
	)
}

// Render satisfies [templ.Component].
func (e Track) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// ControlsList hides browser media controls. It is absent when no control is
// hidden.
type ControlsList struct {
	NoDownload       bool
	NoFullscreen     bool
	NoRemotePlayback bool
}

// AttrValue satisfies [attr.Value].
func (c ControlsList) AttrValue() (string, bool) {
	tokens := make([]string, 0, 3) //nolint:mnd // one per control
	if c.NoDownload {
		tokens = append(tokens, "nodownload")
	}
	if c.NoFullscreen {
		tokens = append(tokens, "nofullscreen")
	}
	if c.NoRemotePlayback {
		tokens = append(tokens, "noremoteplayback")
	}
	return strings.Join(tokens, " "), len(tokens) > 0
}

// Audio is the <audio> element.
type Audio struct {
	Global
	Src                   attr.URL
	Controls              attr.Flag
	Autoplay              attr.Flag
	Loop                  attr.Flag
	Muted                 attr.Flag
	Preload               attr.Preload
	Crossorigin           attr.Crossorigin
	ControlsList          ControlsList
	DisableRemotePlayback attr.Flag
	Content               markup.Slot
}

// Tag satisfies [markup.Element].
func (Audio) Tag() string { return atom.Audio.String() }

// Attrs satisfies [markup.Element].
func (e Audio) Attrs() attr.List {
	return e.list().With(
		attr.Named("src", e.Src),
		attr.Named("controls", e.Controls),
		attr.Named("autoplay", e.Autoplay),
		attr.Named("loop", e.Loop),
		attr.Named("muted", e.Muted),
		attr.Named("preload", e.Preload),
		attr.Named("crossorigin", e.Crossorigin),
		attr.Named("controlslist", e.ControlsList),
		attr.Named("disableremoteplayback", e.DisableRemotePlayback),
	)
}

// Children satisfies [markup.Parent].
func (e Audio) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Audio) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Video is the <video> element.
type Video struct {
	Global
	Src                     attr.URL
	Controls                attr.Flag
	Autoplay                attr.Flag
	Poster                  attr.URL
	Loop                    attr.Flag
	Muted                   attr.Flag
	Width                   attr.Int
	Height                  attr.Int
	Preload                 attr.Preload
	PlaysInline             attr.Flag
	Crossorigin             attr.Crossorigin
	ControlsList            ControlsList
	DisablePictureInPicture attr.Flag
	DisableRemotePlayback   attr.Flag
	Content                 markup.Slot
}

// Tag satisfies [markup.Element].
func (Video) Tag() string { return atom.Video.String() }

// Attrs satisfies [markup.Element].
func (e Video) Attrs() attr.List {
	return e.list().With(
		attr.Named("src", e.Src),
		attr.Named("controls", e.Controls),
		attr.Named("autoplay", e.Autoplay),
		attr.Named("poster", e.Poster),
		attr.Named("loop", e.Loop),
		attr.Named("muted", e.Muted),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
		attr.Named("preload", e.Preload),
		attr.Named("playsinline", e.PlaysInline),
		attr.Named("crossorigin", e.Crossorigin),
		attr.Named("controlslist", e.ControlsList),
		attr.Named("disablepictureinpicture", e.DisablePictureInPicture),
		attr.Named("disableremoteplayback", e.DisableRemotePlayback),
	)
}

// Children satisfies [markup.Parent].
func (e Video) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Video) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// IFrame is the <iframe> element, a nested browsing context.
type IFrame struct {
	Global
	Src             attr.URL
	Srcdoc          attr.Text
	Name            attr.Text
	Sandbox         attr.Tokens
	AllowFullscreen attr.Flag
	Allow           attr.Text
	Width           attr.Int
	Height          attr.Int
	Loading         attr.Loading
	ReferrerPolicy  attr.ReferrerPolicy
	Content         markup.Slot
}

// Tag satisfies [markup.Element].
func (IFrame) Tag() string { return atom.Iframe.String() }

// Attrs satisfies [markup.Element].
func (e IFrame) Attrs() attr.List {
	return e.list().With(
		attr.Named("src", e.Src),
		attr.Named("srcdoc", e.Srcdoc),
		attr.Named("name", e.Name),
		attr.Named("sandbox", e.Sandbox),
		attr.Named("allowfullscreen", e.AllowFullscreen),
		attr.Named("allow", e.Allow),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
		attr.Named("loading", e.Loading),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
	)
}

// Children satisfies [markup.Parent].
func (e IFrame) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e IFrame) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Embed is the <embed> element, external content handled by a plugin.
type Embed struct {
	Global
	Src    attr.URL
	Type   attr.MediaType
	Width  attr.Int
	Height attr.Int
}

// Tag satisfies [markup.Element].
func (Embed) Tag() string { return atom.Embed.String() }

// Attrs satisfies [markup.Element].
func (e Embed) Attrs() attr.List {
	return e.list().With(
		attr.Named("src", e.Src),
		attr.Named("type", e.Type),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
	)
}

// Render satisfies [templ.Component].
func (e Embed) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Object is the <object> element. Its content is the fallback shown when the
// resource cannot be loaded.
type Object struct {
	Global
	Data    attr.URL
	Type    attr.MediaType
	Name    attr.Text
	Form    attr.Text
	Width   attr.Int
	Height  attr.Int
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Object) Tag() string { return atom.Object.String() }

// Attrs satisfies [markup.Element].
func (e Object) Attrs() attr.List {
	return e.list().With(
		attr.Named("data", e.Data),
		attr.Named("type", e.Type),
		attr.Named("name", e.Name),
		attr.Named("form", e.Form),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
	)
}

// Children satisfies [markup.Parent].
func (e Object) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Object) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Canvas is the <canvas> element.
type Canvas struct {
	Global
	Width   attr.Int
	Height  attr.Int
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Canvas) Tag() string { return atom.Canvas.String() }

// Attrs satisfies [markup.Element].
func (e Canvas) Attrs() attr.List {
	return e.list().With(
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
	)
}

// Children satisfies [markup.Parent].
func (e Canvas) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Canvas) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
