package element

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := markup.String(t.Context(), c)
	require.NoError(t, err)
	return out
}

func mustShape(t *testing.T) func(AreaShape, error) AreaShape {
	t.Helper()
	return func(s AreaShape, err error) AreaShape {
		require.NoError(t, err)
		return s
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	circle := mustShape(t)(Circle(75, 75, 75))
	quoted := attr.MustURL("href", `https://example.com/?q="x"`)

	tests := []struct {
		name string
		el   templ.Component
		want string
	}{
		{
			name: "anchor with target",
			el: Anchor{
				Href:    attr.MustURL("href", "https://example.com"),
				Target:  attr.TargetBlank,
				Content: Children(Text("Visit")),
			},
			want: `<a href="https://example.com" target="_blank">Visit</a>`,
		},
		{
			name: "meta charset",
			el:   MetaUTF8(),
			want: `<meta charset="utf-8">`,
		},
		{
			name: "disabled button",
			el: Button{
				Disabled: true,
				Content:  Children(Text("Submit")),
			},
			want: `<button disabled>Submit</button>`,
		},
		{
			name: "base with href and target",
			el: Base{Config: BaseHrefTarget{
				Href:   attr.MustURL("href", "/base/"),
				Target: attr.TargetTop,
			}},
			want: `<base href="/base/" target="_top">`,
		},
		{
			name: "area circle",
			el: Area{
				Shape: circle,
				Alt:   "Sun",
				Href:  attr.MustURL("href", "/sun"),
			},
			want: `<area shape="circle" coords="75,75,75" alt="Sun" href="/sun">`,
		},
		{
			name: "quote in href",
			el:   Anchor{Href: quoted},
			want: `<a href="https://example.com/?q=&quot;x&quot;"></a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderString(t, tt.el))
		})
	}
}

func TestGlobalAttributesFirst(t *testing.T) {
	t.Parallel()

	d1, err := attr.NewData("track", "nav")
	require.NoError(t, err)
	d2, err := attr.NewData("flag", "")
	require.NoError(t, err)

	el := Anchor{
		Global: Global{
			ID:       "home",
			Class:    attr.Class("link primary"),
			Hidden:   attr.HiddenUntilFound,
			TabIndex: attr.IntOf(-1),
			Data:     []attr.Data{d1, d2},
		},
		Href:    attr.MustURL("href", "/"),
		Rel:     attr.NewRel(attr.LinkBookmark),
		Content: Children(Text("Home")),
	}
	assert.Equal(t,
		`<a id="home" class="link primary" hidden="until-found" tabindex="-1" data-track="nav" data-flag href="/" rel="bookmark">Home</a>`,
		renderString(t, el))
}

func TestGlobalStyle(t *testing.T) {
	t.Parallel()

	style, err := attr.ParseStyle(`font-family: "Fira Sans", serif; color: #333`)
	require.NoError(t, err)
	style, err = style.With(attr.Declare("background", attr.Adaptive(attr.MustColor("#ffffff"))))
	require.NoError(t, err)

	el := H1{
		Global:  Global{ID: "title", Style: style, Title: "Heading"},
		Content: Children(Text("Type-safe HTML")),
	}
	out := renderString(t, el)
	assert.Equal(t,
		`<h1 id="title" style="font-family:&quot;Fira Sans&quot;, serif;color:#333;background:light-dark(#ffffff, #cccccc)" title="Heading">Type-safe HTML</h1>`,
		out)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	parsed, err := attr.ParseStyle(doc.Find("h1").AttrOr("style", ""))
	require.NoError(t, err)
	assert.Equal(t, style.Decls(), parsed.Decls())
}

func TestMetaThemeColor(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MetaThemeColor(attr.Color{}))
	assert.Equal(t,
		`<meta name="theme-color" content="#336699">`,
		renderString(t, MetaThemeColor(attr.RGB(0x33, 0x66, 0x99))))
	assert.Equal(t,
		`<meta name="theme-color" content="#ffffff" media="(prefers-color-scheme: light)">`+
			`<meta name="theme-color" content="#202020" media="(prefers-color-scheme: dark)">`,
		renderString(t, MetaThemeColor(attr.LightDark(attr.MustColor("#fff"), attr.MustColor("#202020")))))
	assert.Equal(t,
		`<meta name="color-scheme" content="light dark">`,
		renderString(t, MetaColorScheme("light dark")))
}

func TestEmptyDeclarations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		el   templ.Component
		want string
	}{
		{el: Div{}, want: `<div></div>`},
		{el: Em{}, want: `<em></em>`},
		{el: H3{}, want: `<h3></h3>`},
		{el: Bdo{}, want: `<bdo></bdo>`},
		{el: BR{}, want: `<br>`},
		{el: HR{}, want: `<hr>`},
		{el: WBR{}, want: `<wbr>`},
		{el: Img{}, want: `<img>`},
		{el: Input{}, want: `<input>`},
		{el: Meta{}, want: `<meta>`},
		{el: Link{}, want: `<link>`},
		{el: Col{}, want: `<col>`},
		{el: Source{}, want: `<source>`},
		{el: Track{}, want: `<track>`},
		{el: Embed{}, want: `<embed>`},
		{el: Area{}, want: `<area>`},
		{el: Script{}, want: `<script></script>`},
		{el: Template{}, want: `<template></template>`},
		{el: Slot{}, want: `<slot></slot>`},
		{el: ColGroup{}, want: `<colgroup></colgroup>`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderString(t, tt.el))
		})
	}
}

func TestBooleanFlags(t *testing.T) {
	t.Parallel()

	on := Input{
		Type:     attr.InputTypeCheckbox,
		Name:     "agree",
		Required: true,
		Checked:  true,
	}
	assert.Equal(t, `<input type="checkbox" name="agree" required checked>`, renderString(t, on))

	off := on
	off.Required = false
	off.Checked = false
	assert.Equal(t, `<input type="checkbox" name="agree">`, renderString(t, off))
}

func TestFormSubmission(t *testing.T) {
	t.Parallel()

	el := Button{
		Type: attr.ButtonTypeSubmit,
		Name: "action",
		Submission: Submission{
			Action:     attr.MustURL("formaction", "/drafts"),
			Method:     attr.FormMethodPost,
			NoValidate: true,
		},
		Content: Children(Text("Save draft")),
	}
	assert.Equal(t,
		`<button type="submit" name="action" formaction="/drafts" formmethod="post" formnovalidate>Save draft</button>`,
		renderString(t, el))
}

func TestMetaHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		el   Meta
		want string
	}{
		{
			name: "viewport",
			el:   MetaViewport("width=device-width, initial-scale=1"),
			want: `<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
		{
			name: "description",
			el:   MetaDescription(`Tom & "Jerry"`),
			want: `<meta name="description" content="Tom &amp; &quot;Jerry&quot;">`,
		},
		{
			name: "redirect",
			el:   MetaRedirect(5, attr.MustURL("url", "https://example.com/new")),
			want: `<meta http-equiv="refresh" content="5;url=https://example.com/new">`,
		},
		{
			name: "reload",
			el:   MetaRedirect(-3, attr.URL{}),
			want: `<meta http-equiv="refresh" content="0">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderString(t, tt.el))
		})
	}
}

func TestStylesheet(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`<link href="/site.css" rel="stylesheet">`,
		renderString(t, Stylesheet(attr.MustURL("href", "/site.css"))))
}

func TestMediaControls(t *testing.T) {
	t.Parallel()

	el := Video{
		Src:          attr.MustURL("src", "/clip.mp4"),
		Controls:     true,
		Muted:        true,
		ControlsList: ControlsList{NoDownload: true, NoRemotePlayback: true},
		Content: Children(Track{
			Kind:    attr.TrackKindCaptions,
			Src:     attr.MustURL("src", "/clip.vtt"),
			Default: true,
		}),
	}
	out := renderString(t, el)
	assert.Equal(t,
		`<video src="/clip.mp4" controls muted controlslist="nodownload noremoteplayback">`+
			`<track default kind="captions" src="/clip.vtt"></video>`,
		out)
}

func TestBase_Structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		el   Base
	}{
		{name: "nil config", el: Base{}},
		{name: "href config without href", el: Base{Config: BaseHref{}}},
		{name: "target config without target", el: Base{Config: BaseTarget{}}},
		{name: "empty pair", el: Base{Config: BaseHrefTarget{}}},
		{name: "pair without target", el: Base{Config: BaseHrefTarget{Href: attr.MustURL("href", "/docs/")}}},
		{name: "pair without href", el: Base{Config: BaseHrefTarget{Target: attr.TargetTop}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			err := tt.el.Render(t.Context(), &sb)
			require.ErrorIs(t, err, ErrStructure)
			assert.Empty(t, sb.String())
		})
	}

	href := Base{Config: BaseHref{Href: attr.MustURL("href", "/docs/")}}
	assert.Equal(t, `<base href="/docs/">`, renderString(t, href))
	assert.Equal(t, "/docs/", href.Href().String())
	_, hasTarget := href.Target().AttrValue()
	assert.False(t, hasTarget)

	target := Base{Config: BaseTarget{Target: attr.TargetParent}}
	assert.Equal(t, `<base target="_parent">`, renderString(t, target))

	both := Base{Config: BaseHrefTarget{Href: attr.MustURL("href", "/docs/"), Target: attr.TargetTop}}
	assert.Equal(t, `<base href="/docs/" target="_top">`, renderString(t, both))
}

func TestStructureErrorAbortsDocument(t *testing.T) {
	t.Parallel()

	doc := Document{
		Head: Children(MetaUTF8(), Base{}),
		Body: Children(P{Content: Children(Text("never written"))}),
	}
	var sb strings.Builder
	err := doc.Render(t.Context(), &sb)
	require.ErrorIs(t, err, ErrStructure)
	assert.Contains(t, err.Error(), "failed to render <html> content")
	assert.Empty(t, sb.String())
}

func TestArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		shape  func() (AreaShape, error)
		kind   string
		coords string
	}{
		{
			name:   "rect",
			shape:  func() (AreaShape, error) { return Rect(0, 0, 82, 126) },
			kind:   "rect",
			coords: "0,0,82,126",
		},
		{
			name:   "fractional circle",
			shape:  func() (AreaShape, error) { return Circle(10.5, 20, 0.25) },
			kind:   "circle",
			coords: "10.5,20,0.25",
		},
		{
			name:   "poly",
			shape:  func() (AreaShape, error) { return Poly(0, 0, 10, 0, 5, 8) },
			kind:   "poly",
			coords: "0,0,10,0,5,8",
		},
		{
			name:   "default",
			shape:  func() (AreaShape, error) { return DefaultShape(), nil },
			kind:   "default",
			coords: "",
		},
		{
			name:   "parsed",
			shape:  func() (AreaShape, error) { return ParseAreaShape("CIRC", " 1, 2 ,3") },
			kind:   "circle",
			coords: "1,2,3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shape, err := tt.shape()
			require.NoError(t, err)
			assert.Equal(t, tt.kind, shape.Kind())

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderString(t, Area{Shape: shape})))
			require.NoError(t, err)
			area := doc.Find("area")
			assert.Equal(t, tt.kind, area.AttrOr("shape", ""))
			coords, ok := area.Attr("coords")
			assert.Equal(t, tt.coords != "", ok)
			assert.Equal(t, tt.coords, coords)
		})
	}
}

func TestArea_InvalidShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape func() (AreaShape, error)
	}{
		{name: "inverted rect", shape: func() (AreaShape, error) { return Rect(10, 10, 5, 20) }},
		{name: "zero radius", shape: func() (AreaShape, error) { return Circle(1, 1, 0) }},
		{name: "odd poly", shape: func() (AreaShape, error) { return Poly(0, 0, 1, 1, 2) }},
		{name: "two point poly", shape: func() (AreaShape, error) { return Poly(0, 0, 1, 1) }},
		{name: "parsed wrong count", shape: func() (AreaShape, error) { return ParseAreaShape("rect", "1,2,3") }},
		{name: "parsed garbage", shape: func() (AreaShape, error) { return ParseAreaShape("circle", "a,b,c") }},
		{name: "parsed unknown", shape: func() (AreaShape, error) { return ParseAreaShape("star", "1,2,3") }},
		{name: "parsed default with coords", shape: func() (AreaShape, error) { return ParseAreaShape("default", "1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.shape()
			require.ErrorIs(t, err, attr.ErrInvalid)
		})
	}
}

func TestArea_LinkRequiresAlt(t *testing.T) {
	t.Parallel()

	el := Area{Shape: DefaultShape(), Href: attr.MustURL("href", "/all")}
	_, err := markup.String(t.Context(), el)
	require.ErrorIs(t, err, ErrStructure)

	el.Alt = "Everything"
	assert.Equal(t, `<area shape="default" alt="Everything" href="/all">`, renderString(t, el))
}

func TestArea_CoordsAreCopied(t *testing.T) {
	t.Parallel()

	points := []float64{0, 0, 4, 0, 2, 3}
	shape, err := Poly(points...)
	require.NoError(t, err)
	points[0] = 99
	got := shape.Coords()
	got[1] = 42
	assert.Equal(t, []float64{0, 0, 4, 0, 2, 3}, shape.Coords())
}

func TestColGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		el   ColGroup
		want string
	}{
		{
			name: "span",
			el:   ColGroup{Layout: ColGroupSpan{Span: attr.MustSpan("span", 2)}},
			want: `<colgroup span="2"></colgroup>`,
		},
		{
			name: "columns",
			el: ColGroup{
				Global: Global{Class: attr.Class("totals")},
				Layout: ColGroupColumns{Cols: []Col{{}, {Span: attr.MustSpan("span", 3)}}},
			},
			want: `<colgroup class="totals"><col><col span="3"></colgroup>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderString(t, tt.el))
		})
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	table := Table{Content: Children(
		Caption{Content: Children(Text("Scores"))},
		THead{Content: Children(TR{Content: Children(
			TH{Scope: attr.ScopeCol, Content: Children(Text("Name"))},
			TH{Scope: attr.ScopeCol, Content: Children(Text("Points"))},
		)})},
		TBody{Content: Children(TR{Content: Children(
			TD{Content: Children(Text("Ada"))},
			TD{ColSpan: attr.IntOf(1), Content: Children(Text("10"))},
		)})},
	)}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderString(t, table)))
	require.NoError(t, err)
	assert.Equal(t, "Scores", doc.Find("table > caption").Text())
	assert.Equal(t, 2, doc.Find(`thead th[scope="col"]`).Length())
	assert.Equal(t, "Ada", doc.Find("tbody td").First().Text())
	assert.Equal(t, "1", doc.Find("tbody td").Last().AttrOr("colspan", ""))
}

func TestDocument(t *testing.T) {
	t.Parallel()

	lang, err := attr.ParseLang("lang", "en")
	require.NoError(t, err)

	doc := Document{
		Lang: lang,
		Head: Children(
			MetaUTF8(),
			Title{Content: Children(Text("Hello & welcome"))},
		),
		Body: Children(Main{Content: Children(
			H1{Content: Children(Text("Hello"))},
		)}),
	}
	assert.Equal(t,
		`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>Hello &amp; welcome</title></head>`+
			`<body><main><h1>Hello</h1></main></body></html>`,
		renderString(t, doc))
}

func TestContentHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{
			name: "text escapes",
			c:    Text(`<script>alert("x")</script>`),
			want: `&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;`,
		},
		{
			name: "raw is verbatim",
			c:    Raw(`<b>bold</b>`),
			want: `<b>bold</b>`,
		},
		{
			name: "group skips nil",
			c:    Group(Text("a"), nil, Text("b")),
			want: `ab`,
		},
		{
			name: "markdown",
			c:    Markdown("Some *emphasis*"),
			want: "<p>Some <em>emphasis</em></p>\n",
		},
		{
			name: "markdown drops script",
			c:    Markdown("before\n\n<script>alert(1)</script>\n\nafter"),
			want: "<p>before</p>\n\n<p>after</p>\n",
		},
		{
			name: "sanitized",
			c:    Sanitized(`<p onclick="x()">Hi <iframe src="/x"></iframe></p>`),
			want: `<p>Hi </p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderString(t, tt.c))
		})
	}
}

func TestChildren_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Children())
	assert.Equal(t, `<p></p>`, renderString(t, P{Content: Children()}))
}

func TestElementsInsideTemplComponents(t *testing.T) {
	t.Parallel()

	wrapper := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<section>"); err != nil {
			return err
		}
		if err := (Strong{Content: Children(Text("nested"))}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>")
		return err
	})
	assert.Equal(t, `<div><section><strong>nested</strong></section></div>`, renderString(t, Div{Content: Children(wrapper)}))
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(42)
	for range 50 {
		el := Anchor{
			Global: Global{
				ID:    attr.Text(faker.Word()),
				Title: attr.Text(faker.Sentence(5)),
			},
			Href:    attr.MustURL("href", faker.URL()),
			Target:  attr.TargetSelf,
			Content: Children(Text(faker.Sentence(3))),
		}
		first := renderString(t, el)
		assert.Equal(t, first, renderString(t, el))
	}
}

// Attributes and text survive a parse of the rendered markup unchanged.
func TestRender_ParsesBack(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(2024)
	for i := range 100 {
		title := faker.Sentence(4) + faker.RandomString([]string{`"`, `&`, `<`, `>`, `'`, `&quot;`})
		body := faker.Sentence(6) + faker.RandomString([]string{`</p>`, `&amp;`, `<`, `"`})
		alt := faker.Sentence(2)

		el := Div{
			Global: Global{Title: attr.Text(title)},
			Content: Children(
				P{Content: Children(Text(body))},
				Img{Alt: attr.Text(alt), Src: attr.MustURL("src", "/x.png")},
			),
		}

		nodes, err := html.ParseFragment(strings.NewReader(renderString(t, el)), &html.Node{
			Type:     html.ElementNode,
			Data:     "body",
			DataAtom: atom.Body,
		})
		require.NoError(t, err, i)
		require.Len(t, nodes, 1, i)

		div := goquery.NewDocumentFromNode(nodes[0]).Selection
		require.Equal(t, "div", goquery.NodeName(div), i)
		assert.Equal(t, title, div.AttrOr("title", ""), i)
		assert.Equal(t, body, div.Find("p").Text(), i)
		assert.Equal(t, alt, div.Find("img").AttrOr("alt", ""), i)
	}
}

func TestErrStructure(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: detail", ErrStructure)
	assert.True(t, errors.Is(err, ErrStructure))
	assert.False(t, errors.Is(err, attr.ErrInvalid))
	assert.Equal(t, "invalid element structure: detail", err.Error())
}
