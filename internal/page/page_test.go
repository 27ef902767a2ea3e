package page

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/elemental/internal/config"
	"github.com/stolasapp/elemental/internal/content"
	"github.com/stolasapp/elemental/pkg/element"
	"github.com/stolasapp/elemental/pkg/markup"
)

func TestLayout_Document(t *testing.T) {
	t.Parallel()

	layout, err := NewLayout(config.Default().Document)
	require.NoError(t, err)

	got, err := markup.String(t.Context(), layout.Document(Page{
		Title: "Notes",
		Body:  element.P{Content: element.Children(element.Text("Hi"))},
	}))
	require.NoError(t, err)
	assert.Equal(t,
		`<!doctype html><html lang="en"><head>`+
			`<meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>Notes</title>`+
			`</head><body><p>Hi</p></body></html>`,
		got)
}

func TestLayout_DocumentSettings(t *testing.T) {
	t.Parallel()

	doc := config.Document{
		Lang:        "ar",
		Dir:         "rtl",
		TitleSuffix: " | Docs",
		Description: "Site docs",
		Stylesheets: []string{"/site.css"},
		BaseHref:    "/docs/",
		BaseTarget:  "_top",
		ThemeColor:  "#336699",
	}
	layout, err := NewLayout(doc)
	require.NoError(t, err)

	out, err := markup.String(t.Context(), layout.Document(Page{
		Title:       "Intro",
		Description: "The intro",
	}))
	require.NoError(t, err)

	html, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	root := html.Find("html")
	assert.Equal(t, "ar", root.AttrOr("lang", ""))
	assert.Equal(t, "rtl", root.AttrOr("dir", ""))
	assert.Equal(t, "Intro | Docs", html.Find("title").Text())
	assert.Equal(t, "The intro", html.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Equal(t, "/docs/", html.Find("base").AttrOr("href", ""))
	assert.Equal(t, "_top", html.Find("base").AttrOr("target", ""))
	assert.Equal(t, "/site.css", html.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	assert.Equal(t, 0, html.Find("meta[charset]").Length())
	assert.Equal(t, "light dark", html.Find(`meta[name="color-scheme"]`).AttrOr("content", ""))

	themes := html.Find(`meta[name="theme-color"]`)
	require.Equal(t, 2, themes.Length())
	assert.Equal(t, "#336699", themes.Eq(0).AttrOr("content", ""))
	assert.Equal(t, "#29527a", themes.Eq(1).AttrOr("content", ""))
	assert.Equal(t, "(prefers-color-scheme: dark)", themes.Eq(1).AttrOr("media", ""))
}

func TestNewLayout_InvalidSettings(t *testing.T) {
	t.Parallel()

	_, err := NewLayout(config.Document{BaseTarget: "_unknown"})
	require.Error(t, err)
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		path string
		want string
	}{
		{
			name: "first h1",
			body: "<p>x</p><h1> Getting  Started </h1><h1>Other</h1>",
			path: "docs/intro.md",
			want: "Getting  Started",
		},
		{
			name: "file name without h1",
			body: "<h2>Sub</h2>",
			path: "docs/release-notes.md",
			want: "release-notes",
		},
		{
			name: "empty h1 ignored",
			body: "<h1>  </h1>",
			path: "a.txt",
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Title([]byte(tt.body), tt.path))
		})
	}
}

func TestLayout_Convert(t *testing.T) {
	t.Parallel()

	layout, err := NewLayout(config.Document{})
	require.NoError(t, err)

	doc, err := layout.Convert("guide/setup.md", []byte("# Setup\n\nRun **make**."))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(t.Context(), &sb, doc, content.FormatHTML))
	assert.Equal(t,
		`<!doctype html><html><head><title>Setup</title></head><body>`+
			"<h1 id=\"setup\">Setup</h1>\n<p>Run <strong>make</strong>.</p>\n"+
			`</body></html>`,
		sb.String())

	sb.Reset()
	require.NoError(t, Render(t.Context(), &sb, doc, content.FormatMarkdown))
	assert.Equal(t, "# Setup\n\nRun **make**.", sb.String())
}

func TestLayout_ConvertUnsupported(t *testing.T) {
	t.Parallel()

	layout, err := NewLayout(config.Document{})
	require.NoError(t, err)

	_, err = layout.Convert("logo.png", []byte{0x89, 'P', 'N', 'G'})
	require.ErrorContains(t, err, "failed to convert logo.png")
}
