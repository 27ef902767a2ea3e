// Package page wraps rendered content in a complete document using the
// configured document settings.
package page

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"

	"github.com/stolasapp/elemental/internal/config"
	"github.com/stolasapp/elemental/pkg/element"
)

// Layout builds documents sharing the same head settings.
type Layout struct {
	attrs       config.DocumentAttrs
	viewport    string
	description string
	titleSuffix string
}

// NewLayout validates the document settings and returns a layout applying
// them.
func NewLayout(doc config.Document) (*Layout, error) {
	attrs, err := doc.Parse()
	if err != nil {
		return nil, err
	}
	return &Layout{
		attrs:       attrs,
		viewport:    doc.Viewport,
		description: doc.Description,
		titleSuffix: doc.TitleSuffix,
	}, nil
}

// Page is the content of one document.
type Page struct {
	Title string
	// Description overrides the layout's description when set.
	Description string
	Body        templ.Component
}

// Document returns the complete document for p.
func (l *Layout) Document(p Page) element.Document {
	return element.Document{
		Lang: l.attrs.Lang,
		Dir:  l.attrs.Dir,
		Head: element.Children(l.head(p)...),
		Body: element.Children(p.Body),
	}
}

func (l *Layout) head(p Page) []templ.Component {
	var head []templ.Component
	if _, ok := l.attrs.Charset.AttrValue(); ok {
		head = append(head, element.Meta{Charset: l.attrs.Charset})
	}
	if l.viewport != "" {
		head = append(head, element.MetaViewport(l.viewport))
	}
	if title := p.Title + l.titleSuffix; title != "" {
		head = append(head, element.Title{Content: element.Children(element.Text(title))})
	}
	description := l.description
	if p.Description != "" {
		description = p.Description
	}
	if description != "" {
		head = append(head, element.MetaDescription(description))
	}
	if base, ok := l.base(); ok {
		head = append(head, base)
	}
	if theme := element.MetaThemeColor(l.attrs.ThemeColor); theme != nil {
		head = append(head, element.MetaColorScheme("light dark"), theme)
	}
	for _, href := range l.attrs.Stylesheets {
		head = append(head, element.Stylesheet(href))
	}
	return head
}

func (l *Layout) base() (element.Base, bool) {
	_, hasHref := l.attrs.BaseHref.AttrValue()
	_, hasTarget := l.attrs.BaseTarget.AttrValue()
	switch {
	case hasHref && hasTarget:
		return element.Base{Config: element.BaseHrefTarget{Href: l.attrs.BaseHref, Target: l.attrs.BaseTarget}}, true
	case hasHref:
		return element.Base{Config: element.BaseHref{Href: l.attrs.BaseHref}}, true
	case hasTarget:
		return element.Base{Config: element.BaseTarget{Target: l.attrs.BaseTarget}}, true
	default:
		return element.Base{}, false
	}
}

// Title picks a page title for a body fragment: the text of its first h1,
// or else the source file name without extension.
func Title(body []byte, sourcePath string) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err == nil {
		if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
			return h1
		}
	}
	name := filepath.Base(sourcePath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FromSource returns the page for a converted source document. The body is
// trusted as is, so it must already be sanitized.
func FromSource(body []byte, sourcePath string) Page {
	return Page{
		Title: Title(body, sourcePath),
		Body:  element.Raw(string(body)),
	}
}
