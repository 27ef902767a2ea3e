package content

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// ExtractHTMLBody keeps only the inner HTML of the body of a full document.
// Fragments without a body tag pass through unchanged.
func ExtractHTMLBody() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		if !bytes.Contains(bytes.ToLower(input), []byte("<body")) {
			return input, nil
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML document: %w", err)
		}
		inner, err := doc.Find("body").First().Html()
		if err != nil {
			return nil, fmt.Errorf("failed to extract HTML body: %w", err)
		}
		return []byte(inner), nil
	}
}

// SanitizeHTML strips elements and attributes outside the policy used for
// untrusted page content.
func SanitizeHTML() TransformerFunc {
	policy := sanitizer()
	return func(input []byte) ([]byte, error) {
		return policy.SanitizeBytes(input), nil
	}
}

var (
	// codeLanguageClass matches the class goldmark puts on fenced code blocks.
	codeLanguageClass = regexp.MustCompile(`^language-[\w+#-]+$`)

	// detailsOpen matches the values of the open attribute of details.
	detailsOpen = regexp.MustCompile(`(?i)^(|open)$`)
)

// sanitizer builds on [bluemonday.UGCPolicy] for document content:
//
//   - External links open in a new tab without referrer
//   - Images and figures are allowed, but only with http(s) or relative URLs
//   - Fenced code keeps its language class for syntax highlighters
//   - No forms, media players, or embedded frames
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardAttributes()
	policy.AllowStandardURLs()
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	policy.AllowElements(
		"abbr", "address", "article", "aside",
		"b", "bdi", "bdo", "br",
		"caption", "cite", "code",
		"dd", "dfn", "div", "dl", "dt",
		"em",
		"figcaption", "figure", "footer",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr",
		"i", "kbd",
		"main", "mark",
		"nav",
		"p", "pre",
		"rp", "rt", "ruby",
		"s", "samp", "section", "small", "span", "strong", "sub", "summary", "sup",
		"u",
		"var",
		"wbr",
	)

	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("cite").OnElements("blockquote", "q", "del", "ins")
	policy.AllowAttrs("datetime").
		Matching(bluemonday.ISO8601).
		OnElements("del", "ins", "time")
	policy.AllowAttrs("value").OnElements("data")
	policy.AllowElements("blockquote", "q", "del", "ins", "time", "data")

	policy.AllowImages()
	policy.AllowAttrs("loading").Matching(regexp.MustCompile(`^(eager|lazy)$`)).OnElements("img")

	policy.AllowAttrs("class").Matching(codeLanguageClass).OnElements("code")
	policy.AllowAttrs("open").Matching(detailsOpen).OnElements("details")
	policy.AllowElements("details")

	policy.AllowLists()
	policy.AllowTables()

	return policy
}
