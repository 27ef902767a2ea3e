package markup

import (
	"strings"

	"github.com/a-h/templ"
)

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// EscapeAttr escapes a double-quoted attribute value. Every attribute value
// passes through here exactly once.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// EscapeText escapes character data.
func EscapeText(s string) string {
	return templ.EscapeString(s)
}
