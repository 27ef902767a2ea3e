package content

import (
	"bytes"
	"regexp"

	"github.com/a-h/templ"
)

// paragraphBreak matches a blank line, possibly holding whitespace.
var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n\s*`)

// TextToHTML wraps plain text in paragraphs. Blank lines separate paragraphs
// and single line breaks are kept as <br>.
func TextToHTML() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		input = bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
		input = bytes.ReplaceAll(input, []byte("\r"), []byte("\n"))
		input = bytes.TrimSpace(input)
		if len(input) == 0 {
			return nil, nil
		}

		var out bytes.Buffer
		for _, para := range paragraphBreak.Split(string(input), -1) {
			out.WriteString("<p>")
			for i, line := range bytes.Split([]byte(para), []byte("\n")) {
				if i > 0 {
					out.WriteString("<br>\n")
				}
				out.WriteString(templ.EscapeString(string(bytes.TrimSpace(line))))
			}
			out.WriteString("</p>\n")
		}
		return out.Bytes(), nil
	}
}
