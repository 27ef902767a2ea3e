package content

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// minDetectConfidence is the chardet confidence below which its guess is
// ignored.
const minDetectConfidence = 50

// UTF8Transformer decodes input to UTF-8 and drops any byte order mark.
//
// The encoding is taken from, in order: a byte order mark, the charset
// parameter of contentType, and a <meta charset> in HTML. Failing those,
// input that is already valid UTF-8 is kept, and text sources are run
// through statistical detection before falling back to windows-1252.
func UTF8Transformer(contentType string) TransformerFunc {
	detectable := !strings.HasPrefix(contentType, MediaTypeHTML)

	return func(input []byte) ([]byte, error) {
		enc, name, certain := charset.DetermineEncoding(input, contentType)
		if !certain {
			switch {
			case utf8.Valid(input):
				enc, name = unicode.UTF8, "utf-8"
			case detectable:
				if detected, detectedName := detectCharset(input); detected != nil {
					enc, name = detected, detectedName
				}
			}
			slog.Debug("guessed input encoding",
				slog.String("encoding", name),
				slog.String("content_type", contentType))
		}

		out, err := decode(input, enc)
		if err != nil {
			return nil, err
		}
		return bytes.TrimPrefix(out, byteOrderMark), nil
	}
}

func detectCharset(input []byte) (encoding.Encoding, string) {
	result, err := chardet.NewTextDetector().DetectBest(input)
	if err != nil || result.Confidence < minDetectConfidence {
		return nil, ""
	}
	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		// chardet knows charsets the WHATWG index does not.
		return nil, ""
	}
	slog.Debug("detected charset",
		slog.String("charset", result.Charset),
		slog.Int("confidence", result.Confidence))
	return enc, result.Charset
}

func decode(input []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == encoding.Nop || enc == unicode.UTF8 {
		return input, nil
	}
	out, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(input)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode input to UTF-8: %w", err)
	}
	return out, nil
}
