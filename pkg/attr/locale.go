package attr

import (
	"mime"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
)

// Lang is a BCP 47 language tag, used by lang, hreflang, and srclang.
type Lang struct {
	tag string
}

// ParseLang validates s as a language tag for the named attribute. The tag is
// stored in canonical form, so "en-us" renders as "en-US".
func ParseLang(attribute, s string) (Lang, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Lang{}, invalidCause(attribute, s, err)
	}
	return Lang{tag: tag.String()}, nil
}

// LangOf returns the language tag as a value.
func LangOf(tag language.Tag) Lang {
	if tag == language.Und {
		return Lang{}
	}
	return Lang{tag: tag.String()}
}

// String returns the tag text.
func (l Lang) String() string { return l.tag }

// AttrValue satisfies [Value].
func (l Lang) AttrValue() (string, bool) { return l.tag, l.tag != "" }

// Charset is a character encoding label known to the WHATWG Encoding
// standard, stored under its canonical name.
type Charset struct {
	name string
}

// CharsetUTF8 is the utf-8 encoding, the only one valid in new documents.
var CharsetUTF8 = Charset{name: "utf-8"}

// ParseCharset validates s as an encoding label.
func ParseCharset(s string) (Charset, error) {
	enc, err := htmlindex.Get(s)
	if err != nil {
		return Charset{}, invalidCause("charset", s, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return Charset{}, invalidCause("charset", s, err)
	}
	return Charset{name: name}, nil
}

// String returns the canonical encoding name.
func (c Charset) String() string { return c.name }

// AttrValue satisfies [Value].
func (c Charset) AttrValue() (string, bool) { return c.name, c.name != "" }

// MediaType is a MIME type such as text/css.
type MediaType struct {
	value string
}

// ParseMediaType validates s as a MIME type for the named attribute and
// stores it in normalized form.
func ParseMediaType(attribute, s string) (MediaType, error) {
	mediaType, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaType{}, invalidCause(attribute, s, err)
	}
	formatted := mime.FormatMediaType(mediaType, params)
	if formatted == "" {
		return MediaType{}, invalid(attribute, s, "media type cannot be formatted")
	}
	return MediaType{value: formatted}, nil
}

// String returns the media type text.
func (m MediaType) String() string { return m.value }

// AttrValue satisfies [Value].
func (m MediaType) AttrValue() (string, bool) { return m.value, m.value != "" }
