package attr

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Flag is a boolean presence attribute such as disabled or controls. True
// renders the bare attribute name; false omits it.
type Flag bool

// AttrValue satisfies [Value].
func (f Flag) AttrValue() (string, bool) { return "", bool(f) }

// Text is a free-form text value. The empty string is absent.
type Text string

// AttrValue satisfies [Value].
func (t Text) AttrValue() (string, bool) { return string(t), t != "" }

// Int is an optional integer value.
type Int struct {
	n   int
	set bool
}

// IntOf returns n as a present value.
func IntOf(n int) Int { return Int{n: n, set: true} }

// ParseInt parses a valid integer for the named attribute.
func ParseInt(attribute, s string) (Int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Int{}, invalidCause(attribute, s, err)
	}
	return IntOf(n), nil
}

// Get returns the integer and whether it is set.
func (i Int) Get() (int, bool) { return i.n, i.set }

// AttrValue satisfies [Value].
func (i Int) AttrValue() (string, bool) {
	if !i.set {
		return "", false
	}
	return strconv.Itoa(i.n), true
}

// Number is an optional floating-point value.
type Number struct {
	f   float64
	set bool
}

// NumberOf returns f as a present value. NaN and infinities are not valid
// floating-point numbers in HTML.
func NumberOf(attribute string, f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, invalid(attribute, strconv.FormatFloat(f, 'g', -1, 64), "not a finite number")
	}
	return Number{f: f, set: true}, nil
}

// ParseNumber parses a valid floating-point number for the named attribute.
func ParseNumber(attribute, s string) (Number, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, invalidCause(attribute, s, err)
	}
	return NumberOf(attribute, f)
}

// Get returns the number and whether it is set.
func (n Number) Get() (float64, bool) { return n.f, n.set }

// AttrValue satisfies [Value].
func (n Number) AttrValue() (string, bool) {
	if !n.set {
		return "", false
	}
	return formatNumber(n.f), true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Span limits.
const (
	minSpan = 1
	maxSpan = 1000
)

// Span is a column span count in the range 1 to 1000. The zero value is
// absent; other values come from [SpanOf] or [ParseSpan].
type Span struct {
	n uint16
}

// SpanOf validates n as a span count for the named attribute.
func SpanOf(attribute string, n int) (Span, error) {
	if n < minSpan || n > maxSpan {
		return Span{}, invalid(attribute, strconv.Itoa(n), "span must be between 1 and 1000")
	}
	return Span{n: uint16(n)}, nil
}

// MustSpan is like [SpanOf] but panics on an out of range count.
func MustSpan(attribute string, n int) Span {
	s, err := SpanOf(attribute, n)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSpan parses a span count for the named attribute.
func ParseSpan(attribute, s string) (Span, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Span{}, invalidCause(attribute, s, err)
	}
	return SpanOf(attribute, n)
}

// Get returns the count, or 0 when absent.
func (s Span) Get() int { return int(s.n) }

// AttrValue satisfies [Value].
func (s Span) AttrValue() (string, bool) {
	if s.n == 0 {
		return "", false
	}
	return strconv.Itoa(int(s.n)), true
}

// Tokens is an ordered, space-separated set of tokens. An empty set is
// absent.
type Tokens struct {
	list []string
}

// ParseTokens validates each token for the named attribute. Tokens must be
// non-empty and must not contain whitespace.
func ParseTokens(attribute string, tokens ...string) (Tokens, error) {
	list := make([]string, 0, len(tokens))
	for _, tkn := range tokens {
		if tkn == "" || strings.ContainsFunc(tkn, unicode.IsSpace) {
			return Tokens{}, invalid(attribute, tkn, "token must be non-empty without whitespace")
		}
		list = append(list, tkn)
	}
	return Tokens{list: list}, nil
}

// Class splits s on whitespace into class names.
func Class(s string) Tokens {
	return Tokens{list: strings.Fields(s)}
}

// Values returns a copy of the tokens.
func (t Tokens) Values() []string {
	return append([]string(nil), t.list...)
}

// AttrValue satisfies [Value].
func (t Tokens) AttrValue() (string, bool) {
	return strings.Join(t.list, " "), len(t.list) > 0
}
