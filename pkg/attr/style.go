package attr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Style is the value of a style attribute: CSS declarations rendered in the
// order they were first declared, as "property:value" pairs joined by ";".
// The zero value is absent.
type Style struct {
	decls []Decl
}

// Decl is one CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Declare returns a declaration of property set to a typed value such as a
// [Color].
func Declare(property string, value fmt.Stringer) Decl {
	return Decl{Property: property, Value: value.String()}
}

// StyleOf validates decls into a style. Property names are case-insensitive
// except custom properties (--name). Values are tokenized as CSS; stray
// semicolons, braces, unbalanced parentheses, and unclosed strings or
// comments are rejected. A property declared twice keeps its first position
// and takes the last value.
func StyleOf(decls ...Decl) (Style, error) {
	var out []Decl
	for _, d := range decls {
		property, err := cssProperty(d.Property)
		if err != nil {
			return Style{}, err
		}
		value, err := cssValue(property, d.Value)
		if err != nil {
			return Style{}, err
		}
		if i := slices.IndexFunc(out, func(o Decl) bool { return o.Property == property }); i >= 0 {
			out[i].Value = value
			continue
		}
		out = append(out, Decl{Property: property, Value: value})
	}
	return Style{decls: out}, nil
}

// MustStyle is like [StyleOf] but panics on invalid declarations.
func MustStyle(decls ...Decl) Style {
	s, err := StyleOf(decls...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseStyle parses the text of a style attribute, such as
// "color: red; margin-top: 10px".
func ParseStyle(s string) (Style, error) {
	var (
		decls     []Decl
		property  strings.Builder
		value     strings.Builder
		inValue   bool
		depth     int
		flushDecl = func() error {
			p, v := strings.TrimSpace(property.String()), value.String()
			hadColon := inValue
			property.Reset()
			value.Reset()
			inValue = false
			switch {
			case hadColon:
				decls = append(decls, Decl{Property: p, Value: v})
			case p != "":
				return invalid("style", s, "declaration without a colon")
			}
			return nil
		}
	)

	sc := scanner.New(s)
	for tok := sc.Next(); tok.Type != scanner.TokenEOF; tok = sc.Next() {
		switch {
		case tok.Type == scanner.TokenError:
			return Style{}, invalid("style", s, tok.Value)
		case tok.Type == scanner.TokenFunction, isChar(tok, "("):
			depth++
		case isChar(tok, ")"):
			depth--
		case isChar(tok, ";") && depth == 0:
			if err := flushDecl(); err != nil {
				return Style{}, err
			}
			continue
		case isChar(tok, ":") && depth == 0 && !inValue:
			inValue = true
			continue
		}
		if inValue {
			value.WriteString(tok.Value)
		} else {
			property.WriteString(tok.Value)
		}
	}
	if err := flushDecl(); err != nil {
		return Style{}, err
	}
	return StyleOf(decls...)
}

// With returns a copy of s with decls added under the same rules as
// [StyleOf].
func (s Style) With(decls ...Decl) (Style, error) {
	return StyleOf(append(slices.Clone(s.decls), decls...)...)
}

// Get returns the value of property, if declared.
func (s Style) Get(property string) (string, bool) {
	if !strings.HasPrefix(property, "--") {
		property = strings.ToLower(property)
	}
	for _, d := range s.decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Decls returns the declarations in render order.
func (s Style) Decls() []Decl { return slices.Clone(s.decls) }

// AttrValue satisfies [Value].
func (s Style) AttrValue() (string, bool) {
	if len(s.decls) == 0 {
		return "", false
	}
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.Property + ":" + d.Value
	}
	return strings.Join(parts, ";"), true
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}

func cssProperty(p string) (string, error) {
	name := strings.TrimSpace(p)
	ident := name
	if strings.HasPrefix(name, "--") {
		ident = name[1:]
	} else {
		name = strings.ToLower(name)
		ident = name
	}
	sc := scanner.New(ident)
	tok := sc.Next()
	if tok.Type != scanner.TokenIdent || tok.Value != ident || sc.Next().Type != scanner.TokenEOF {
		return "", invalid("style", p, "not a CSS property name")
	}
	return name, nil
}

// cssValue checks v as a declaration value and normalizes its whitespace.
// Comments become whitespace.
func cssValue(property, v string) (string, error) {
	var (
		sb    strings.Builder
		depth int
		space bool
	)
	sc := scanner.New(v)
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return "", invalid(property, v, "unbalanced parentheses")
			}
			if sb.Len() == 0 {
				return "", invalid(property, v, "empty CSS value")
			}
			return sb.String(), nil
		case scanner.TokenError:
			return "", invalid(property, v, tok.Value)
		case scanner.TokenS, scanner.TokenComment:
			space = true
			continue
		case scanner.TokenAtKeyword, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
			return "", invalid(property, v, fmt.Sprintf("unexpected %q", tok.Value))
		case scanner.TokenFunction:
			depth++
		case scanner.TokenChar:
			switch tok.Value {
			case "(":
				depth++
			case ")":
				if depth--; depth < 0 {
					return "", invalid(property, v, "unbalanced parentheses")
				}
			case ";", "{", "}", `\`:
				return "", invalid(property, v, fmt.Sprintf("unexpected %q", tok.Value))
			}
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteString(tok.Value)
	}
}
