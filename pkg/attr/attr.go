// Package attr defines the typed values HTML attributes accept.
//
// Every value type satisfies [Value]: it reports the text to render and
// whether the attribute is present at all. The zero value of each type is
// absent, so element structs can leave any attribute unset. Values with an
// open domain are built through Parse* constructors that reject bad input with
// a [ValidationError]; closed keyword sets are exposed as named constants.
package attr

import "strings"

// Value is any attribute value. A value that is not present is omitted from
// the rendered tag. A present value with empty text renders as a bare
// attribute name.
type Value interface {
	AttrValue() (text string, present bool)
}

// Attr binds an attribute name to its value.
type Attr struct {
	Name  string
	Value Value
}

// Named binds name to value.
func Named(name string, value Value) Attr {
	return Attr{Name: name, Value: value}
}

// List is an ordered set of attributes. Order is the order of declaration,
// which is also the render order.
type List []Attr

// With returns a new list holding l followed by attrs.
func (l List) With(attrs ...Attr) List {
	out := make(List, 0, len(l)+len(attrs))
	out = append(out, l...)
	return append(out, attrs...)
}

// Present returns only the attributes that render.
func (l List) Present() List {
	out := make(List, 0, len(l))
	for _, a := range l {
		if a.Value == nil {
			continue
		}
		if _, ok := a.Value.AttrValue(); ok {
			out = append(out, a)
		}
	}
	return out
}

// Data is a custom data-* attribute.
type Data struct {
	name  string
	value string
}

// NewData returns the data-name attribute. The name must be non-empty, must
// not contain ASCII uppercase letters, and must be usable as an attribute name.
func NewData(name, value string) (Data, error) {
	if name == "" {
		return Data{}, invalid("data-*", name, "empty name")
	}
	if strings.ContainsFunc(name, func(r rune) bool {
		return ('A' <= r && r <= 'Z') || isAttrNameBreak(r)
	}) {
		return Data{}, invalid("data-"+name, name, "name must be lowercase without spaces or markup characters")
	}
	return Data{name: name, value: value}, nil
}

// Attr returns the data attribute bound to its full name.
func (d Data) Attr() Attr {
	return Named("data-"+d.name, d)
}

// Name returns the data attribute name without the data- prefix.
func (d Data) Name() string { return d.name }

// AttrValue satisfies [Value].
func (d Data) AttrValue() (string, bool) { return d.value, d.name != "" }

func isAttrNameBreak(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r', '"', '\'', '<', '>', '/', '=':
		return true
	}
	return r < 0x20 || r == 0x7f
}
