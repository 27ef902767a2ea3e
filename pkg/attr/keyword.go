package attr

import "strings"

type keywordKind interface{ ~uint8 }

// keywords maps the constants of a closed enumeration to their attribute
// text. Index zero is the absent value.
type keywords[K keywordKind] struct {
	attribute string
	names     []string
}

func newKeywords[K keywordKind](attribute string, names ...string) keywords[K] {
	return keywords[K]{
		attribute: attribute,
		names:     append([]string{""}, names...),
	}
}

func (kw keywords[K]) text(k K) (string, bool) {
	if k == 0 || int(k) >= len(kw.names) {
		return "", false
	}
	return kw.names[k], true
}

func (kw keywords[K]) name(k K) string {
	s, _ := kw.text(k)
	return s
}

// parse matches s ASCII case-insensitively, as HTML does for enumerated
// attributes.
func (kw keywords[K]) parse(s string) (K, error) {
	for i := 1; i < len(kw.names); i++ {
		if strings.EqualFold(kw.names[i], s) {
			return K(i), nil
		}
	}
	return 0, invalid(kw.attribute, s, "unknown keyword")
}
