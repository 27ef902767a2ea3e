package attr

import (
	"net/url"
	"strings"
)

// URL is a validated URL value for attributes such as href, src, and cite.
// The text is kept exactly as given.
type URL struct {
	raw string
}

// ParseURL validates s as a URL for the named attribute. Empty input,
// surrounding whitespace, and strings net/url rejects all fail.
func ParseURL(attribute, s string) (URL, error) {
	if s == "" {
		return URL{}, invalid(attribute, s, "empty URL")
	}
	if strings.TrimSpace(s) != s {
		return URL{}, invalid(attribute, s, "URL has surrounding whitespace")
	}
	if _, err := url.Parse(s); err != nil {
		return URL{}, invalidCause(attribute, s, err)
	}
	return URL{raw: s}, nil
}

// MustURL is like [ParseURL] but panics on invalid input. It is intended for
// URLs known at compile time.
func MustURL(attribute, s string) URL {
	u, err := ParseURL(attribute, s)
	if err != nil {
		panic(err)
	}
	return u
}

// PathURL returns a URL for a plain path, percent-encoding any characters that
// would otherwise be read as escapes, a query, or a fragment. An empty path is
// absent.
func PathURL(path string) URL {
	if path == "" {
		return URL{}
	}
	return URL{raw: (&url.URL{Path: path}).String()}
}

// Email returns a mailto: URL. Subject and body are optional.
func Email(address, subject, body string) (URL, error) {
	if !strings.Contains(address, "@") || strings.ContainsFunc(address, isURLBreak) {
		return URL{}, invalid("href", address, "not an email address")
	}
	var query []string
	if subject != "" {
		query = append(query, "subject="+escapeQueryValue(subject))
	}
	if body != "" {
		query = append(query, "body="+escapeQueryValue(body))
	}
	raw := "mailto:" + address
	if len(query) > 0 {
		raw += "?" + strings.Join(query, "&")
	}
	return URL{raw: raw}, nil
}

// Tel returns a tel: URL keeping only digits and a leading plus sign.
func Tel(number string) (URL, error) {
	digits, ok := phoneDigits(number)
	if !ok {
		return URL{}, invalid("href", number, "not a phone number")
	}
	return URL{raw: "tel:" + digits}, nil
}

// SMS returns an sms: URL with an optional message body.
func SMS(number, body string) (URL, error) {
	digits, ok := phoneDigits(number)
	if !ok {
		return URL{}, invalid("href", number, "not a phone number")
	}
	raw := "sms:" + digits
	if body != "" {
		raw += "?body=" + escapeQueryValue(body)
	}
	return URL{raw: raw}, nil
}

// Fragment returns base with fragment appended. A leading # on fragment is
// tolerated.
func Fragment(base, fragment string) (URL, error) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return URL{}, invalid("href", fragment, "empty fragment")
	}
	return ParseURL("href", base+"#"+fragment)
}

// Anchor returns a same-document #id URL. A leading # on id is tolerated.
func Anchor(id string) (URL, error) {
	return Fragment("", id)
}

// String returns the URL text.
func (u URL) String() string { return u.raw }

// AttrValue satisfies [Value].
func (u URL) AttrValue() (string, bool) { return u.raw, u.raw != "" }

// URLList is a space-separated list of URLs, as used by ping.
type URLList struct {
	urls []URL
}

// NewURLList collects urls, skipping absent ones.
func NewURLList(urls ...URL) URLList {
	list := make([]URL, 0, len(urls))
	for _, u := range urls {
		if u.raw != "" {
			list = append(list, u)
		}
	}
	return URLList{urls: list}
}

// ParseURLList validates each whitespace-separated URL in s.
func ParseURLList(attribute, s string) (URLList, error) {
	fields := strings.Fields(s)
	urls := make([]URL, 0, len(fields))
	for _, f := range fields {
		u, err := ParseURL(attribute, f)
		if err != nil {
			return URLList{}, err
		}
		urls = append(urls, u)
	}
	return URLList{urls: urls}, nil
}

// AttrValue satisfies [Value].
func (l URLList) AttrValue() (string, bool) {
	parts := make([]string, len(l.urls))
	for i, u := range l.urls {
		parts[i] = u.raw
	}
	return strings.Join(parts, " "), len(parts) > 0
}

func phoneDigits(number string) (string, bool) {
	var sb strings.Builder
	for i, r := range strings.TrimSpace(number) {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' && i == 0:
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	return digits, strings.TrimPrefix(digits, "+") != ""
}

func isURLBreak(r rune) bool {
	return r <= ' ' || r == 0x7f
}

// queryUnescaped are the non-alphanumeric bytes left as-is in mailto and sms
// query values.
const queryUnescaped = "-._~!$'()*,;:@/"

func escapeQueryValue(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := range len(s) {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			strings.IndexByte(queryUnescaped, c) >= 0:
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(hex[c>>4])
			sb.WriteByte(hex[c&0x0f])
		}
	}
	return sb.String()
}
