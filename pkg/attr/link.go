package attr

import (
	"strings"
)

// Target is a browsing context: one of the underscore keywords or an
// author-defined name.
type Target struct {
	name string
}

// Target keywords.
var (
	TargetSelf        = Target{name: "_self"}
	TargetBlank       = Target{name: "_blank"}
	TargetParent      = Target{name: "_parent"}
	TargetTop         = Target{name: "_top"}
	TargetUnfencedTop = Target{name: "_unfencedTop"}
)

var targetKeywords = []Target{TargetSelf, TargetBlank, TargetParent, TargetTop, TargetUnfencedTop}

// ParseTarget parses a target keyword or a browsing context name. Names
// starting with an underscore are reserved for the keywords.
func ParseTarget(s string) (Target, error) {
	for _, kw := range targetKeywords {
		if strings.EqualFold(kw.name, s) {
			return kw, nil
		}
	}
	switch {
	case s == "":
		return Target{}, invalid("target", s, "empty browsing context name")
	case strings.HasPrefix(s, "_"):
		return Target{}, invalid("target", s, "unknown keyword")
	case strings.ContainsFunc(s, isURLBreak):
		return Target{}, invalid("target", s, "browsing context name contains whitespace")
	}
	return Target{name: s}, nil
}

// String returns the target text.
func (t Target) String() string { return t.name }

// AttrValue satisfies [Value].
func (t Target) AttrValue() (string, bool) { return t.name, t.name != "" }

// LinkType is a registered link relation.
type LinkType uint8

// LinkType values.
const (
	LinkAlternate LinkType = iota + 1
	LinkAuthor
	LinkBookmark
	LinkCanonical
	LinkDNSPrefetch
	LinkExternal
	LinkHelp
	LinkIcon
	LinkLicense
	LinkManifest
	LinkMe
	LinkModulePreload
	LinkNext
	LinkNofollow
	LinkNoopener
	LinkNoreferrer
	LinkOpener
	LinkPreconnect
	LinkPrefetch
	LinkPreload
	LinkPrev
	LinkPrivacyPolicy
	LinkSearch
	LinkStylesheet
	LinkTag
	LinkTermsOfService
)

var linkTypeKeywords = newKeywords[LinkType](
	"rel",
	"alternate",
	"author",
	"bookmark",
	"canonical",
	"dns-prefetch",
	"external",
	"help",
	"icon",
	"license",
	"manifest",
	"me",
	"modulepreload",
	"next",
	"nofollow",
	"noopener",
	"noreferrer",
	"opener",
	"preconnect",
	"prefetch",
	"preload",
	"prev",
	"privacy-policy",
	"search",
	"stylesheet",
	"tag",
	"terms-of-service",
)

func (t LinkType) String() string { return linkTypeKeywords.name(t) }

// Rel is a space-separated list of link relations.
type Rel struct {
	tokens []string
}

// SecureExternal marks a link to another site that gets no opener and no
// referrer.
var SecureExternal = NewRel(LinkExternal, LinkNoopener, LinkNoreferrer)

// NewRel returns a relation list of registered link types.
func NewRel(types ...LinkType) Rel {
	tokens := make([]string, 0, len(types))
	for _, t := range types {
		if name, ok := linkTypeKeywords.text(t); ok {
			tokens = append(tokens, name)
		}
	}
	return Rel{tokens: tokens}
}

// ParseRel parses a whitespace-separated relation list. Unregistered
// extension types are accepted when they consist of lowercase letters,
// digits, and the characters - . : _ only.
func ParseRel(s string) (Rel, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Rel{}, invalid("rel", s, "empty relation list")
	}
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t, err := linkTypeKeywords.parse(f); err == nil {
			tokens = append(tokens, t.String())
			continue
		}
		if strings.ContainsFunc(f, func(r rune) bool { return !isRelExtensionRune(r) }) {
			return Rel{}, invalid("rel", f, "not a link type")
		}
		tokens = append(tokens, f)
	}
	return Rel{tokens: tokens}, nil
}

// Has reports whether the list contains the link type.
func (r Rel) Has(t LinkType) bool {
	name := t.String()
	for _, tkn := range r.tokens {
		if tkn == name {
			return true
		}
	}
	return false
}

// AttrValue satisfies [Value].
func (r Rel) AttrValue() (string, bool) {
	return strings.Join(r.tokens, " "), len(r.tokens) > 0
}

func isRelExtensionRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	}
	return strings.ContainsRune("-.:_", r)
}

// Download marks a link as a download, optionally suggesting a file name.
type Download struct {
	file string
	set  bool
}

// DownloadAny lets the browser pick the file name.
var DownloadAny = Download{set: true}

// DownloadFile suggests a file name. Path separators are not allowed.
func DownloadFile(name string) (Download, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return Download{}, invalid("download", name, "not a file name")
	}
	return Download{file: name, set: true}, nil
}

// AttrValue satisfies [Value].
func (d Download) AttrValue() (string, bool) { return d.file, d.set }

// Hidden hides an element, either fully or until found by find-in-page.
type Hidden uint8

// Hidden values.
const (
	HiddenHidden Hidden = iota + 1
	HiddenUntilFound
)

var hiddenKeywords = newKeywords[Hidden]("hidden", "hidden", "until-found")

// ParseHidden parses a hidden keyword. The empty string means hidden.
func ParseHidden(s string) (Hidden, error) {
	if s == "" {
		return HiddenHidden, nil
	}
	return hiddenKeywords.parse(s)
}

// AttrValue satisfies [Value]. HiddenHidden renders as a bare attribute.
func (h Hidden) AttrValue() (string, bool) {
	if h == HiddenHidden {
		return "", true
	}
	return hiddenKeywords.text(h)
}

func (h Hidden) String() string { return hiddenKeywords.name(h) }

// ListType is the numbering style of an ordered list.
type ListType uint8

// ListType values.
const (
	ListDecimal ListType = iota + 1
	ListLowerAlpha
	ListUpperAlpha
	ListLowerRoman
	ListUpperRoman
)

var listTypeKeywords = newKeywords[ListType]("type", "1", "a", "A", "i", "I")

// ParseListType parses a list type. Unlike other keywords the match is case
// sensitive, since "a" and "A" differ.
func ParseListType(s string) (ListType, error) {
	for i, name := range listTypeKeywords.names {
		if i > 0 && name == s {
			return ListType(i), nil
		}
	}
	return 0, invalid("type", s, "unknown list type")
}

// AttrValue satisfies [Value].
func (l ListType) AttrValue() (string, bool) { return listTypeKeywords.text(l) }

func (l ListType) String() string { return listTypeKeywords.name(l) }
