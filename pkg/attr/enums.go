package attr

// ReferrerPolicy is the referrer sent when fetching a resource.
type ReferrerPolicy uint8

// ReferrerPolicy values.
const (
	ReferrerPolicyNoReferrer ReferrerPolicy = iota + 1
	ReferrerPolicyNoReferrerWhenDowngrade
	ReferrerPolicyOrigin
	ReferrerPolicyOriginWhenCrossOrigin
	ReferrerPolicySameOrigin
	ReferrerPolicyStrictOrigin
	ReferrerPolicyStrictOriginWhenCrossOrigin
	ReferrerPolicyUnsafeURL
)

var referrerPolicyKeywords = newKeywords[ReferrerPolicy](
	"referrerpolicy",
	"no-referrer",
	"no-referrer-when-downgrade",
	"origin",
	"origin-when-cross-origin",
	"same-origin",
	"strict-origin",
	"strict-origin-when-cross-origin",
	"unsafe-url",
)

// ParseReferrerPolicy parses a referrerpolicy value such as
// "strict-origin-when-cross-origin".
func ParseReferrerPolicy(s string) (ReferrerPolicy, error) { return referrerPolicyKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v ReferrerPolicy) AttrValue() (string, bool) { return referrerPolicyKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v ReferrerPolicy) String() string { return referrerPolicyKeywords.name(v) }

// Crossorigin is the CORS mode of a fetch.
type Crossorigin uint8

// Crossorigin values.
const (
	CrossoriginAnonymous Crossorigin = iota + 1
	CrossoriginUseCredentials
)

var crossoriginKeywords = newKeywords[Crossorigin](
	"crossorigin",
	"anonymous",
	"use-credentials",
)

// ParseCrossorigin parses "anonymous" or "use-credentials".
func ParseCrossorigin(s string) (Crossorigin, error) { return crossoriginKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Crossorigin) AttrValue() (string, bool) { return crossoriginKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Crossorigin) String() string { return crossoriginKeywords.name(v) }

// FormMethod is the HTTP method used to submit a form.
type FormMethod uint8

// FormMethod values.
const (
	FormMethodGet FormMethod = iota + 1
	FormMethodPost
	FormMethodDialog
)

var formMethodKeywords = newKeywords[FormMethod](
	"method",
	"get",
	"post",
	"dialog",
)

// ParseFormMethod parses a form method: get, post, or dialog.
func ParseFormMethod(s string) (FormMethod, error) { return formMethodKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v FormMethod) AttrValue() (string, bool) { return formMethodKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v FormMethod) String() string { return formMethodKeywords.name(v) }

// FormEnctype is the MIME type of a form submission.
type FormEnctype uint8

// FormEnctype values.
const (
	FormEnctypeURLEncoded FormEnctype = iota + 1
	FormEnctypeMultipart
	FormEnctypePlain
)

var formEnctypeKeywords = newKeywords[FormEnctype](
	"enctype",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"text/plain",
)

// ParseFormEnctype parses an enctype, one of the three MIME types forms can
// submit.
func ParseFormEnctype(s string) (FormEnctype, error) { return formEnctypeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v FormEnctype) AttrValue() (string, bool) { return formEnctypeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v FormEnctype) String() string { return formEnctypeKeywords.name(v) }

// ButtonType is the behavior of a button.
type ButtonType uint8

// ButtonType values.
const (
	ButtonTypeSubmit ButtonType = iota + 1
	ButtonTypeReset
	ButtonTypeButton
)

var buttonTypeKeywords = newKeywords[ButtonType](
	"type",
	"submit",
	"reset",
	"button",
)

// ParseButtonType parses a button type attribute.
func ParseButtonType(s string) (ButtonType, error) { return buttonTypeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v ButtonType) AttrValue() (string, bool) { return buttonTypeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v ButtonType) String() string { return buttonTypeKeywords.name(v) }

// Preload hints how much media to load before playback.
type Preload uint8

// Preload values.
const (
	PreloadNone Preload = iota + 1
	PreloadMetadata
	PreloadAuto
)

var preloadKeywords = newKeywords[Preload](
	"preload",
	"none",
	"metadata",
	"auto",
)

// ParsePreload parses the preload hint of audio and video.
func ParsePreload(s string) (Preload, error) { return preloadKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Preload) AttrValue() (string, bool) { return preloadKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Preload) String() string { return preloadKeywords.name(v) }

// Loading controls when an image or frame is fetched.
type Loading uint8

// Loading values.
const (
	LoadingEager Loading = iota + 1
	LoadingLazy
)

var loadingKeywords = newKeywords[Loading](
	"loading",
	"eager",
	"lazy",
)

// ParseLoading parses "eager" or "lazy".
func ParseLoading(s string) (Loading, error) { return loadingKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Loading) AttrValue() (string, bool) { return loadingKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Loading) String() string { return loadingKeywords.name(v) }

// Decoding hints how an image is decoded.
type Decoding uint8

// Decoding values.
const (
	DecodingSync Decoding = iota + 1
	DecodingAsync
	DecodingAuto
)

var decodingKeywords = newKeywords[Decoding](
	"decoding",
	"sync",
	"async",
	"auto",
)

// ParseDecoding parses an image decoding hint.
func ParseDecoding(s string) (Decoding, error) { return decodingKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Decoding) AttrValue() (string, bool) { return decodingKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Decoding) String() string { return decodingKeywords.name(v) }

// FetchPriority is the relative priority of a fetch.
type FetchPriority uint8

// FetchPriority values.
const (
	FetchPriorityHigh FetchPriority = iota + 1
	FetchPriorityLow
	FetchPriorityAuto
)

var fetchPriorityKeywords = newKeywords[FetchPriority](
	"fetchpriority",
	"high",
	"low",
	"auto",
)

// ParseFetchPriority parses high, low, or auto.
func ParseFetchPriority(s string) (FetchPriority, error) { return fetchPriorityKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v FetchPriority) AttrValue() (string, bool) { return fetchPriorityKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v FetchPriority) String() string { return fetchPriorityKeywords.name(v) }

// Dir is the text direction of an element.
type Dir uint8

// Dir values.
const (
	DirLTR Dir = iota + 1
	DirRTL
	DirAuto
)

var dirKeywords = newKeywords[Dir](
	"dir",
	"ltr",
	"rtl",
	"auto",
)

// ParseDir parses ltr, rtl, or auto.
func ParseDir(s string) (Dir, error) { return dirKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Dir) AttrValue() (string, bool) { return dirKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Dir) String() string { return dirKeywords.name(v) }

// Translate marks whether content should be translated.
type Translate uint8

// Translate values.
const (
	TranslateYes Translate = iota + 1
	TranslateNo
)

var translateKeywords = newKeywords[Translate](
	"translate",
	"yes",
	"no",
)

// ParseTranslate parses "yes" or "no".
func ParseTranslate(s string) (Translate, error) { return translateKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Translate) AttrValue() (string, bool) { return translateKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Translate) String() string { return translateKeywords.name(v) }

// Draggable marks whether an element can be dragged.
type Draggable uint8

// Draggable values.
const (
	DraggableTrue Draggable = iota + 1
	DraggableFalse
)

var draggableKeywords = newKeywords[Draggable](
	"draggable",
	"true",
	"false",
)

// ParseDraggable parses "true" or "false".
func ParseDraggable(s string) (Draggable, error) { return draggableKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Draggable) AttrValue() (string, bool) { return draggableKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Draggable) String() string { return draggableKeywords.name(v) }

// Spellcheck marks whether content is checked for spelling.
type Spellcheck uint8

// Spellcheck values.
const (
	SpellcheckTrue Spellcheck = iota + 1
	SpellcheckFalse
)

var spellcheckKeywords = newKeywords[Spellcheck](
	"spellcheck",
	"true",
	"false",
)

// ParseSpellcheck parses "true" or "false".
func ParseSpellcheck(s string) (Spellcheck, error) { return spellcheckKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Spellcheck) AttrValue() (string, bool) { return spellcheckKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Spellcheck) String() string { return spellcheckKeywords.name(v) }

// Autocapitalize controls automatic capitalization of user input.
type Autocapitalize uint8

// Autocapitalize values.
const (
	AutocapitalizeNone Autocapitalize = iota + 1
	AutocapitalizeSentences
	AutocapitalizeWords
	AutocapitalizeCharacters
)

var autocapitalizeKeywords = newKeywords[Autocapitalize](
	"autocapitalize",
	"none",
	"sentences",
	"words",
	"characters",
)

// ParseAutocapitalize parses an autocapitalize mode.
func ParseAutocapitalize(s string) (Autocapitalize, error) { return autocapitalizeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Autocapitalize) AttrValue() (string, bool) { return autocapitalizeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Autocapitalize) String() string { return autocapitalizeKeywords.name(v) }

// Autocomplete hints what a control should autofill.
type Autocomplete uint8

// Autocomplete values.
const (
	AutocompleteOn Autocomplete = iota + 1
	AutocompleteOff
	AutocompleteName
	AutocompleteEmail
	AutocompleteUsername
	AutocompleteNewPassword
	AutocompleteCurrentPassword
	AutocompleteOneTimeCode
	AutocompleteOrganization
	AutocompleteStreetAddress
	AutocompleteCountry
	AutocompletePostalCode
	AutocompleteTel
	AutocompleteURL
	AutocompleteCCNumber
	AutocompleteBday
)

var autocompleteKeywords = newKeywords[Autocomplete](
	"autocomplete",
	"on",
	"off",
	"name",
	"email",
	"username",
	"new-password",
	"current-password",
	"one-time-code",
	"organization",
	"street-address",
	"country",
	"postal-code",
	"tel",
	"url",
	"cc-number",
	"bday",
)

// ParseAutocomplete parses a single autofill field name. Section and
// shipping/billing prefixes are not supported.
func ParseAutocomplete(s string) (Autocomplete, error) { return autocompleteKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Autocomplete) AttrValue() (string, bool) { return autocompleteKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Autocomplete) String() string { return autocompleteKeywords.name(v) }

// InputType is the kind of an input control.
type InputType uint8

// InputType values.
const (
	InputTypeText InputType = iota + 1
	InputTypeSearch
	InputTypeTel
	InputTypeURL
	InputTypeEmail
	InputTypePassword
	InputTypeDate
	InputTypeMonth
	InputTypeWeek
	InputTypeTime
	InputTypeDatetimeLocal
	InputTypeNumber
	InputTypeRange
	InputTypeColor
	InputTypeCheckbox
	InputTypeRadio
	InputTypeFile
	InputTypeSubmit
	InputTypeImage
	InputTypeReset
	InputTypeButton
	InputTypeHidden
)

var inputTypeKeywords = newKeywords[InputType](
	"type",
	"text",
	"search",
	"tel",
	"url",
	"email",
	"password",
	"date",
	"month",
	"week",
	"time",
	"datetime-local",
	"number",
	"range",
	"color",
	"checkbox",
	"radio",
	"file",
	"submit",
	"image",
	"reset",
	"button",
	"hidden",
)

// ParseInputType parses the type of an <input>.
func ParseInputType(s string) (InputType, error) { return inputTypeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v InputType) AttrValue() (string, bool) { return inputTypeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v InputType) String() string { return inputTypeKeywords.name(v) }

// TrackKind is how a text track is meant to be used.
type TrackKind uint8

// TrackKind values.
const (
	TrackKindSubtitles TrackKind = iota + 1
	TrackKindCaptions
	TrackKindDescriptions
	TrackKindChapters
	TrackKindMetadata
)

var trackKindKeywords = newKeywords[TrackKind](
	"kind",
	"subtitles",
	"captions",
	"descriptions",
	"chapters",
	"metadata",
)

// ParseTrackKind parses the kind of a <track>.
func ParseTrackKind(s string) (TrackKind, error) { return trackKindKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v TrackKind) AttrValue() (string, bool) { return trackKindKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v TrackKind) String() string { return trackKindKeywords.name(v) }

// Wrap controls how a textarea wraps submitted text.
type Wrap uint8

// Wrap values.
const (
	WrapHard Wrap = iota + 1
	WrapSoft
	WrapOff
)

var wrapKeywords = newKeywords[Wrap](
	"wrap",
	"hard",
	"soft",
	"off",
)

// ParseWrap parses the wrap mode of a <textarea>.
func ParseWrap(s string) (Wrap, error) { return wrapKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Wrap) AttrValue() (string, bool) { return wrapKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Wrap) String() string { return wrapKeywords.name(v) }

// Scope is the set of cells a header cell applies to.
type Scope uint8

// Scope values.
const (
	ScopeRow Scope = iota + 1
	ScopeCol
	ScopeRowGroup
	ScopeColGroup
)

var scopeKeywords = newKeywords[Scope](
	"scope",
	"row",
	"col",
	"rowgroup",
	"colgroup",
)

// ParseScope parses the scope of a header cell.
func ParseScope(s string) (Scope, error) { return scopeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Scope) AttrValue() (string, bool) { return scopeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Scope) String() string { return scopeKeywords.name(v) }

// HTTPEquiv is the pragma directive of a meta element.
type HTTPEquiv uint8

// HTTPEquiv values.
const (
	HTTPEquivContentSecurityPolicy HTTPEquiv = iota + 1
	HTTPEquivContentType
	HTTPEquivDefaultStyle
	HTTPEquivRefresh
	HTTPEquivXUACompatible
)

var httpEquivKeywords = newKeywords[HTTPEquiv](
	"http-equiv",
	"content-security-policy",
	"content-type",
	"default-style",
	"refresh",
	"x-ua-compatible",
)

// ParseHTTPEquiv parses a pragma directive name for <meta http-equiv>.
func ParseHTTPEquiv(s string) (HTTPEquiv, error) { return httpEquivKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v HTTPEquiv) AttrValue() (string, bool) { return httpEquivKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v HTTPEquiv) String() string { return httpEquivKeywords.name(v) }

// LinkAs is the destination of a preloaded resource.
type LinkAs uint8

// LinkAs values.
const (
	LinkAsAudio LinkAs = iota + 1
	LinkAsDocument
	LinkAsEmbed
	LinkAsFetch
	LinkAsFont
	LinkAsImage
	LinkAsObject
	LinkAsScript
	LinkAsStyle
	LinkAsTrack
	LinkAsVideo
	LinkAsWorker
)

var linkAsKeywords = newKeywords[LinkAs](
	"as",
	"audio",
	"document",
	"embed",
	"fetch",
	"font",
	"image",
	"object",
	"script",
	"style",
	"track",
	"video",
	"worker",
)

// ParseLinkAs parses the destination of a preload link.
func ParseLinkAs(s string) (LinkAs, error) { return linkAsKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v LinkAs) AttrValue() (string, bool) { return linkAsKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v LinkAs) String() string { return linkAsKeywords.name(v) }

// ScriptType is the kind of script a script element holds.
type ScriptType uint8

// ScriptType values.
const (
	ScriptTypeClassic ScriptType = iota + 1
	ScriptTypeModule
	ScriptTypeImportMap
	ScriptTypeSpeculationRules
)

var scriptTypeKeywords = newKeywords[ScriptType](
	"type",
	"text/javascript",
	"module",
	"importmap",
	"speculationrules",
)

// ParseScriptType parses a script type such as "module" or "importmap".
func ParseScriptType(s string) (ScriptType, error) { return scriptTypeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v ScriptType) AttrValue() (string, bool) { return scriptTypeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v ScriptType) String() string { return scriptTypeKeywords.name(v) }

// Popover makes an element a popover.
type Popover uint8

// Popover values.
const (
	PopoverAuto Popover = iota + 1
	PopoverManual
	PopoverHint
)

var popoverKeywords = newKeywords[Popover](
	"popover",
	"auto",
	"manual",
	"hint",
)

// ParsePopover parses auto, manual, or hint.
func ParsePopover(s string) (Popover, error) { return popoverKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v Popover) AttrValue() (string, bool) { return popoverKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v Popover) String() string { return popoverKeywords.name(v) }

// ShadowRootMode is the mode of a declarative shadow root.
type ShadowRootMode uint8

// ShadowRootMode values.
const (
	ShadowRootModeOpen ShadowRootMode = iota + 1
	ShadowRootModeClosed
)

var shadowRootModeKeywords = newKeywords[ShadowRootMode](
	"shadowrootmode",
	"open",
	"closed",
)

// ParseShadowRootMode parses "open" or "closed".
func ParseShadowRootMode(s string) (ShadowRootMode, error) { return shadowRootModeKeywords.parse(s) }

// AttrValue satisfies [Value].
func (v ShadowRootMode) AttrValue() (string, bool) { return shadowRootModeKeywords.text(v) }

// String returns the keyword, or "" for the zero value.
func (v ShadowRootMode) String() string { return shadowRootModeKeywords.name(v) }
