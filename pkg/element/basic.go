package element

import "golang.org/x/net/html/atom"

// Elements carrying global attributes and content only.
type (
	Abbr       = basic[abbrTag]
	Address    = basic[addressTag]
	Article    = basic[articleTag]
	Aside      = basic[asideTag]
	B          = basic[bTag]
	Bdi        = basic[bdiTag]
	Body       = basic[bodyTag]
	Caption    = basic[captionTag]
	Cite       = basic[citeTag]
	Code       = basic[codeTag]
	Datalist   = basic[datalistTag]
	DD         = basic[ddTag]
	Dfn        = basic[dfnTag]
	Div        = basic[divTag]
	DL         = basic[dlTag]
	DT         = basic[dtTag]
	Em         = basic[emTag]
	FigCaption = basic[figcaptionTag]
	Figure     = basic[figureTag]
	Footer     = basic[footerTag]
	H1         = basic[h1Tag]
	H2         = basic[h2Tag]
	H3         = basic[h3Tag]
	H4         = basic[h4Tag]
	H5         = basic[h5Tag]
	H6         = basic[h6Tag]
	Head       = basic[headTag]
	Header     = basic[headerTag]
	HGroup     = basic[hgroupTag]
	I          = basic[iTag]
	Kbd        = basic[kbdTag]
	Legend     = basic[legendTag]
	Main       = basic[mainTag]
	Mark       = basic[markTag]
	Menu       = basic[menuTag]
	Nav        = basic[navTag]
	Noscript   = basic[noscriptTag]
	P          = basic[pTag]
	Picture    = basic[pictureTag]
	Pre        = basic[preTag]
	RP         = basic[rpTag]
	RT         = basic[rtTag]
	Ruby       = basic[rubyTag]
	S          = basic[sTag]
	Samp       = basic[sampTag]
	Section    = basic[sectionTag]
	Small      = basic[smallTag]
	Span       = basic[spanTag]
	Strong     = basic[strongTag]
	Sub        = basic[subTag]
	Summary    = basic[summaryTag]
	Sup        = basic[supTag]
	Table      = basic[tableTag]
	TBody      = basic[tbodyTag]
	TFoot      = basic[tfootTag]
	THead      = basic[theadTag]
	Title      = basic[titleTag]
	TR         = basic[trTag]
	U          = basic[uTag]
	UL         = basic[ulTag]
	Var        = basic[varTag]
)

// Void elements carrying global attributes only.
type (
	BR  = empty[brTag]
	HR  = empty[hrTag]
	WBR = empty[wbrTag]
)

type (
	abbrTag       struct{}
	addressTag    struct{}
	articleTag    struct{}
	asideTag      struct{}
	bTag          struct{}
	bdiTag        struct{}
	bodyTag       struct{}
	brTag         struct{}
	captionTag    struct{}
	citeTag       struct{}
	codeTag       struct{}
	datalistTag   struct{}
	ddTag         struct{}
	dfnTag        struct{}
	divTag        struct{}
	dlTag         struct{}
	dtTag         struct{}
	emTag         struct{}
	figcaptionTag struct{}
	figureTag     struct{}
	footerTag     struct{}
	h1Tag         struct{}
	h2Tag         struct{}
	h3Tag         struct{}
	h4Tag         struct{}
	h5Tag         struct{}
	h6Tag         struct{}
	headTag       struct{}
	headerTag     struct{}
	hgroupTag     struct{}
	hrTag         struct{}
	iTag          struct{}
	kbdTag        struct{}
	legendTag     struct{}
	mainTag       struct{}
	markTag       struct{}
	menuTag       struct{}
	navTag        struct{}
	noscriptTag   struct{}
	pTag          struct{}
	pictureTag    struct{}
	preTag        struct{}
	rpTag         struct{}
	rtTag         struct{}
	rubyTag       struct{}
	sTag          struct{}
	sampTag       struct{}
	sectionTag    struct{}
	smallTag      struct{}
	spanTag       struct{}
	strongTag     struct{}
	subTag        struct{}
	summaryTag    struct{}
	supTag        struct{}
	tableTag      struct{}
	tbodyTag      struct{}
	tfootTag      struct{}
	theadTag      struct{}
	titleTag      struct{}
	trTag         struct{}
	uTag          struct{}
	ulTag         struct{}
	varTag        struct{}
	wbrTag        struct{}
)

func (abbrTag) tag() string       { return atom.Abbr.String() }
func (addressTag) tag() string    { return atom.Address.String() }
func (articleTag) tag() string    { return atom.Article.String() }
func (asideTag) tag() string      { return atom.Aside.String() }
func (bTag) tag() string          { return atom.B.String() }
func (bdiTag) tag() string        { return atom.Bdi.String() }
func (bodyTag) tag() string       { return atom.Body.String() }
func (brTag) tag() string         { return atom.Br.String() }
func (captionTag) tag() string    { return atom.Caption.String() }
func (citeTag) tag() string       { return atom.Cite.String() }
func (codeTag) tag() string       { return atom.Code.String() }
func (datalistTag) tag() string   { return atom.Datalist.String() }
func (ddTag) tag() string         { return atom.Dd.String() }
func (dfnTag) tag() string        { return atom.Dfn.String() }
func (divTag) tag() string        { return atom.Div.String() }
func (dlTag) tag() string         { return atom.Dl.String() }
func (dtTag) tag() string         { return atom.Dt.String() }
func (emTag) tag() string         { return atom.Em.String() }
func (figcaptionTag) tag() string { return atom.Figcaption.String() }
func (figureTag) tag() string     { return atom.Figure.String() }
func (footerTag) tag() string     { return atom.Footer.String() }
func (h1Tag) tag() string         { return atom.H1.String() }
func (h2Tag) tag() string         { return atom.H2.String() }
func (h3Tag) tag() string         { return atom.H3.String() }
func (h4Tag) tag() string         { return atom.H4.String() }
func (h5Tag) tag() string         { return atom.H5.String() }
func (h6Tag) tag() string         { return atom.H6.String() }
func (headTag) tag() string       { return atom.Head.String() }
func (headerTag) tag() string     { return atom.Header.String() }
func (hgroupTag) tag() string     { return atom.Hgroup.String() }
func (hrTag) tag() string         { return atom.Hr.String() }
func (iTag) tag() string          { return atom.I.String() }
func (kbdTag) tag() string        { return atom.Kbd.String() }
func (legendTag) tag() string     { return atom.Legend.String() }
func (mainTag) tag() string       { return atom.Main.String() }
func (markTag) tag() string       { return atom.Mark.String() }
func (menuTag) tag() string       { return atom.Menu.String() }
func (navTag) tag() string        { return atom.Nav.String() }
func (noscriptTag) tag() string   { return atom.Noscript.String() }
func (pTag) tag() string          { return atom.P.String() }
func (pictureTag) tag() string    { return atom.Picture.String() }
func (preTag) tag() string        { return atom.Pre.String() }
func (rpTag) tag() string         { return atom.Rp.String() }
func (rtTag) tag() string         { return atom.Rt.String() }
func (rubyTag) tag() string       { return atom.Ruby.String() }
func (sTag) tag() string          { return atom.S.String() }
func (sampTag) tag() string       { return atom.Samp.String() }
func (sectionTag) tag() string    { return atom.Section.String() }
func (smallTag) tag() string      { return atom.Small.String() }
func (spanTag) tag() string       { return atom.Span.String() }
func (strongTag) tag() string     { return atom.Strong.String() }
func (subTag) tag() string        { return atom.Sub.String() }
func (summaryTag) tag() string    { return atom.Summary.String() }
func (supTag) tag() string        { return atom.Sup.String() }
func (tableTag) tag() string      { return atom.Table.String() }
func (tbodyTag) tag() string      { return atom.Tbody.String() }
func (tfootTag) tag() string      { return atom.Tfoot.String() }
func (theadTag) tag() string      { return atom.Thead.String() }
func (titleTag) tag() string      { return atom.Title.String() }
func (trTag) tag() string         { return atom.Tr.String() }
func (uTag) tag() string          { return atom.U.String() }
func (ulTag) tag() string         { return atom.Ul.String() }
func (varTag) tag() string        { return atom.Var.String() }
func (wbrTag) tag() string        { return atom.Wbr.String() }
