package element

import "github.com/stolasapp/elemental/pkg/attr"

// Global holds the attributes every element accepts. Each element embeds it
// first, and global attributes render before element-specific ones.
type Global struct {
	ID             attr.Text
	Class          attr.Tokens
	Style          attr.Style
	Title          attr.Text
	Lang           attr.Lang
	Dir            attr.Dir
	Hidden         attr.Hidden
	Inert          attr.Flag
	Translate      attr.Translate
	Spellcheck     attr.Spellcheck
	Draggable      attr.Draggable
	Autocapitalize attr.Autocapitalize
	Autofocus      attr.Flag
	TabIndex       attr.Int
	AccessKey      attr.Text
	Popover        attr.Popover
	SlotName       attr.Text
	Role           attr.Text
	ItemScope      attr.Flag
	ItemProp       attr.Text
	// Data attributes render last, in slice order.
	Data []attr.Data
}

func (g Global) list() attr.List {
	l := attr.List{
		{Name: "id", Value: g.ID},
		{Name: "class", Value: g.Class},
		{Name: "style", Value: g.Style},
		{Name: "title", Value: g.Title},
		{Name: "lang", Value: g.Lang},
		{Name: "dir", Value: g.Dir},
		{Name: "hidden", Value: g.Hidden},
		{Name: "inert", Value: g.Inert},
		{Name: "translate", Value: g.Translate},
		{Name: "spellcheck", Value: g.Spellcheck},
		{Name: "draggable", Value: g.Draggable},
		{Name: "autocapitalize", Value: g.Autocapitalize},
		{Name: "autofocus", Value: g.Autofocus},
		{Name: "tabindex", Value: g.TabIndex},
		{Name: "accesskey", Value: g.AccessKey},
		{Name: "popover", Value: g.Popover},
		{Name: "slot", Value: g.SlotName},
		{Name: "role", Value: g.Role},
		{Name: "itemscope", Value: g.ItemScope},
		{Name: "itemprop", Value: g.ItemProp},
	}
	for _, d := range g.Data {
		l = append(l, d.Attr())
	}
	return l
}
