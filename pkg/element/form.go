package element

import (
	"context"
	"io"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Form is the <form> element.
type Form struct {
	Global
	AcceptCharset attr.Charset
	Autocomplete  attr.Autocomplete
	Name          attr.Text
	Rel           attr.Rel
	Action        attr.URL
	Enctype       attr.FormEnctype
	Method        attr.FormMethod
	NoValidate    attr.Flag
	Target        attr.Target
	Content       markup.Slot
}

// Tag satisfies [markup.Element].
func (Form) Tag() string { return atom.Form.String() }

// Attrs satisfies [markup.Element].
func (e Form) Attrs() attr.List {
	return e.list().With(
		attr.Named("accept-charset", e.AcceptCharset),
		attr.Named("autocomplete", e.Autocomplete),
		attr.Named("name", e.Name),
		attr.Named("rel", e.Rel),
		attr.Named("action", e.Action),
		attr.Named("enctype", e.Enctype),
		attr.Named("method", e.Method),
		attr.Named("novalidate", e.NoValidate),
		attr.Named("target", e.Target),
	)
}

// Children satisfies [markup.Parent].
func (e Form) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Form) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Submission overrides a form's submission settings from one of its
// submit buttons.
type Submission struct {
	Action     attr.URL
	Enctype    attr.FormEnctype
	Method     attr.FormMethod
	NoValidate attr.Flag
	Target     attr.Target
}

func (s Submission) list() attr.List {
	return attr.List{
		attr.Named("formaction", s.Action),
		attr.Named("formenctype", s.Enctype),
		attr.Named("formmethod", s.Method),
		attr.Named("formnovalidate", s.NoValidate),
		attr.Named("formtarget", s.Target),
	}
}

// Button is the <button> element.
type Button struct {
	Global
	Type       attr.ButtonType
	Disabled   attr.Flag
	Form       attr.Text
	Name       attr.Text
	Value      attr.Text
	Submission Submission
	Content    markup.Slot
}

// Tag satisfies [markup.Element].
func (Button) Tag() string { return atom.Button.String() }

// Attrs satisfies [markup.Element].
func (e Button) Attrs() attr.List {
	return e.list().With(
		attr.Named("type", e.Type),
		attr.Named("disabled", e.Disabled),
		attr.Named("form", e.Form),
		attr.Named("name", e.Name),
		attr.Named("value", e.Value),
	).With(e.Submission.list()...)
}

// Children satisfies [markup.Parent].
func (e Button) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Button) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Input is the <input> element. Which attributes apply depends on Type;
// browsers ignore the others.
type Input struct {
	Global
	Type         attr.InputType
	Name         attr.Text
	Value        attr.Text
	Placeholder  attr.Text
	Required     attr.Flag
	Disabled     attr.Flag
	ReadOnly     attr.Flag
	Checked      attr.Flag
	Multiple     attr.Flag
	Min          attr.Text
	Max          attr.Text
	Step         attr.Text
	MinLength    attr.Int
	MaxLength    attr.Int
	Size         attr.Int
	Pattern      attr.Text
	Autocomplete attr.Autocomplete
	List         attr.Text
	Form         attr.Text
	Accept       attr.Text
	Alt          attr.Text
	Src          attr.URL
	Width        attr.Int
	Height       attr.Int
	DirName      attr.Text
	Submission   Submission
}

// Tag satisfies [markup.Element].
func (Input) Tag() string { return atom.Input.String() }

// Attrs satisfies [markup.Element].
func (e Input) Attrs() attr.List {
	return e.list().With(
		attr.Named("type", e.Type),
		attr.Named("name", e.Name),
		attr.Named("value", e.Value),
		attr.Named("placeholder", e.Placeholder),
		attr.Named("required", e.Required),
		attr.Named("disabled", e.Disabled),
		attr.Named("readonly", e.ReadOnly),
		attr.Named("checked", e.Checked),
		attr.Named("multiple", e.Multiple),
		attr.Named("min", e.Min),
		attr.Named("max", e.Max),
		attr.Named("step", e.Step),
		attr.Named("minlength", e.MinLength),
		attr.Named("maxlength", e.MaxLength),
		attr.Named("size", e.Size),
		attr.Named("pattern", e.Pattern),
		attr.Named("autocomplete", e.Autocomplete),
		attr.Named("list", e.List),
		attr.Named("form", e.Form),
		attr.Named("accept", e.Accept),
		attr.Named("alt", e.Alt),
		attr.Named("src", e.Src),
		attr.Named("width", e.Width),
		attr.Named("height", e.Height),
		attr.Named("dirname", e.DirName),
	).With(e.Submission.list()...)
}

// Render satisfies [templ.Component].
func (e Input) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Label is the <label> element.
type Label struct {
	Global
	For     attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Label) Tag() string { return atom.Label.String() }

// Attrs satisfies [markup.Element].
func (e Label) Attrs() attr.List {
	return e.list().With(attr.Named("for", e.For))
}

// Children satisfies [markup.Parent].
func (e Label) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Label) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Select is the <select> element.
type Select struct {
	Global
	Multiple     attr.Flag
	Name         attr.Text
	Required     attr.Flag
	Size         attr.Int
	Disabled     attr.Flag
	Form         attr.Text
	Autocomplete attr.Autocomplete
	Content      markup.Slot
}

// Tag satisfies [markup.Element].
func (Select) Tag() string { return atom.Select.String() }

// Attrs satisfies [markup.Element].
func (e Select) Attrs() attr.List {
	return e.list().With(
		attr.Named("multiple", e.Multiple),
		attr.Named("name", e.Name),
		attr.Named("required", e.Required),
		attr.Named("size", e.Size),
		attr.Named("disabled", e.Disabled),
		attr.Named("form", e.Form),
		attr.Named("autocomplete", e.Autocomplete),
	)
}

// Children satisfies [markup.Parent].
func (e Select) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Select) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Option is the <option> element.
type Option struct {
	Global
	Disabled attr.Flag
	Label    attr.Text
	Selected attr.Flag
	Value    attr.Text
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (Option) Tag() string { return atom.Option.String() }

// Attrs satisfies [markup.Element].
func (e Option) Attrs() attr.List {
	return e.list().With(
		attr.Named("disabled", e.Disabled),
		attr.Named("label", e.Label),
		attr.Named("selected", e.Selected),
		attr.Named("value", e.Value),
	)
}

// Children satisfies [markup.Parent].
func (e Option) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Option) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// OptGroup is the <optgroup> element.
type OptGroup struct {
	Global
	Disabled attr.Flag
	Label    attr.Text
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (OptGroup) Tag() string { return atom.Optgroup.String() }

// Attrs satisfies [markup.Element].
func (e OptGroup) Attrs() attr.List {
	return e.list().With(
		attr.Named("disabled", e.Disabled),
		attr.Named("label", e.Label),
	)
}

// Children satisfies [markup.Parent].
func (e OptGroup) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e OptGroup) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Textarea is the <textarea> element. Its content is the initial value and
// should be [Text].
type Textarea struct {
	Global
	Autocomplete attr.Autocomplete
	Cols         attr.Int
	DirName      attr.Text
	Disabled     attr.Flag
	Form         attr.Text
	MaxLength    attr.Int
	MinLength    attr.Int
	Name         attr.Text
	Placeholder  attr.Text
	ReadOnly     attr.Flag
	Required     attr.Flag
	Rows         attr.Int
	Wrap         attr.Wrap
	Content      markup.Slot
}

// Tag satisfies [markup.Element].
func (Textarea) Tag() string { return atom.Textarea.String() }

// Attrs satisfies [markup.Element].
func (e Textarea) Attrs() attr.List {
	return e.list().With(
		attr.Named("autocomplete", e.Autocomplete),
		attr.Named("cols", e.Cols),
		attr.Named("dirname", e.DirName),
		attr.Named("disabled", e.Disabled),
		attr.Named("form", e.Form),
		attr.Named("maxlength", e.MaxLength),
		attr.Named("minlength", e.MinLength),
		attr.Named("name", e.Name),
		attr.Named("placeholder", e.Placeholder),
		attr.Named("readonly", e.ReadOnly),
		attr.Named("required", e.Required),
		attr.Named("rows", e.Rows),
		attr.Named("wrap", e.Wrap),
	)
}

// Children satisfies [markup.Parent].
func (e Textarea) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Textarea) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Fieldset is the <fieldset> element.
type Fieldset struct {
	Global
	Disabled attr.Flag
	Form     attr.Text
	Name     attr.Text
	Content  markup.Slot
}

// Tag satisfies [markup.Element].
func (Fieldset) Tag() string { return atom.Fieldset.String() }

// Attrs satisfies [markup.Element].
func (e Fieldset) Attrs() attr.List {
	return e.list().With(
		attr.Named("disabled", e.Disabled),
		attr.Named("form", e.Form),
		attr.Named("name", e.Name),
	)
}

// Children satisfies [markup.Parent].
func (e Fieldset) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Fieldset) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Output is the <output> element, the result of a calculation.
type Output struct {
	Global
	For     attr.Tokens
	Form    attr.Text
	Name    attr.Text
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Output) Tag() string { return atom.Output.String() }

// Attrs satisfies [markup.Element].
func (e Output) Attrs() attr.List {
	return e.list().With(
		attr.Named("for", e.For),
		attr.Named("form", e.Form),
		attr.Named("name", e.Name),
	)
}

// Children satisfies [markup.Parent].
func (e Output) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Output) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Meter is the <meter> element, a scalar within a known range.
type Meter struct {
	Global
	Value   attr.Number
	Min     attr.Number
	Max     attr.Number
	Low     attr.Number
	High    attr.Number
	Optimum attr.Number
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Meter) Tag() string { return atom.Meter.String() }

// Attrs satisfies [markup.Element].
func (e Meter) Attrs() attr.List {
	return e.list().With(
		attr.Named("value", e.Value),
		attr.Named("min", e.Min),
		attr.Named("max", e.Max),
		attr.Named("low", e.Low),
		attr.Named("high", e.High),
		attr.Named("optimum", e.Optimum),
	)
}

// Children satisfies [markup.Parent].
func (e Meter) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Meter) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

// Progress is the <progress> element. Without a value it shows an
// indeterminate progress bar.
type Progress struct {
	Global
	Max     attr.Number
	Value   attr.Number
	Content markup.Slot
}

// Tag satisfies [markup.Element].
func (Progress) Tag() string { return atom.Progress.String() }

// Attrs satisfies [markup.Element].
func (e Progress) Attrs() attr.List {
	return e.list().With(
		attr.Named("max", e.Max),
		attr.Named("value", e.Value),
	)
}

// Children satisfies [markup.Parent].
func (e Progress) Children() markup.Slot { return e.Content }

// Render satisfies [templ.Component].
func (e Progress) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}
