package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		decls []Decl
		want  string
	}{
		{
			name:  "declaration order",
			decls: []Decl{{"font-size", "24px"}, {"color", "blue"}, {"margin-top", "10px"}},
			want:  "font-size:24px;color:blue;margin-top:10px",
		},
		{
			name:  "whitespace and comments normalized",
			decls: []Decl{{"  Margin ", "0\t /* top */ auto\n"}},
			want:  "margin:0 auto",
		},
		{
			name:  "repeat keeps first position",
			decls: []Decl{{"color", "red"}, {"padding", "1em"}, {"COLOR", "green"}},
			want:  "color:green;padding:1em",
		},
		{
			name:  "custom property keeps case",
			decls: []Decl{{"--Accent", "#fff"}, {"color", "var(--Accent)"}},
			want:  "--Accent:#fff;color:var(--Accent)",
		},
		{
			name:  "functions, strings and priority",
			decls: []Decl{{"background", `url("a;b.png") no-repeat`}, {"font-family", `"Fira Sans", sans-serif !important`}},
			want:  `background:url("a;b.png") no-repeat;font-family:"Fira Sans", sans-serif !important`,
		},
		{
			name:  "negative numbers",
			decls: []Decl{{"margin", "-10px calc(1em - 2px)"}},
			want:  "margin:-10px calc(1em - 2px)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := StyleOf(tt.decls...)
			require.NoError(t, err)
			text, ok := s.AttrValue()
			assert.True(t, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestStyleOf_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl Decl
	}{
		{name: "empty property", decl: Decl{"", "red"}},
		{name: "property with space", decl: Decl{"font size", "1em"}},
		{name: "property with colon", decl: Decl{"color:", "red"}},
		{name: "bare dashes", decl: Decl{"--", "1"}},
		{name: "empty value", decl: Decl{"color", "  "}},
		{name: "semicolon injects a declaration", decl: Decl{"color", "red; position: fixed"}},
		{name: "brace", decl: Decl{"color", "red}"}},
		{name: "unbalanced open", decl: Decl{"width", "calc(1px + 2px"}},
		{name: "unbalanced close", decl: Decl{"width", "1px)"}},
		{name: "unclosed string", decl: Decl{"content", `"abc`}},
		{name: "unclosed comment", decl: Decl{"color", "red /* note"}},
		{name: "at keyword", decl: Decl{"color", "@import"}},
		{name: "html comment", decl: Decl{"color", "<!-- red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := StyleOf(tt.decl)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	s, err := ParseStyle(" color : red;; background: url(x.png);\n  --gap: calc(2 * 4px); ")
	require.NoError(t, err)
	text, _ := render(s)
	assert.Equal(t, "color:red;background:url(x.png);--gap:calc(2 * 4px)", text)

	v, ok := s.Get("COLOR")
	assert.True(t, ok)
	assert.Equal(t, "red", v)
	_, ok = s.Get("--GAP")
	assert.False(t, ok)

	empty, err := ParseStyle(" ; ")
	require.NoError(t, err)
	_, ok = render(empty)
	assert.False(t, ok)

	for _, input := range []string{"color red", "color: red; }", `content: "x`, "a: b(c; d: e"} {
		_, err = ParseStyle(input)
		require.ErrorIs(t, err, ErrInvalid, input)
	}
}

func TestStyle_With(t *testing.T) {
	t.Parallel()

	base := MustStyle(Decl{"color", "red"})
	next, err := base.With(Declare("color", RGB(0, 0, 255)), Decl{"display", "block"})
	require.NoError(t, err)

	text, _ := render(base)
	assert.Equal(t, "color:red", text)
	text, _ = render(next)
	assert.Equal(t, "color:#0000ff;display:block", text)

	decls := next.Decls()
	decls[0].Value = "changed"
	v, _ := next.Get("color")
	assert.Equal(t, "#0000ff", v)

	_, err = base.With(Decl{"color", "red;"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Panics(t, func() { MustStyle(Decl{"x y", "z"}) })
}

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "hex", color: MustColor("#CC3333"), want: "#cc3333"},
		{name: "short hex", color: MustColor("#abc"), want: "#aabbcc"},
		{name: "rgb", color: RGB(255, 128, 0), want: "#ff8000"},
		{name: "derived dark", color: Adaptive(MustColor("#cc3333")), want: "light-dark(#cc3333, #a32929)"},
		{name: "explicit dark", color: LightDark(RGB(255, 255, 255), RGB(0, 0, 0)), want: "light-dark(#ffffff, #000000)"},
		{name: "missing dark derived", color: LightDark(MustColor("#ffffff"), Color{}), want: "light-dark(#ffffff, #cccccc)"},
		{name: "missing light", color: LightDark(Color{}, RGB(1, 2, 3)), want: ""},
		{name: "zero", color: Color{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.String())
		})
	}
}

func TestColor_Variants(t *testing.T) {
	t.Parallel()

	c := LightDark(MustColor("#f0f0f0"), MustColor("#101010"))
	assert.True(t, c.IsAdaptive())
	assert.Equal(t, "#f0f0f0", c.Light().String())
	assert.Equal(t, "#101010", c.Dark().String())
	assert.False(t, c.Light().IsAdaptive())

	solid := RGB(1, 2, 3)
	assert.False(t, solid.IsAdaptive())
	assert.Equal(t, solid, solid.Dark())
	assert.Equal(t, "", Color{}.Dark().String())
}

func TestParseColor_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "cc3333", "#12345", "#1234567", "#ggg", "red"} {
		_, err := ParseColor("theme-color", input)
		require.ErrorIs(t, err, ErrInvalid, input)
	}
	assert.Panics(t, func() { MustColor("blue") })
}
