package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/elemental/internal/content"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRender_Stdout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "elemental.yaml", "document:\n  lang: fr\n  charset: \"\"\n  viewport: \"\"\n")
	first := writeFile(t, dir, "a.md", "# Alpha")
	second := writeFile(t, dir, "b.txt", "beta")

	out, err := runCommand(t, "--config", cfgPath, "render", first, second)
	require.NoError(t, err)
	assert.Equal(t,
		"<!doctype html><html lang=\"fr\"><head><title>Alpha</title></head>"+
			"<body><h1 id=\"alpha\">Alpha</h1>\n</body></html>\n"+
			"<!doctype html><html lang=\"fr\"><head><title>b</title></head>"+
			"<body><p>beta</p>\n</body></html>\n",
		out)
}

func TestRender_OutDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "elemental.yaml", "render:\n  concurrency: 1\n")
	src := writeFile(t, dir, "notes.md", "# Notes\n\nSome *text*.")
	outDir := filepath.Join(dir, "out")

	out, err := runCommand(t, "-c", cfgPath, "render", "--out", outDir, "--format", "markdown", src)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(outDir, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n\nSome *text*.", string(data))
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "elemental.yaml", "")
	src := writeFile(t, dir, "a.md", "# A")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing source",
			args:    []string{"-c", cfgPath, "render", filepath.Join(dir, "nope.md")},
			wantErr: "failed to read source file",
		},
		{
			name:    "unknown format",
			args:    []string{"-c", cfgPath, "render", "--format", "pdf", src},
			wantErr: "unknown output format",
		},
		{
			name:    "explicit config missing",
			args:    []string{"-c", filepath.Join(dir, "missing.yaml"), "render", src},
			wantErr: "failed to load configuration file",
		},
		{
			name:    "no files",
			args:    []string{"-c", cfgPath, "render"},
			wantErr: "requires at least 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := runCommand(t, tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		format content.Format
		want   string
	}{
		{path: "docs/intro.md", format: content.FormatHTML, want: filepath.Join("docs", "intro.html")},
		{path: "./readme.txt", format: content.FormatMarkdown, want: "readme.md"},
		{path: "/abs/page.html", format: content.FormatHTML, want: "page.html"},
		{path: "../up/notes", format: content.FormatHTML, want: "notes.html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, outputName(tt.path, tt.format))
		})
	}
}
