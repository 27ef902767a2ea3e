package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/elemental/internal/content"
	"github.com/stolasapp/elemental/internal/page"
)

func renderCommand() *cobra.Command {
	var (
		outDir string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "render Markdown, HTML, or text files into complete documents",
		Long: "Renders each source file into a complete document. Without --out, the\n" +
			"documents are written to stdout in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			outFormat, err := content.ParseFormat(format)
			if err != nil {
				return err
			}
			layout, err := page.NewLayout(cfg.Document)
			if err != nil {
				return err
			}
			r := renderer{
				layout: layout,
				format: outFormat,
				logger: logger,
			}
			outputs, err := r.renderAll(cmd.Context(), args, cfg.Render.Concurrency)
			if err != nil {
				return err
			}
			if outDir == "" {
				return writeAll(cmd.OutOrStdout(), outputs)
			}
			return r.writeFiles(cmd.Context(), outDir, args, outputs)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write rendered documents to")
	cmd.Flags().StringVarP(&format, "format", "f", content.FormatHTML.String(), "output format: html or markdown")

	return cmd
}

type renderer struct {
	layout *page.Layout
	format content.Format
	logger *slog.Logger
}

// renderAll renders every file with at most limit renders in flight. The
// outputs are returned in the order of paths.
func (r renderer) renderAll(ctx context.Context, paths []string, limit int) ([][]byte, error) {
	outputs := make([][]byte, len(paths))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)
	for i, path := range paths {
		grp.Go(func() error {
			out, err := r.render(ctx, path)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (r renderer) render(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	doc, err := r.layout.Convert(path, data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = page.Render(ctx, &buf, doc, r.format); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}
	r.logger.DebugContext(ctx, "rendered document",
		slog.String("source", path),
		slog.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func (r renderer) writeFiles(ctx context.Context, dir string, paths []string, outputs [][]byte) error {
	for i, path := range paths {
		dst := filepath.Join(dir, outputName(path, r.format))
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil { //nolint:mnd // owner rwx, group rx
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(dst, outputs[i], 0o600); err != nil { //nolint:mnd // owner rw access
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		r.logger.InfoContext(ctx, "wrote document",
			slog.String("source", path),
			slog.String("output", dst),
		)
	}
	return nil
}

// outputName keeps the relative layout of local source paths and swaps the
// extension for the format's.
func outputName(path string, format content.Format) string {
	name := filepath.Clean(path)
	if !filepath.IsLocal(name) {
		name = filepath.Base(name)
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + format.Ext()
}

func writeAll(w io.Writer, outputs [][]byte) error {
	for _, out := range outputs {
		if _, err := w.Write(out); err != nil {
			return err
		}
		if len(out) > 0 && out[len(out)-1] != '\n' {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
