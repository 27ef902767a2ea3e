package command

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stolasapp/elemental/internal/page"
	"github.com/stolasapp/elemental/internal/preview"
	"github.com/stolasapp/elemental/internal/server"
)

func serveCommand() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "serve [DIR]",
		Short: "serve a live preview of the documents in DIR",
		Long: "Serves every Markdown, HTML, and text file under DIR (default: the current\n" +
			"directory) as a rendered page. Files are re-read on each request.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Preview.Address = address
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			root, err := os.OpenRoot(dir)
			if err != nil {
				return err
			}
			defer func() { _ = root.Close() }()

			layout, err := page.NewLayout(cfg.Document)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			app := preview.New(cfg, logger, root.FS(), layout)
			srv, err := server.New(ctx, cfg.Preview, app, logger)
			if err != nil {
				return err
			}
			logger.DebugContext(ctx, "serving documents", slog.String("root", dir))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "address to listen on (overrides preview.address)")

	return cmd
}
