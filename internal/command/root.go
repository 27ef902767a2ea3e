// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stolasapp/elemental/internal/config"
	"github.com/stolasapp/elemental/internal/observability"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	defaultPath := config.DefaultPath()
	configFilePath := defaultPath
	cmd := &cobra.Command{
		Use:          "elemental [command] [flags]",
		Short:        "Render documents into complete, sanitized HTML pages",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadOrDefaultConfig(configFilePath, configFilePath == defaultPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration file: %w", err)
			}
			logger := observability.InitSlog(cfg)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("path", configFilePath),
				slog.Any("config", cfg),
			)
			slog.SetDefault(logger)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the configuration file",
	)

	cmd.AddCommand(
		renderCommand(),
		serveCommand(),
	)

	return cmd
}

// loadOrDefaultConfig loads the config file at path. A missing file is only
// an error when the path was chosen explicitly.
func loadOrDefaultConfig(path string, optional bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && optional && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
