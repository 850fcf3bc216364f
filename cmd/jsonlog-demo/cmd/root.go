package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/jsonlog/internal/config"
	"github.com/oshokin/jsonlog/internal/service/demo"
	"github.com/oshokin/jsonlog/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// level overrides the configured minimum severity.
	level string
	// id overrides the configured correlation id.
	id string
	// format overrides the configured renderer.
	format string

	// rootCmd represents the base command for the demo.
	rootCmd = &cobra.Command{
		Use:   "jsonlog-demo",
		Short: "Write sample records through an enriching JSON logger.",
		Long: `Builds a logger from the settings file and writes a fixed series of sample records.

Every record is one JSON object carrying the message ("event"), the severity ("level"),
an ISO-8601 "timestamp" and the logger's correlation "id".
Records below the configured level are not written.

A missing default settings file is ignored; a missing file passed with --config is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return demo.Run(ctx, &demo.Options{
				ConfigPath:     configPath,
				ConfigRequired: cmd.Flags().Changed("config"),
				Level:          level,
				ID:             id,
				Format:         format,
			})
		},
	}
)

// Execute runs the jsonlog-demo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&level, "level", "l", "", "minimum level: debug, info, warning, error or critical")
	rootCmd.Flags().StringVar(&id, "id", "", "correlation id stamped on every record (generated when empty)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "record format: json or console")
}
