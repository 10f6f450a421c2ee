package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradualcheck/gradual/pkg/logging"
)

var (
	logLevel  string
	logFormat string
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:           "gradual",
	Short:         "gradual is a static type checker for Python",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")

	rootCmd.AddCommand(configCmd)
}

// Execute runs the CLI and returns a process exit code.
func Execute(version string) int {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the logger from the persistent logging flags. With
// --log-file set, logs fan out to stderr and to JSON in the file.
func newLogger() (*slog.Logger, func(), error) {
	level := logging.ParseLevel(logLevel)
	stderr := logging.New(logging.Config{
		Level:  level,
		Format: logging.ParseFormat(logFormat),
	})

	if logFile == "" {
		return stderr, func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	fanout := logging.NewFanout(
		stderr.Handler(),
		slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}),
	)
	return slog.New(fanout), func() { _ = f.Close() }, nil
}
