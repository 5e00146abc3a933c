package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mptwarrior/coursextract/internal/config"
	"github.com/mptwarrior/coursextract/internal/version"
)

var (
	cfgFile  string
	logLevel string

	// vp holds defaults, the config file, env and bound flags.
	vp = viper.New()

	// cfg and logger are set by the root PersistentPreRunE.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coursextract",
	Short: "Extract course structure from academy documents",
	Long: `coursextract reads a course document (PDF, EPUB or plain text) and turns it
into structured data: a table of contents, the written modules split into titled
sections with their quiz questions, and placeholders for modules still to come.

Results are written as JSON or YAML and checked against a JSON Schema.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(vp, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = newLogger(cmd, cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("coursextract %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./coursextract.yaml or ~/.coursextract/coursextract.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)
	_ = vp.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// newLogger writes text logs to the command's stderr.
func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	lvl, _ := config.ParseLogLevel(level)
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

// Execute runs the root command
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
