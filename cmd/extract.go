package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mptwarrior/coursextract/internal/config"
	"github.com/mptwarrior/coursextract/internal/loader"
	"github.com/mptwarrior/coursextract/internal/outline"
	"github.com/mptwarrior/coursextract/internal/output"
)

var (
	fullModules  int
	totalModules int
	workers      int
	outPath      string
	rawOutPath   string
	outFormat    string
	noValidate   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Extract table of contents, modules and quizzes",
	Long: `Extract the table of contents, the first --full modules with their sections
and quiz questions, and placeholder records up to --total modules.

The result is written to --out and the raw document text to --raw-out, then a
summary is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args[0])
		if err != nil {
			return err
		}

		result := outline.NewExtractor(cfg.ExtractOptions(logger)).Extract(doc)

		validate := cfg.Output.Validate && !noValidate
		if err := output.WriteResult(cfg.Output.Path, cfg.OutputFormat(), result, validate); err != nil {
			return err
		}
		logger.Info("result written", "path", cfg.Output.Path, "format", cfg.OutputFormat(), "validated", validate)

		if cfg.Output.RawText != "" {
			if err := output.WriteRawText(cfg.Output.RawText, doc.Text); err != nil {
				return err
			}
			logger.Info("raw text written", "path", cfg.Output.RawText, "bytes", len(doc.Text))
		}

		output.FormatSummary(cmd.OutOrStdout(), result, output.Files{
			Result:  cfg.Output.Path,
			RawText: cfg.Output.RawText,
		})
		return nil
	},
}

// loadDocument loads the input and adds the supported formats to a
// missing-input error.
func loadDocument(cmd *cobra.Command, path string) (*outline.Document, error) {
	doc, err := loader.Load(cmd.Context(), path, logger)
	if errors.Is(err, loader.ErrInputMissing) {
		return nil, fmt.Errorf("%w (supported: %s)", err, strings.Join(loader.SupportedFormats(), ", "))
	}
	return doc, err
}

func init() {
	d := config.DefaultConfig()

	extractCmd.Flags().IntVarP(&fullModules, "full", "k", d.FullModules, "Number of leading modules extracted in full")
	extractCmd.Flags().IntVarP(&totalModules, "total", "n", d.TotalModules, "Total number of module records")
	extractCmd.Flags().IntVar(&workers, "workers", d.Workers, "Concurrent module extractions (1 = sequential)")
	extractCmd.Flags().StringVarP(&outPath, "out", "o", d.Output.Path, "Result file")
	extractCmd.Flags().StringVar(&rawOutPath, "raw-out", d.Output.RawText, "Raw text dump (empty disables)")
	extractCmd.Flags().StringVar(&outFormat, "format", d.Output.Format, "Result format: json or yaml")
	extractCmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip schema validation of the result")

	_ = vp.BindPFlag("full_modules", extractCmd.Flags().Lookup("full"))
	_ = vp.BindPFlag("total_modules", extractCmd.Flags().Lookup("total"))
	_ = vp.BindPFlag("workers", extractCmd.Flags().Lookup("workers"))
	_ = vp.BindPFlag("output.path", extractCmd.Flags().Lookup("out"))
	_ = vp.BindPFlag("output.raw_text", extractCmd.Flags().Lookup("raw-out"))
	_ = vp.BindPFlag("output.format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}
