package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mptwarrior/coursextract/internal/outline"
	"github.com/mptwarrior/coursextract/internal/output"
)

var tocFormat string

var tocCmd = &cobra.Command{
	Use:   "toc <input>",
	Short: "Print the table of contents of a course document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd, args[0])
		if err != nil {
			return err
		}

		format := cfg.OutputFormat()
		if tocFormat != "" {
			if format, err = output.ParseFormat(tocFormat); err != nil {
				return err
			}
		}

		toc := outline.BuildTOC(doc.Text)
		logger.Debug("table of contents built", "entries", len(toc))
		return output.Encode(cmd.OutOrStdout(), format, toc)
	},
}

func init() {
	tocCmd.Flags().StringVar(&tocFormat, "format", "", "Output format: json or yaml (default from config)")
	rootCmd.AddCommand(tocCmd)
}
