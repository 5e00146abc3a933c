package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mptwarrior/coursextract/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate <result>",
	Short: "Check a result file against the result schema",
	Long: `Check a JSON or YAML result file written by "coursextract extract" against
the embedded result schema. The format is taken from the file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.ValidateFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
