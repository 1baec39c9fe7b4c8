package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamilsulima/code-snippets/internal/export"
)

var flagOutput string

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a snippet document in normalized form",
	Long: `Read a snippet document and write it back out with every entry
normalized: absolute ids, code markers stripped, tags as trimmed arrays,
unknown keys dropped. Writes to stdout unless -o is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readDocument(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if flagOutput != "" {
			f, err := os.Create(flagOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagOutput, err)
			}
			defer f.Close()
			out = f
		}

		return export.Write(out, records)
	},
}

func init() {
	fmtCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"write the normalized document to this file instead of stdout")
}
