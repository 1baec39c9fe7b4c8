package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamilsulima/code-snippets/internal/apperror"
	"github.com/kamilsulima/code-snippets/internal/export"
	"github.com/kamilsulima/code-snippets/internal/snippet"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a snippet document",
	Long: `Read a snippet document, run every entry through field
normalization, and summarize the result. Exits non-zero when the document
itself is malformed. Individual entries never fail: bad field values
normalize to defaults. Set LOG_LEVEL=debug for a per-snippet report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readDocument(args[0])
		if err != nil {
			return err
		}

		active := 0
		for _, r := range records {
			if r.Active() {
				active++
			}
			logger.Debug("snippet",
				slog.Uint64("id", uint64(r.ID())),
				slog.String("name", r.Name()),
				slog.String("scope", r.ScopeName("global")),
				slog.String("tags", r.TagsList()),
				slog.Bool("active", r.Active()),
				slog.Bool("network", r.Network()),
				slog.Bool("shared_network", r.SharedNetwork()),
			)
		}

		fmt.Printf("%s: %d snippets (%d active)\n", args[0], len(records), active)
		return nil
	},
}

func readDocument(path string) ([]*snippet.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NotFound("document", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := export.Read(f, environment())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
