package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hookdeck/internal/deck"
	"hookdeck/internal/discovery"
)

// errInvalidDecks is returned when at least one deck failed to load
var errInvalidDecks = errors.New("invalid decks found")

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path...]",
		Short: "Check deck files for errors",
		Long: `Parses each deck and checks slide ids, kinds and links.
Directories are searched for YAML files with a top-level slides key.
Without arguments the builtin deck is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				d, err := deck.Default()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ok    %s (%d slides)\n", d.Source, d.Len())
				return nil
			}

			svc := discovery.NewService(nil, nil)
			paths, err := svc.Scan(cmd.Context(), args)
			if err != nil {
				return err
			}

			failed := 0
			for _, skipped := range svc.Skipped() {
				failed++
				fmt.Fprintf(out, "FAIL  %s: %v\n", skipped.Path, skipped.Err)
			}
			if len(paths) == 0 && failed == 0 {
				fmt.Fprintln(out, "no decks found")
				return nil
			}

			for _, path := range paths {
				d, err := deck.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "ok    %s (%d slides)\n", path, d.Len())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(paths)+len(svc.Skipped()), errInvalidDecks)
			}
			return nil
		},
	}
}
