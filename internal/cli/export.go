package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hookdeck/internal/export"
)

func newExportCommand() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export [deck.yaml]",
		Short: "Export the deck as JSON or markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(firstArg(args))
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = export.JSON(d)
				if err != nil {
					return err
				}
				data = append(data, '\n')
			case "markdown", "md":
				data = []byte(export.Markdown(d))
			default:
				return fmt.Errorf("unknown format %q (want json or markdown)", format)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
