package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hookdeck/internal/export"
)

func newOutlineCommand() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "outline [deck.yaml]",
		Short: "Print the deck as an outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeck(firstArg(args))
			if err != nil {
				return err
			}

			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), export.Markdown(d))
				return err
			}

			out, err := export.Render(d, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for styled output")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
