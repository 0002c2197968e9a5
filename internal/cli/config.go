package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hookdeck/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hookdeck configuration",
	}
	cmd.AddCommand(newConfigInitCommand(), newConfigPathCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var local, force bool
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			switch {
			case target != "":
			case local:
				target = config.LocalFileName
			default:
				target = config.DefaultPath()
			}

			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", target)
			}

			svc := config.NewConfigServiceAt(target)
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			abs, _ := filepath.Abs(target)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", abs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "write "+config.LocalFileName+" in the current directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "write to this file instead")
	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path [deck.yaml]",
		Short: "Print the config file a deck would use",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.ResolveService(firstArg(args), nil)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
			return err
		},
	}
}
