package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"podalign/internal/align"
)

func newReverseCommand(opts *commandOptions) *cobra.Command {
	var (
		outputFlag  string
		inPlaceFlag bool
	)

	cmd := &cobra.Command{
		Use:   "reverse <file>",
		Short: "Reverse the line order of a list file",
		Long: `Reverse the line order of a list file.

Playlists exported newest-first need reversing before matching so that
order numbers follow broadcast order. Without --output or --in-place the
reversed lines are printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}

			aligner := align.NewAligner(settings, newProgressPrinter(opts.verbose))
			lines, err := aligner.Reverse(args[0], outputFlag, inPlaceFlag)
			if err != nil {
				return err
			}
			if outputFlag == "" && !inPlaceFlag {
				for _, line := range lines {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the reversed list to this path")
	cmd.Flags().BoolVar(&inPlaceFlag, "in-place", false, "Overwrite the input file with the reversed list")
	return cmd
}
