package main

import (
	"github.com/spf13/cobra"

	"podalign/internal/align"
)

func newScriptCommand(opts *commandOptions) *cobra.Command {
	var (
		jsonFlag  string
		filesFlag string
		dirFlag   string
		outFlag   string
		padFlag   int
	)

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Write a bash script of the rename commands for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if jsonFlag != "" {
				settings.ReportPath = jsonFlag
			}
			if filesFlag != "" {
				settings.ListingPath = filesFlag
				settings.MP3Dir = ""
			}
			if dirFlag != "" {
				settings.MP3Dir = dirFlag
			}
			if outFlag != "" {
				settings.ScriptPath = outFlag
			}
			if padFlag > 0 {
				settings.PadWidth = padFlag
			}

			aligner := align.NewAligner(settings, newProgressPrinter(opts.verbose))
			return aligner.Script(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&jsonFlag, "json", "", "Match report to read")
	cmd.Flags().StringVar(&filesFlag, "files", "", "ls -l style file listing for path resolution")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to scan for MP3 files instead of a listing")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Script output path")
	cmd.Flags().IntVar(&padFlag, "pad", 0, "Zero-padding width for the order prefix")
	return cmd
}
