package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"podalign/internal/align"
)

func newRenameCommand(opts *commandOptions) *cobra.Command {
	var (
		executeFlag bool
		jsonFlag    string
		filesFlag   string
		dirFlag     string
		padFlag     int
		tagFlag     bool
		yesFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename MP3 files with order prefixes from a saved report",
		Long: `Rename applies zero-padded order prefixes to the files named in the
match report. Without --execute this is a dry run that only shows what
would happen.`,
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
			if padFlag > 0 {
				settings.PadWidth = padFlag
			}
			if tagFlag {
				settings.ModifyTags = true
			}

			if executeFlag && !yesFlag {
				ok, err := confirm(fmt.Sprintf("Rename files listed in %s?", settings.ReportPath))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			aligner := align.NewAligner(settings, newProgressPrinter(opts.verbose))
			summary, err := aligner.Rename(cmd.Context(), executeFlag)
			if err != nil {
				return err
			}
			if executeFlag && summary.Errors > 0 {
				return fmt.Errorf("%d files could not be renamed", summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&executeFlag, "execute", false, "Actually rename files (default is a dry run)")
	cmd.Flags().StringVar(&jsonFlag, "json", "", "Match report to read")
	cmd.Flags().StringVar(&filesFlag, "files", "", "ls -l style file listing for path resolution")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to scan for MP3 files instead of a listing")
	cmd.Flags().IntVar(&padFlag, "pad", 0, "Zero-padding width for the order prefix")
	cmd.Flags().BoolVar(&tagFlag, "tag", false, "Write ID3 tags on renamed files")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
