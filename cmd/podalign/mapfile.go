package main

import (
	"github.com/spf13/cobra"

	"podalign/internal/align"
)

func newMapFileCommand(opts *commandOptions) *cobra.Command {
	var (
		jsonFlag     string
		filesFlag    string
		dirFlag      string
		outFlag      string
		formatFlag   string
		fullPathFlag bool
	)

	cmd := &cobra.Command{
		Use:   "mapfile",
		Short: "Write the episode ordering file for the podcast feed server",
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
				settings.OrderPath = outFlag
			}
			if formatFlag != "" {
				settings.PlaylistFormat = formatFlag
			}
			if fullPathFlag {
				settings.FullPaths = true
			}

			aligner := align.NewAligner(settings, newProgressPrinter(opts.verbose))
			return aligner.MapFile(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&jsonFlag, "json", "", "Match report to read")
	cmd.Flags().StringVar(&filesFlag, "files", "", "ls -l style file listing for path resolution")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to scan for MP3 files instead of a listing")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Ordering output path")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: txt, m3u, m3u-ext, pls, wpl or zpl")
	cmd.Flags().BoolVar(&fullPathFlag, "full-path", false, "Write full paths instead of bare filenames")
	return cmd
}
