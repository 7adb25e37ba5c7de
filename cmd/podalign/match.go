package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"podalign/internal/align"
)

func newMatchCommand(opts *commandOptions) *cobra.Command {
	var (
		playlistFlag string
		listingFlag  string
		dirFlag      string
		outFlag      string
		mappingFlag  string
		workersFlag  int
		tableFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match playlist entries to MP3 files and save the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if playlistFlag != "" {
				settings.PlaylistPath = playlistFlag
			}
			if listingFlag != "" {
				settings.ListingPath = listingFlag
				settings.MP3Dir = ""
			}
			if dirFlag != "" {
				settings.MP3Dir = dirFlag
			}
			if outFlag != "" {
				settings.ReportPath = outFlag
			}
			if mappingFlag != "" {
				settings.MappingPath = mappingFlag
			}
			if workersFlag > 0 {
				settings.MatchWorkers = workersFlag
			}

			aligner := align.NewAligner(settings, newProgressPrinter(opts.verbose))
			if err := aligner.Run(cmd.Context()); err != nil {
				return err
			}

			if tableFlag {
				fmt.Fprintln(cmd.OutOrStdout(), matchTable(aligner.Matches()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playlistFlag, "playlist", "", "Playlist export file")
	cmd.Flags().StringVar(&listingFlag, "listing", "", "ls -l style file listing")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Directory to scan for MP3 files instead of a listing")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "JSON report output path")
	cmd.Flags().StringVar(&mappingFlag, "mapping", "", "Human-readable mapping output path")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Concurrent scoring workers")
	cmd.Flags().BoolVar(&tableFlag, "table", false, "Render the match table on stdout after the run")
	return cmd
}
