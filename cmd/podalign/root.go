package main

import (
	"github.com/spf13/cobra"

	"podalign/internal/config"
)

// commandOptions carries the persistent flags shared by every
// subcommand.
type commandOptions struct {
	configFlag string
	verbose    bool
}

// loadSettings resolves the settings for one command run: defaults,
// overlaid by the config file when one was given.
func (o *commandOptions) loadSettings() (*config.Settings, error) {
	if o.configFlag == "" {
		return config.DefaultSettings(), nil
	}
	return config.Load(o.configFlag)
}

func newRootCommand() *cobra.Command {
	opts := &commandOptions{}

	rootCmd := &cobra.Command{
		Use:   "podalign",
		Short: "Match playlist exports to MP3 files and keep them in playlist order",
		Long: `podalign pairs the entries of a playlist export with MP3 files on disk
using fuzzy title matching, then renames, tags and orders the files so
podcast players play them front to back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newMatchCommand(opts))
	rootCmd.AddCommand(newRenameCommand(opts))
	rootCmd.AddCommand(newScriptCommand(opts))
	rootCmd.AddCommand(newMapFileCommand(opts))
	rootCmd.AddCommand(newReverseCommand(opts))

	return rootCmd
}
