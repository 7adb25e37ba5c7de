// Package config provides configuration management for podalign.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to match and tag configs for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads playlist.txt and files.txt
//	// Writes matched_episodes.json and friends next to them
//	// ID3 tagging disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.MP3Dir = "/mnt/user/podcasts/btb"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Input paths (playlist export, file listing, MP3 directory)
//   - Matching (worker count, warn threshold)
//   - Output paths and rename padding
//   - Playlist generation
//   - ID3 tag modification
package config
