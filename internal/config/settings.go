package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"podalign/internal/audio"
	"podalign/internal/match"
)

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	PlaylistPath string `json:"playlist_path"`
	ListingPath  string `json:"listing_path"`
	MP3Dir       string `json:"mp3_dir"`
	ListingRoot  string `json:"listing_root"`
	AudioExt     string `json:"audio_ext"`

	// Matching settings
	MatchWorkers  int     `json:"match_workers"`
	WarnThreshold float64 `json:"warn_threshold"`

	// Output settings
	ReportPath  string `json:"report_path"`
	MappingPath string `json:"mapping_path"`
	ScriptPath  string `json:"script_path"`
	OrderPath   string `json:"order_path"`
	PadWidth    int    `json:"pad_width"`
	FullPaths   bool   `json:"full_paths"`

	// Playlist settings
	PlaylistFormat string `json:"playlist_format"` // txt, m3u, m3u-ext, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool   `json:"modify_tags"`
	TagTitles  bool   `json:"tag_titles"`
	TagAlbum   string `json:"tag_album"`
	TagWorkers int    `json:"tag_workers"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		PlaylistPath: "playlist.txt",
		ListingPath:  "files.txt",
		MP3Dir:       "",
		ListingRoot:  "/mnt/user/",
		AudioExt:     ".mp3",

		MatchWorkers:  1,
		WarnThreshold: 0.7,

		ReportPath:  "matched_episodes.json",
		MappingPath: "episode_mapping.txt",
		ScriptPath:  "rename_episodes.sh",
		OrderPath:   "episode_order.txt",
		PadWidth:    3,
		FullPaths:   false,

		PlaylistFormat: "txt",
		M3UExtended:    true,

		ModifyTags: false,
		TagTitles:  true,
		TagAlbum:   "",
		TagWorkers: 4,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToMatchOptions converts settings to match.Options.
func (s *Settings) ToMatchOptions() match.Options {
	return match.Options{
		TrimExt: s.AudioExt,
		Workers: s.MatchWorkers,
	}
}

// ToTagConfig converts settings to a TagConfig.
//
// The track number frame is always written when tagging runs; the title
// and album frames follow the TagTitles and TagAlbum settings.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags

	if s.TagTitles {
		cfg.TrackTitle = audio.TagModify
	} else {
		cfg.TrackTitle = audio.TagDoNotModify
	}

	if s.TagAlbum != "" {
		cfg.Album = audio.TagModify
	}

	return cfg
}

// ToPlaylistFormat maps the playlist format setting to a PlaylistFormat.
//
// The "txt" value is handled by the aligner before this mapping applies;
// unknown values fall back to M3U.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	switch s.PlaylistFormat {
	case "m3u", "m3u-ext":
		return audio.FormatM3U
	case "pls":
		return audio.FormatPLS
	case "wpl":
		return audio.FormatWPL
	case "zpl":
		return audio.FormatZPL
	default:
		return audio.FormatM3U
	}
}
