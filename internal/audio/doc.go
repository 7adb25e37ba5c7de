// Package audio writes playlist order into audio files and playlist
// files.
//
// # ID3 Tagging
//
// Use the Tagger to record each episode's playlist position in its
// ID3 tags:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(audio.TagItem{Path: path, Order: 7, Title: name})
//
// The tagger supports:
//   - Track Number (the playlist position)
//   - Track Title (the playlist entry text)
//   - Album (the show name)
//   - Clearing stale comments
//
// # Playlist Generation
//
// Generate playlists over the matched files:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Behind the Bastards", entries)
//	os.WriteFile("episode_order.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
