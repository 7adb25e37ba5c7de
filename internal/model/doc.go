// Package model defines the core data structures used throughout
// the podalign application.
//
// # Match
//
// Match pairs one playlist entry with the MP3 file chosen for it,
// carrying the playlist position, the similarity score and the file's
// index in the candidate pool:
//
//	match := model.NewMatch(3, "Part One: The Ballad", "Part One The Ballad.mp3", 0.94, 17)
//	fmt.Println(match.Matched())    // true
//	fmt.Println(match.Confidence()) // high
//
// Entries that could not be paired are recorded too, so reports keep
// one record per playlist entry:
//
//	absent := model.NewAbsentMatch(4, "Private video")
//	fmt.Println(absent.Matched()) // false
//
// # Confidence
//
// Confidence buckets a score into the display bands used by the CLI
// table and the TUI review list: high (>= 0.9), medium (>= 0.8),
// low (>= 0.7) and none below that.
//
// # JSON
//
// Match marshals with the report's wire keys (order, playlist_name,
// mp3_file, match_score, file_index); mp3_file and file_index are
// omitted for absent matches, and unmarshalling restores them to the
// empty string and -1.
package model
