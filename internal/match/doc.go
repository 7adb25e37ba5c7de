// Package match pairs an ordered playlist with a pool of audio files
// using fuzzy title similarity.
//
// # Scoring
//
// Score compares two titles after normalization, blending a ratio
// over the full titles with a ratio over the titles stripped of their
// "Part N:" markers. Titles whose part numbers disagree are penalized
// hard, since consecutive parts of the same story differ by only a
// few characters:
//
//	match.Score("Part One: The Ballad", "Part One： The Ballad")  // ~1.0
//	match.Score("Part One: The Ballad", "Part Two： The Ballad")  // 0.3
//
// The underlying Ratio is a character-level longest-matching-blocks
// similarity in [0, 1].
//
// # Assignment
//
// Assign walks the playlist in order and gives each entry the
// best-scoring file not yet taken by an earlier entry. The pass is
// greedy with no backtracking: earlier entries choose first, later
// entries pick from what remains. Entries with no usable candidate
// are still recorded, as absent matches:
//
//	matches, err := match.Assign(ctx, entries, files, match.Options{TrimExt: ".mp3"})
//
// Scoring a single entry's candidates can be spread over several
// goroutines via Options.Workers; the selected matches are identical
// to the sequential result.
package match
