// Package title normalizes Behind the Bastards episode titles.
//
// Playlist exports and local file names disagree about punctuation,
// casing, whitespace and the feed's trailing annotation. The functions
// here reduce both sides to a comparable form:
//
//	title.Normalize("Episode： Name ｜ BEHIND THE BASTARDS")
//	// "Episode: Name"
//
//	title.StripPartPrefix("Part Two: The Episode")
//	// "The Episode"
//
//	n, ok := title.PartNumber("Pt 3: The Episode")
//	// 3, true
//
// Normalize is idempotent and preserves case outside the folded
// punctuation. Part markers are recognized only at the very start of a
// title and only when a colon immediately follows the number.
package title
