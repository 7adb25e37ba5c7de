package title

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// brandSuffix is the annotation the feed appends to every episode title.
const brandSuffix = "BEHIND THE BASTARDS"

var (
	// suffixPattern matches the trailing feed annotation and its pipe
	// separator. Titles are width-folded before this runs, so the ASCII
	// pipe covers the full-width form too.
	suffixPattern = regexp.MustCompile(`(?i)\s*\|\s*` + brandSuffix + `\s*$`)

	// partPattern and ptPattern recognize leading sequence markers.
	// The colon may be ASCII or full-width and must immediately follow
	// the number token.
	partPattern = regexp.MustCompile(`(?i)^Part\s+(One|Two|Three|Four|Five|Six|Seven|Eight|Nine|Ten|\d+)[:：]\s*`)
	ptPattern   = regexp.MustCompile(`(?i)^Pt\s+(\d+)[:：]\s*`)
)

// partWords maps spelled-out part numbers to their values. The feed
// switches to digits beyond ten, so larger words are not recognized.
var partWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Normalize canonicalizes an episode title for comparison.
//
// The following transformations are applied, in order:
//   - Full-width punctuation variants (：, ？, ｜ and friends) are folded
//     to their ASCII equivalents
//   - Runs of whitespace collapse to single spaces
//   - The trailing brand annotation, with its pipe separator, is removed
//     case-insensitively, repeatedly if stacked
//
// Case is preserved everywhere else, and the result is a fixed point:
// Normalize(Normalize(x)) == Normalize(x).
//
// Example:
//
//	Normalize("Episode： Name ｜ BEHIND THE BASTARDS") // "Episode: Name"
//	Normalize("Episode   Name    Test")               // "Episode Name Test"
func Normalize(s string) string {
	t := width.Fold.String(s)
	t = strings.Join(strings.Fields(t), " ")

	for {
		stripped := suffixPattern.ReplaceAllString(t, "")
		if stripped == t {
			break
		}
		t = stripped
	}

	return strings.TrimSpace(t)
}

// StripPartPrefix removes a leading sequence marker, then normalizes.
//
// Both marker forms are recognized case-insensitively with an ASCII or
// full-width colon: "Part <word-or-digits>:" and "Pt <digits>:". The
// result compares episode names independent of their position in a
// multi-part story.
//
// Example:
//
//	StripPartPrefix("Part One: Episode Name | BEHIND THE BASTARDS")
//	// "Episode Name"
func StripPartPrefix(s string) string {
	t := partPattern.ReplaceAllString(s, "")
	t = ptPattern.ReplaceAllString(t, "")
	return Normalize(t)
}

// PartNumber extracts the sequence number from a leading part marker.
//
// Only the very start of the raw title is scanned; a marker appearing
// mid-string does not count. The colon is required, so "Part One Title"
// has no part number. Word forms map one through ten; digit forms parse
// decimally. The second return value reports whether a marker was found.
//
// Example:
//
//	PartNumber("Part Two: Title") // 2, true
//	PartNumber("Pt 42: Title")    // 42, true
//	PartNumber("Part One Title")  // 0, false
func PartNumber(s string) (int, bool) {
	if m := partPattern.FindStringSubmatch(s); m != nil {
		if n, ok := partWords[strings.ToLower(m[1])]; ok {
			return n, true
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if m := ptPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}

	return 0, false
}
