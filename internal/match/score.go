package match

import (
	"strings"

	"podalign/internal/title"
)

// Weights blending the full-title ratio with the part-stripped base
// ratio, expressed in tenths so identical titles score exactly 1.
const (
	fullWeight = 7
	baseWeight = 3
)

// partMismatchPenalty scales the base ratio when both titles carry a
// part number and the numbers disagree.
const partMismatchPenalty = 0.3

// Score computes the similarity of two titles in [0, 1].
//
// Both titles are normalized before comparison. When both carry a
// leading part number and the numbers differ, only the part-stripped
// base ratio counts, scaled down by a hard penalty: "Part One" and
// "Part Two" of the same story read almost identically but are
// different episodes. Otherwise the score is a weighted blend of the
// ratio over the full normalized titles and the ratio over the
// part-stripped ones.
func Score(a, b string) float64 {
	base := Ratio(
		strings.ToLower(title.StripPartPrefix(a)),
		strings.ToLower(title.StripPartPrefix(b)),
	)

	partA, okA := title.PartNumber(a)
	partB, okB := title.PartNumber(b)
	if okA && okB && partA != partB {
		return base * partMismatchPenalty
	}

	full := Ratio(
		strings.ToLower(title.Normalize(a)),
		strings.ToLower(title.Normalize(b)),
	)

	return (fullWeight*full + baseWeight*base) / 10
}
