package match

import (
	"math"
	"testing"
)

func TestScore_IdenticalTitles(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"plain", "Episode Name", "Episode Name"},
		{"both empty", "", ""},
		{"same part marker", "Part One: Ep", "Part One: Ep"},
		{"unicode colon folds", "Part Two: Ep", "Part Two： Ep"},
		{"case difference", "EPISODE NAME", "episode name"},
		{"brand suffix stripped", "Episode Name | BEHIND THE BASTARDS", "Episode Name"},
		{"fullwidth separator", "Episode Name ｜ BEHIND THE BASTARDS", "Episode Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != 1 {
				t.Errorf("Score(%q, %q) = %v, want exactly 1", tt.a, tt.b, got)
			}
		})
	}
}

func TestScore_PartMismatchPenalty(t *testing.T) {
	got := Score("Part One: Episode Name", "Part Two： Episode Name")

	// Identical base names, so the penalty branch returns the bare
	// penalty factor.
	if math.Abs(got-0.3) > 1e-12 {
		t.Errorf("Score() = %v, want 0.3", got)
	}
	if got >= 0.7 {
		t.Errorf("Score() = %v, want < 0.7 for mismatched parts", got)
	}
}

func TestScore_PartMismatchOutranked(t *testing.T) {
	right := Score("Part Two: Episode Name", "Part Two： Episode Name")
	wrong := Score("Part Two: Episode Name", "Part One： Episode Name")

	if right <= wrong {
		t.Errorf("matching part scored %v, mismatched part scored %v, want matching higher", right, wrong)
	}
}

func TestScore_Approximate(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		// full = ratio("part one: episode name", "episode name"),
		// base = 1.
		{"marker only on one side", "Part One: Episode Name", "Episode Name", 0.7941176470588235},
		// full and base both ratio("episode name test", "episode name").
		{"trailing extra word", "Episode Name Test", "Episode Name", 0.8275862068965517},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"Episode Name", "Episode Name"},
		{"Part One: Ep", "Part Two: Ep"},
		{"completely different", "nothing alike here"},
		{"", "Episode"},
		{"Pt 3: Ep", "Part Three： Ep.mp3"},
	}

	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, want within [0, 1]", p[0], p[1], got)
		}
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Part One: Episode Name", "Episode Name"},
		{"Part One: Ep", "Part Two： Ep"},
		{"Episode Name Test", "Episode Name"},
		{"Ep ｜ BEHIND THE BASTARDS", "Ep"},
	}

	for _, p := range pairs {
		forward := Score(p[0], p[1])
		backward := Score(p[1], p[0])
		if forward != backward {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", p[0], p[1], forward, p[1], p[0], backward)
		}
	}
}
