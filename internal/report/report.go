package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	ioutils "podalign/internal/io"
	"podalign/internal/model"
)

// Save writes matches to a JSON report at path.
//
// The report is a JSON array in playlist order, indented for manual
// review. Non-ASCII characters (full-width punctuation in filenames)
// are written literally, not escaped.
func Save(ctx context.Context, path string, matches []model.Match) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		return err
	}
	return ioutils.WriteFile(ctx, path, buf.Bytes())
}

// Load reads a JSON report written by Save.
func Load(path string) ([]model.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var matches []model.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return matches, nil
}

// WriteMapping writes the human-readable companion to the JSON
// report: one block per playlist entry showing what it was paired
// with.
func WriteMapping(ctx context.Context, path string, matches []model.Match) error {
	var buf bytes.Buffer
	for _, m := range matches {
		file := m.File
		if !m.Matched() {
			file = "(no match)"
		}
		fmt.Fprintf(&buf, "%d. %s\n", m.Order, m.PlaylistName)
		fmt.Fprintf(&buf, "   → %s\n\n", file)
	}
	return ioutils.WriteFile(ctx, path, buf.Bytes())
}

// Ordered returns the matched records sorted by playlist order.
// Absent matches are dropped.
func Ordered(matches []model.Match) []model.Match {
	sorted := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Matched() {
			sorted = append(sorted, m)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

// OrderedFiles returns the matched filenames sorted by playlist
// order. Absent matches contribute nothing.
func OrderedFiles(matches []model.Match) []string {
	sorted := Ordered(matches)
	files := make([]string, len(sorted))
	for i, m := range sorted {
		files[i] = m.File
	}
	return files
}

// WriteOrder writes one file per line to path. Callers pass the
// output of OrderedFiles, optionally resolved to full paths first.
func WriteOrder(ctx context.Context, path string, files []string) error {
	var buf bytes.Buffer
	for _, f := range files {
		buf.WriteString(f)
		buf.WriteByte('\n')
	}
	return ioutils.WriteFile(ctx, path, buf.Bytes())
}

// Stats summarizes one matching run.
type Stats struct {
	// PlaylistEntries is the number of playlist entries considered.
	PlaylistEntries int

	// Files is the number of audio files in the candidate pool.
	Files int

	// Matched is the number of entries that were paired with a file.
	Matched int

	// UnmatchedFiles is the number of files no entry claimed.
	UnmatchedFiles int

	// AverageScore is the mean score over paired entries, 0 when
	// nothing was paired.
	AverageScore float64

	// LowConfidence lists paired entries scoring below the warning
	// threshold, in playlist order.
	LowConfidence []model.Match
}

// Collect computes summary statistics for a matching run against a
// pool of fileCount candidates. Paired entries scoring below
// warnThreshold are collected for review.
func Collect(matches []model.Match, fileCount int, warnThreshold float64) Stats {
	stats := Stats{
		PlaylistEntries: len(matches),
		Files:           fileCount,
	}

	var sum float64
	for _, m := range matches {
		if !m.Matched() {
			continue
		}
		stats.Matched++
		sum += m.Score
		if m.Score < warnThreshold {
			stats.LowConfidence = append(stats.LowConfidence, m)
		}
	}

	stats.UnmatchedFiles = fileCount - stats.Matched
	if stats.Matched > 0 {
		stats.AverageScore = sum / float64(stats.Matched)
	}
	return stats
}
