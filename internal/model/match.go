package model

import "encoding/json"

// Confidence classifies a match score into a coarse band for display.
//
// The bands follow the thresholds used across the application:
// scores of 0.9 and above are High, 0.8 and above Medium, 0.7 and
// above Low, and anything below 0.7 (including absent matches) None.
type Confidence int

const (
	// ConfidenceNone marks an absent match or a score below 0.7.
	ConfidenceNone Confidence = iota

	// ConfidenceLow marks a score in [0.7, 0.8).
	ConfidenceLow

	// ConfidenceMedium marks a score in [0.8, 0.9).
	ConfidenceMedium

	// ConfidenceHigh marks a score of 0.9 or above.
	ConfidenceHigh
)

// String returns the lower-case band name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match pairs one playlist entry with the audio file chosen for it.
//
// Matches are produced in playlist order, one per entry, and are
// immutable after creation. An entry that could not be paired is
// still recorded, with an empty File, a zero Score and a FileIndex
// of -1.
//
// Example:
//
//	match := model.NewMatch(3, "Part One: The Ballad", "Part One The Ballad.mp3", 0.94, 17)
//	fmt.Println(match.Matched())    // true
//	fmt.Println(match.Confidence()) // high
type Match struct {
	// Order is the 1-based playlist position of the entry.
	Order int

	// PlaylistName is the playlist entry as it appeared in the export.
	PlaylistName string

	// File is the matched filename including extension.
	// Empty when no file could be matched.
	File string

	// Score is the similarity score in [0, 1].
	// Zero when no file could be matched.
	Score float64

	// FileIndex is the position of the matched file in the candidate
	// list. -1 when no file could be matched.
	FileIndex int
}

// NewMatch creates a match record for a successfully paired entry.
//
// Parameters:
//   - order: 1-based playlist position
//   - name: playlist entry text
//   - file: matched filename including extension
//   - score: similarity score in [0, 1]
//   - fileIndex: position of the file in the candidate list
func NewMatch(order int, name, file string, score float64, fileIndex int) Match {
	return Match{
		Order:        order,
		PlaylistName: name,
		File:         file,
		Score:        score,
		FileIndex:    fileIndex,
	}
}

// NewAbsentMatch creates a match record for an entry that could not
// be paired with any file.
func NewAbsentMatch(order int, name string) Match {
	return Match{
		Order:        order,
		PlaylistName: name,
		FileIndex:    -1,
	}
}

// Matched reports whether a file was assigned to this entry.
func (m Match) Matched() bool {
	return m.File != ""
}

// Confidence returns the display band for this match's score.
// Absent matches are always ConfidenceNone.
func (m Match) Confidence() Confidence {
	if !m.Matched() {
		return ConfidenceNone
	}
	switch {
	case m.Score >= 0.9:
		return ConfidenceHigh
	case m.Score >= 0.8:
		return ConfidenceMedium
	case m.Score >= 0.7:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// matchJSON is the wire shape of a Match. The mp3_file and file_index
// keys are omitted entirely for absent matches.
type matchJSON struct {
	Order        int     `json:"order"`
	PlaylistName string  `json:"playlist_name"`
	File         string  `json:"mp3_file,omitempty"`
	Score        float64 `json:"match_score"`
	FileIndex    *int    `json:"file_index,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m Match) MarshalJSON() ([]byte, error) {
	out := matchJSON{
		Order:        m.Order,
		PlaylistName: m.PlaylistName,
		File:         m.File,
		Score:        m.Score,
	}
	if m.Matched() {
		idx := m.FileIndex
		out.FileIndex = &idx
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Match) UnmarshalJSON(data []byte) error {
	var in matchJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	m.Order = in.Order
	m.PlaylistName = in.PlaylistName
	m.File = in.File
	m.Score = in.Score
	m.FileIndex = -1
	if in.FileIndex != nil {
		m.FileIndex = *in.FileIndex
	}

	return nil
}
