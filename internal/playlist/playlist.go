package playlist

import (
	"encoding/json"
	"os"
	"strings"
)

// privateVideo is the placeholder the playlist exporter emits for
// entries that can no longer be resolved.
const privateVideo = "Private video"

// Parse extracts playlist entry names from an export.
//
// Three layouts are recognized:
//   - a JSON array of strings
//   - a bulletized export: a "[" line, one entry per line with a
//     trailing comma, and a closing "]" line
//   - plain text with one entry per line
//
// Blank entries and "Private video" placeholders are dropped in all
// layouts. Entry order is preserved.
func Parse(data []byte) []string {
	content := string(data)

	if strings.HasPrefix(strings.TrimSpace(content), "[") {
		var names []string
		if err := json.Unmarshal(data, &names); err == nil {
			return cleanJSON(names)
		}
		return parseBulleted(strings.Split(content, "\n"))
	}

	return parsePlain(strings.Split(content, "\n"))
}

// Load reads a playlist export from disk and parses it.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// parseBulleted handles the bracketed export layout. The first and
// last lines are the brackets themselves; every line between them is
// one entry with its trailing comma.
func parseBulleted(lines []string) []string {
	// A trailing newline leaves an empty final element behind.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= 2 {
		return nil
	}

	var entries []string
	for _, line := range lines[1 : len(lines)-1] {
		entry := strings.TrimRight(strings.TrimSpace(line), ",")
		if entry == "" || entry == privateVideo {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func parsePlain(lines []string) []string {
	var entries []string
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" || entry == privateVideo {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func cleanJSON(names []string) []string {
	var entries []string
	for _, name := range names {
		entry := strings.TrimSpace(name)
		if entry == "" || entry == privateVideo {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
