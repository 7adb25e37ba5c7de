package listing

import (
	"os"
	"strings"
)

// ReadList reads a list file into its non-blank lines. Line endings
// are stripped but interior whitespace is kept untouched.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines, nil
}

// WriteList writes lines to a list file, one per line.
func WriteList(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// Reverse returns the lines in reverse order. The input is left
// unmodified.
func Reverse(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = line
	}
	return out
}

// ReverseFile reads a list file, reverses its line order and returns
// the reversed lines. When outputPath is non-empty the result is also
// written there; passing the input path reverses the file in place.
func ReverseFile(inputPath, outputPath string) ([]string, error) {
	lines, err := ReadList(inputPath)
	if err != nil {
		return nil, err
	}

	reversed := Reverse(lines)
	if outputPath != "" {
		if err := WriteList(outputPath, reversed); err != nil {
			return nil, err
		}
	}
	return reversed, nil
}
