package listing

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Entry is one audio file discovered in a listing: its bare filename
// and the full path it was found under.
type Entry struct {
	Name string
	Path string
}

// Lister extracts audio file entries from `ls -l` style listings and
// from directories.
type Lister struct {
	pathPattern *regexp.Regexp
	ext         string
}

// NewLister creates a Lister for files under root with the given
// extension.
//
// Parameters:
//   - root: path prefix the listing lines are matched against,
//     e.g. "/mnt/user/"
//   - ext: audio file extension including the dot, e.g. ".mp3"
func NewLister(root, ext string) *Lister {
	return &Lister{
		pathPattern: regexp.MustCompile(regexp.QuoteMeta(root) + `.*` + regexp.QuoteMeta(ext)),
		ext:         ext,
	}
}

// ParseLine extracts the file entry from one listing line.
//
// The line is expected to contain a path under the Lister's root,
// typically the tail of an `ls -l` row. Shell escaping backslashes
// are removed from the extracted path. Lines without a matching path
// report ok = false.
func (l *Lister) ParseLine(line string) (Entry, bool) {
	raw := l.pathPattern.FindString(line)
	if raw == "" {
		return Entry{}, false
	}

	path := strings.ReplaceAll(raw, `\`, "")
	return Entry{Name: filepath.Base(path), Path: path}, true
}

// Load reads a listing file and extracts an entry from every line
// that contains one, preserving line order.
func (l *Lister) Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if entry, ok := l.ParseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// ScanDir lists the audio files directly inside dir, sorted by name.
// The extension comparison is case-insensitive, so ".MP3" files are
// picked up as well.
func (l *Lister) ScanDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.EqualFold(filepath.Ext(name), l.ext) {
			continue
		}
		entries = append(entries, Entry{Name: name, Path: filepath.Join(dir, name)})
	}
	return entries, nil
}

// FindPath returns the full path of the entry whose path ends with
// name. The first hit in listing order wins.
func FindPath(entries []Entry, name string) (string, bool) {
	for _, e := range entries {
		if strings.HasSuffix(e.Path, name) {
			return e.Path, true
		}
	}
	return "", false
}

// Names returns the entry filenames in listing order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
