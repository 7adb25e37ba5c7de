package listing

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLister_ParseLine(t *testing.T) {
	lister := NewLister("/mnt/user/", ".mp3")

	tests := []struct {
		name     string
		line     string
		wantName string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "escaped spaces",
			line:     `-rw-rw-rw- 1 nobody users 48656413 Oct  3  2022 /mnt/user/media/podcasts/btb/Part\ One：\ The\ Ballad.mp3`,
			wantName: "Part One： The Ballad.mp3",
			wantPath: "/mnt/user/media/podcasts/btb/Part One： The Ballad.mp3",
			wantOK:   true,
		},
		{
			name:     "plain path",
			line:     "-rw-r--r-- 1 nobody users 1024 Jan  1 10:00 /mnt/user/media/simple.mp3",
			wantName: "simple.mp3",
			wantPath: "/mnt/user/media/simple.mp3",
			wantOK:   true,
		},
		{
			name:   "total row",
			line:   "total 512",
			wantOK: false,
		},
		{
			name:   "blank line",
			line:   "",
			wantOK: false,
		},
		{
			name:   "wrong extension",
			line:   "-rw-r--r-- 1 nobody users 1024 Jan  1 10:00 /mnt/user/media/notes.txt",
			wantOK: false,
		},
		{
			name:   "outside root",
			line:   "-rw-r--r-- 1 nobody users 1024 Jan  1 10:00 /tmp/elsewhere.mp3",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := lister.ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if entry.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", entry.Name, tt.wantName)
			}
			if entry.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", entry.Path, tt.wantPath)
			}
		})
	}
}

func TestLister_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "files1.txt")

	content := `total 1024
-rw-rw-rw- 1 nobody users 48656413 Oct  3  2022 /mnt/user/media/btb/First\ Episode.mp3
-rw-rw-rw- 1 nobody users 51204989 Oct  4  2022 /mnt/user/media/btb/Second\ Episode.mp3
-rw-rw-rw- 1 nobody users      512 Oct  4  2022 /mnt/user/media/btb/cover.jpg
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	lister := NewLister("/mnt/user/", ".mp3")
	entries, err := lister.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Entry{
		{Name: "First Episode.mp3", Path: "/mnt/user/media/btb/First Episode.mp3"},
		{Name: "Second Episode.mp3", Path: "/mnt/user/media/btb/Second Episode.mp3"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Load() = %v, want %v", entries, want)
	}
}

func TestLister_LoadMissingFile(t *testing.T) {
	lister := NewLister("/mnt/user/", ".mp3")
	if _, err := lister.Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLister_ScanDir(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.mp3", "a.mp3", "C.MP3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "inner.mp3"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	lister := NewLister("/mnt/user/", ".mp3")
	entries, err := lister.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	wantNames := []string{"C.MP3", "a.mp3", "b.mp3"}
	if !reflect.DeepEqual(Names(entries), wantNames) {
		t.Errorf("ScanDir() names = %v, want %v", Names(entries), wantNames)
	}
	for _, e := range entries {
		if e.Path != filepath.Join(dir, e.Name) {
			t.Errorf("entry path = %q, want joined under %q", e.Path, dir)
		}
	}
}

func TestFindPath(t *testing.T) {
	entries := []Entry{
		{Name: "First.mp3", Path: "/mnt/user/a/First.mp3"},
		{Name: "Second.mp3", Path: "/mnt/user/a/Second.mp3"},
		{Name: "Second.mp3", Path: "/mnt/user/b/Second.mp3"},
	}

	path, ok := FindPath(entries, "Second.mp3")
	if !ok {
		t.Fatal("FindPath() ok = false, want true")
	}
	if path != "/mnt/user/a/Second.mp3" {
		t.Errorf("FindPath() = %q, want first hit in listing order", path)
	}

	if _, ok := FindPath(entries, "Missing.mp3"); ok {
		t.Error("FindPath() found a path for an unknown name")
	}
}

func TestNames(t *testing.T) {
	entries := []Entry{
		{Name: "one.mp3", Path: "/mnt/user/one.mp3"},
		{Name: "two.mp3", Path: "/mnt/user/two.mp3"},
	}

	want := []string{"one.mp3", "two.mp3"}
	if got := Names(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
