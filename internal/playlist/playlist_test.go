package playlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_Bulletized(t *testing.T) {
	content := `[
Part One: The Ballad of Someone,
Part Two: The Ballad of Someone,
Private video,
How It All Went Wrong ｜ BEHIND THE BASTARDS,
]
`

	want := []string{
		"Part One: The Ballad of Someone",
		"Part Two: The Ballad of Someone",
		"How It All Went Wrong ｜ BEHIND THE BASTARDS",
	}

	got := Parse([]byte(content))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_BulletizedCleanup(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"trailing comma", "Title,", "Title"},
		{"several trailing commas", "Title,,,", "Title"},
		{"interior comma kept", "Title, with comma,", "Title, with comma"},
		{"surrounding whitespace", "   Title,   ", "Title"},
		{"space before comma survives cleanup", "Title ,", "Title "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte("[\n" + tt.line + "\n]\n"))
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Parse() = %v, want [%q]", got, tt.want)
			}
		})
	}
}

func TestParse_BulletizedSkipsBlankLines(t *testing.T) {
	content := "[\nFirst,\n\n   \nSecond,\n]\n"

	want := []string{"First", "Second"}
	got := Parse([]byte(content))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_JSONArray(t *testing.T) {
	content := `["First Episode", "Private video", "Second Episode"]`

	want := []string{"First Episode", "Second Episode"}
	got := Parse([]byte(content))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_Plain(t *testing.T) {
	content := "First Episode\n\nPrivate video\nSecond Episode\n"

	want := []string{"First Episode", "Second Episode"}
	got := Parse([]byte(content))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_Empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"brackets only", "[\n]\n"},
		{"empty json array", "[]"},
		{"blank lines only", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse([]byte(tt.content)); len(got) != 0 {
				t.Errorf("Parse() = %v, want no entries", got)
			}
		})
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	content := "[\nZebra,\nApple,\nMango,\n]\n"

	want := []string{"Zebra", "Apple", "Mango"}
	got := Parse([]byte(content))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want order preserved %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playlist-bulletized1.txt")

	content := "[\nFirst,\nSecond,\n]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"First", "Second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}
