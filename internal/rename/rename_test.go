package rename

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"podalign/internal/listing"
	"podalign/internal/model"
)

func TestPlan(t *testing.T) {
	matches := []model.Match{
		model.NewMatch(1, "First", "First Episode.mp3", 0.95, 0),
		model.NewMatch(2, "Second", "002_Second Episode.mp3", 0.9, 1),
		model.NewAbsentMatch(3, "Missing"),
		model.NewMatch(4, "Fourth", "Unlisted Episode.mp3", 0.8, 2),
	}
	entries := []listing.Entry{
		{Name: "First Episode.mp3", Path: "/mnt/user/btb/First Episode.mp3"},
		{Name: "002_Second Episode.mp3", Path: "/mnt/user/btb/002_Second Episode.mp3"},
	}

	ops := Plan(matches, entries, 3)

	if len(ops) != 3 {
		t.Fatalf("Plan() produced %d ops, want 3 (absent match dropped)", len(ops))
	}

	if ops[0].Action != ActionRename {
		t.Errorf("ops[0].Action = %v, want ActionRename", ops[0].Action)
	}
	if ops[0].NewName != "001_First Episode.mp3" {
		t.Errorf("ops[0].NewName = %q, want %q", ops[0].NewName, "001_First Episode.mp3")
	}
	if ops[0].Src != "/mnt/user/btb/First Episode.mp3" {
		t.Errorf("ops[0].Src = %q", ops[0].Src)
	}
	if ops[0].Dst != "/mnt/user/btb/001_First Episode.mp3" {
		t.Errorf("ops[0].Dst = %q", ops[0].Dst)
	}

	if ops[1].Action != ActionSkip {
		t.Errorf("ops[1].Action = %v, want ActionSkip for prefixed file", ops[1].Action)
	}

	if ops[2].Action != ActionMissing {
		t.Errorf("ops[2].Action = %v, want ActionMissing for unlisted file", ops[2].Action)
	}
	if ops[2].Src != "" || ops[2].Dst != "" {
		t.Errorf("missing op should carry no paths, got Src %q Dst %q", ops[2].Src, ops[2].Dst)
	}
}

func TestPlan_PrefixDetection(t *testing.T) {
	entries := []listing.Entry{
		{Name: "01_Short.mp3", Path: "/mnt/user/01_Short.mp3"},
		{Name: "0010_Long.mp3", Path: "/mnt/user/0010_Long.mp3"},
		{Name: "abc_Letters.mp3", Path: "/mnt/user/abc_Letters.mp3"},
	}
	matches := []model.Match{
		model.NewMatch(1, "A", "01_Short.mp3", 1, 0),
		model.NewMatch(2, "B", "0010_Long.mp3", 1, 1),
		model.NewMatch(3, "C", "abc_Letters.mp3", 1, 2),
	}

	ops := Plan(matches, entries, 3)
	for i, op := range ops {
		if op.Action != ActionRename {
			t.Errorf("ops[%d] (%s) = %v, want ActionRename: prefix width must be exact", i, op.Name, op.Action)
		}
	}
}

func TestPlan_WideOrderKeepsDigits(t *testing.T) {
	matches := []model.Match{
		model.NewMatch(1234, "Big", "Big.mp3", 1, 0),
	}
	entries := []listing.Entry{{Name: "Big.mp3", Path: "/mnt/user/Big.mp3"}}

	ops := Plan(matches, entries, 3)
	if ops[0].NewName != "1234_Big.mp3" {
		t.Errorf("NewName = %q, want %q", ops[0].NewName, "1234_Big.mp3")
	}
}

func TestApply_DryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Episode.mp3")
	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ops := []Op{
		{Order: 1, Name: "Episode.mp3", NewName: "001_Episode.mp3", Src: src, Dst: filepath.Join(dir, "001_Episode.mp3"), Action: ActionRename},
		{Order: 2, Name: "002_Done.mp3", NewName: "002_002_Done.mp3", Action: ActionSkip},
		{Order: 3, Name: "Gone.mp3", NewName: "003_Gone.mp3", Action: ActionMissing},
	}

	var calls int
	sum := Apply(context.Background(), ops, false, func(Op, error) { calls++ })

	if sum.Renamed != 1 || sum.Skipped != 1 || sum.Errors != 1 {
		t.Errorf("Summary = %+v, want 1/1/1", sum)
	}
	if calls != 3 {
		t.Errorf("callback called %d times, want 3", calls)
	}

	// Dry run must not touch the filesystem.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file missing after dry run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "001_Episode.mp3")); err == nil {
		t.Error("dry run created the destination file")
	}
}

func TestApply_Execute(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Episode.mp3")
	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ops := []Op{
		{Order: 1, Name: "Episode.mp3", NewName: "001_Episode.mp3", Src: src, Dst: filepath.Join(dir, "001_Episode.mp3"), Action: ActionRename},
	}

	sum := Apply(context.Background(), ops, true, nil)
	if sum.Renamed != 1 || sum.Errors != 0 {
		t.Errorf("Summary = %+v, want 1 renamed", sum)
	}

	if _, err := os.Stat(filepath.Join(dir, "001_Episode.mp3")); err != nil {
		t.Errorf("destination missing after rename: %v", err)
	}
	if _, err := os.Stat(src); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("source still present after rename, stat err = %v", err)
	}
}

func TestApply_ExecuteMissingSource(t *testing.T) {
	dir := t.TempDir()

	ops := []Op{
		{
			Order:   1,
			Name:    "Vanished.mp3",
			NewName: "001_Vanished.mp3",
			Src:     filepath.Join(dir, "Vanished.mp3"),
			Dst:     filepath.Join(dir, "001_Vanished.mp3"),
			Action:  ActionRename,
		},
	}

	var gotErr error
	sum := Apply(context.Background(), ops, true, func(_ Op, err error) { gotErr = err })

	if sum.Errors != 1 || sum.Renamed != 0 {
		t.Errorf("Summary = %+v, want 1 error", sum)
	}
	if !errors.Is(gotErr, fs.ErrNotExist) {
		t.Errorf("callback error = %v, want fs.ErrNotExist", gotErr)
	}
}

func TestApply_PlanThenExecute(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"B Side.mp3", "A Side.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	lister := listing.NewLister("/mnt/user/", ".mp3")
	entries, err := lister.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	matches := []model.Match{
		model.NewMatch(1, "B Side", "B Side.mp3", 1, 1),
		model.NewMatch(2, "A Side", "A Side.mp3", 1, 0),
	}

	ops := Plan(matches, entries, 3)
	sum := Apply(context.Background(), ops, true, nil)
	if sum.Renamed != 2 {
		t.Fatalf("Summary = %+v, want 2 renamed", sum)
	}

	for _, want := range []string{"001_B Side.mp3", "002_A Side.mp3"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected %s after rename: %v", want, err)
		}
	}
}
