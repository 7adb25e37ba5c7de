package align

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	"podalign/internal/audio"
	"podalign/internal/config"
	ioutils "podalign/internal/io"
	"podalign/internal/listing"
	"podalign/internal/match"
	"podalign/internal/model"
	"podalign/internal/playlist"
	"podalign/internal/rename"
	"podalign/internal/report"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an alignment progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Aligner coordinates the matching workflow: loading the playlist and
// the candidate pool, scoring, and producing the report, rename and
// ordering outputs.
type Aligner struct {
	settings *config.Settings
	lister   *listing.Lister
	tagger   *audio.Tagger
	playlist *audio.PlaylistCreator

	entries []string
	files   []listing.Entry
	matches []model.Match

	// Rename progress counters, polled by the TUI.
	processedOps int32
	totalOps     int32

	onProgress func(ProgressEvent)
}

// NewAligner creates a new Aligner.
func NewAligner(settings *config.Settings, onProgress func(ProgressEvent)) *Aligner {
	extended := settings.M3UExtended
	if settings.PlaylistFormat == "m3u-ext" {
		extended = true
	}

	return &Aligner{
		settings:   settings,
		lister:     listing.NewLister(settings.ListingRoot, settings.AudioExt),
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		playlist:   audio.NewPlaylistCreator(settings.ToPlaylistFormat(), extended),
		onProgress: onProgress,
	}
}

// Run matches the playlist against the candidate pool and saves the
// JSON report and the human-readable mapping file.
func (a *Aligner) Run(ctx context.Context) error {
	if err := a.loadInputs(); err != nil {
		return err
	}

	a.info("")
	a.info("Matching playlist entries to MP3 files...")
	a.rule()

	matches, err := match.Assign(ctx, a.entries, listing.Names(a.files), a.settings.ToMatchOptions())
	if err != nil {
		return err
	}
	a.matches = matches

	for _, m := range matches {
		a.info("")
		a.info("%d. %s", m.Order, m.PlaylistName)
		if m.Matched() {
			a.info("   → %s", m.File)
			a.info("   (match score: %.2f%%)", m.Score*100)
		} else {
			a.info("   → NO MATCH FOUND")
		}
	}

	a.info("")
	a.rule()
	a.info("")

	a.info("Saving results to %s...", a.settings.ReportPath)
	if err := report.Save(ctx, a.settings.ReportPath, matches); err != nil {
		return fmt.Errorf("write %s: %w", a.settings.ReportPath, err)
	}

	a.info("Saving simple mapping to %s...", a.settings.MappingPath)
	if err := report.WriteMapping(ctx, a.settings.MappingPath, matches); err != nil {
		return fmt.Errorf("write %s: %w", a.settings.MappingPath, err)
	}

	a.logStats()

	a.info("")
	a.success("Done! Results saved to:")
	a.info("  - %s (detailed JSON)", a.settings.ReportPath)
	a.info("  - %s (human-readable)", a.settings.MappingPath)

	return nil
}

// Rename applies order prefixes to the matched files.
//
// With execute false this is a dry run that only reports what would
// happen. A live run moves the files and, when tagging is enabled,
// stamps ID3 frames onto the renamed files.
func (a *Aligner) Rename(ctx context.Context, execute bool) (rename.Summary, error) {
	s := a.settings

	a.info("Loading matches from %s...", s.ReportPath)
	matches, err := report.Load(s.ReportPath)
	if err != nil {
		return rename.Summary{}, err
	}
	a.matches = matches
	a.info("Found %d matched episodes", len(report.Ordered(matches)))

	entries, err := a.loadEntries()
	if err != nil {
		return rename.Summary{}, err
	}

	a.info("")
	if execute {
		a.info("*** LIVE RUN - Files will be renamed ***")
	} else {
		a.info("*** DRY RUN - No files will be renamed ***")
	}
	a.info("")

	titles := make(map[int]string, len(matches))
	for _, m := range matches {
		titles[m.Order] = m.PlaylistName
	}

	ops := rename.Plan(matches, entries, s.PadWidth)
	atomic.StoreInt32(&a.totalOps, int32(len(ops)))
	atomic.StoreInt32(&a.processedOps, 0)

	var tagItems []audio.TagItem
	summary := rename.Apply(ctx, ops, execute, func(op rename.Op, err error) {
		atomic.AddInt32(&a.processedOps, 1)
		switch op.Action {
		case rename.ActionSkip:
			a.info("SKIP: %s (already has order prefix)", op.Name)

		case rename.ActionMissing:
			a.errorf("Could not find path for %s", op.Name)

		default:
			a.info("%3d. %s", op.Order, op.Name)
			a.info("     → %s", op.NewName)
			if !execute {
				return
			}
			switch {
			case err == nil:
				a.success("     ✓ Renamed successfully")
				tagItems = append(tagItems, audio.TagItem{
					Path:  op.Dst,
					Order: op.Order,
					Title: titles[op.Order],
					Album: s.TagAlbum,
				})
			case errors.Is(err, fs.ErrNotExist):
				a.errorf("     ✗ Source file not found!")
			default:
				a.errorf("     ✗ Error: %v", err)
			}
		}
	})

	a.rule()
	a.info("Summary:")
	if execute {
		a.info("  Renamed: %d", summary.Renamed)
	} else {
		a.info("  Would rename: %d", summary.Renamed)
	}
	a.info("  Skipped (already prefixed): %d", summary.Skipped)
	a.info("  Errors: %d", summary.Errors)

	if execute && s.ModifyTags && len(tagItems) > 0 {
		if err := a.tagRenamed(ctx, tagItems); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// Script writes the bash rename script for review.
func (a *Aligner) Script(ctx context.Context) error {
	s := a.settings

	a.info("Loading matches from %s...", s.ReportPath)
	matches, err := report.Load(s.ReportPath)
	if err != nil {
		return err
	}
	a.matches = matches
	a.info("Found %d matched episodes", len(report.Ordered(matches)))

	entries, err := a.loadEntries()
	if err != nil {
		return err
	}

	ops := rename.Plan(matches, entries, s.PadWidth)
	if err := ioutils.WriteFile(ctx, s.ScriptPath, []byte(rename.Script(ops))); err != nil {
		return fmt.Errorf("write %s: %w", s.ScriptPath, err)
	}

	a.success("Rename script saved to %s", s.ScriptPath)
	a.info("Review the script, then run: bash %s", s.ScriptPath)

	return nil
}

// MapFile writes the ordering output consumed by the podcast feed
// server: the matched filenames sorted by playlist order, as plain
// text or as a playlist in the configured format.
func (a *Aligner) MapFile(ctx context.Context) error {
	s := a.settings

	a.info("Loading matches from %s...", s.ReportPath)
	matches, err := report.Load(s.ReportPath)
	if err != nil {
		return err
	}
	a.matches = matches

	ordered := report.Ordered(matches)
	a.info("Found %d matched episodes", len(ordered))

	files := report.OrderedFiles(matches)
	if s.FullPaths {
		entries, err := a.loadEntries()
		if err != nil {
			return err
		}
		for i, f := range files {
			if path, ok := listing.FindPath(entries, f); ok {
				files[i] = path
			}
		}
	}

	if s.PlaylistFormat == "" || s.PlaylistFormat == "txt" {
		if err := report.WriteOrder(ctx, s.OrderPath, files); err != nil {
			return fmt.Errorf("write %s: %w", s.OrderPath, err)
		}
	} else {
		name := s.TagAlbum
		if name == "" {
			name = "Episodes"
		}
		playlistEntries := make([]audio.PlaylistEntry, len(ordered))
		for i, m := range ordered {
			playlistEntries[i] = audio.PlaylistEntry{File: files[i], Title: m.PlaylistName}
		}
		content := a.playlist.CreatePlaylist(name, playlistEntries)
		if err := ioutils.WriteFile(ctx, s.OrderPath, []byte(content)); err != nil {
			return fmt.Errorf("write %s: %w", s.OrderPath, err)
		}
	}

	a.success("Map file saved to %s", s.OrderPath)
	a.info("Contains %d episodes in playlist order", len(files))
	a.info("")
	a.info("Use this file with the podcast feed server by setting MapFile in its settings")

	return nil
}

// Reverse flips the line order of a list file.
//
// With inPlace the input file is rewritten. With an output path the
// result goes there. With neither, nothing is written and the caller
// prints the returned lines.
func (a *Aligner) Reverse(input, output string, inPlace bool) ([]string, error) {
	if inPlace {
		output = input
	}

	a.info("Reading %s...", input)
	reversed, err := listing.ReverseFile(input, output)
	if err != nil {
		return nil, err
	}
	a.info("Found %d lines", len(reversed))

	if output != "" {
		first, last := "(empty)", "(empty)"
		if len(reversed) > 0 {
			first, last = reversed[0], reversed[len(reversed)-1]
		}
		a.success("Reversed list saved to %s", output)
		a.info("  First line: %s", first)
		a.info("  Last line:  %s", last)
	}

	return reversed, nil
}

// Matches returns the matches loaded by the last operation.
func (a *Aligner) Matches() []model.Match {
	return a.matches
}

// Stats summarizes the current matches against the loaded pool.
func (a *Aligner) Stats() report.Stats {
	return report.Collect(a.matches, len(a.files), a.settings.WarnThreshold)
}

// RenameProgress returns how far the current rename pass has come.
func (a *Aligner) RenameProgress() (done, total int32) {
	return atomic.LoadInt32(&a.processedOps), atomic.LoadInt32(&a.totalOps)
}

// loadInputs reads the candidate pool and the playlist.
//
// The pool comes from the MP3 directory when one is configured,
// otherwise from the ls-style listing file.
func (a *Aligner) loadInputs() error {
	s := a.settings

	if s.MP3Dir != "" {
		a.info("Scanning %s...", s.MP3Dir)
	} else {
		a.info("Reading %s...", s.ListingPath)
	}
	files, err := a.loadEntries()
	if err != nil {
		return err
	}
	a.files = files
	a.info("Found %d MP3 files", len(a.files))

	a.info("Reading %s...", s.PlaylistPath)
	entries, err := playlist.Load(s.PlaylistPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.PlaylistPath, err)
	}
	a.entries = entries
	a.info("Found %d playlist entries (excluding private videos)", len(a.entries))

	return nil
}

// loadEntries reads the candidate pool without logging.
func (a *Aligner) loadEntries() ([]listing.Entry, error) {
	if a.settings.MP3Dir != "" {
		entries, err := a.lister.ScanDir(a.settings.MP3Dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", a.settings.MP3Dir, err)
		}
		return entries, nil
	}

	entries, err := a.lister.Load(a.settings.ListingPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.settings.ListingPath, err)
	}
	return entries, nil
}

// tagRenamed stamps ID3 frames onto freshly renamed files.
func (a *Aligner) tagRenamed(ctx context.Context, items []audio.TagItem) error {
	a.info("")
	a.info("Tagging %d renamed files...", len(items))

	var tagged int32
	err := a.tagger.TagAll(ctx, items, a.settings.TagWorkers, func(item audio.TagItem, err error) {
		if err != nil {
			a.warn("Error tagging %s: %v", filepath.Base(item.Path), err)
			return
		}
		atomic.AddInt32(&tagged, 1)
		a.verbose("Tagged: %s", filepath.Base(item.Path))
	})
	if err != nil {
		return err
	}

	a.success("Tagged %d/%d files", atomic.LoadInt32(&tagged), len(items))
	return nil
}

func (a *Aligner) logStats() {
	stats := report.Collect(a.matches, len(a.files), a.settings.WarnThreshold)

	a.info("")
	a.rule()
	a.info("")
	a.info("Statistics:")
	a.info("  Total playlist entries: %d", stats.PlaylistEntries)
	a.info("  Total MP3 files: %d", stats.Files)
	a.info("  Successful matches: %d", stats.Matched)
	a.info("  Unmatched MP3 files: %d", stats.UnmatchedFiles)
	a.info("  Average match score: %.2f%%", stats.AverageScore*100)

	if len(stats.LowConfidence) > 0 {
		a.warn("")
		a.warn("  ⚠️  %d matches have low confidence (< %.0f%%):", len(stats.LowConfidence), a.settings.WarnThreshold*100)
		for i, m := range stats.LowConfidence {
			if i == 5 {
				a.warn("     ... and %d more", len(stats.LowConfidence)-5)
				break
			}
			a.warn("     - %s → %s (%.2f%%)", m.PlaylistName, m.File, m.Score*100)
		}
	}
}

func (a *Aligner) progress(event ProgressEvent) {
	if a.onProgress != nil {
		a.onProgress(event)
	}
}

// rule emits the 80-column separator used between log sections.
func (a *Aligner) rule() {
	a.progress(ProgressEvent{Message: strings.Repeat("=", 80), Level: LevelInfo})
}

func (a *Aligner) info(format string, args ...any) {
	a.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelInfo})
}

func (a *Aligner) verbose(format string, args ...any) {
	a.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelVerbose})
}

func (a *Aligner) warn(format string, args ...any) {
	a.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelWarning})
}

func (a *Aligner) errorf(format string, args ...any) {
	a.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelError})
}

func (a *Aligner) success(format string, args ...any) {
	a.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: LevelSuccess})
}
