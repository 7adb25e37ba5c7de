// Package align provides the orchestration logic for matching a
// playlist export against a pool of MP3 files.
//
// # Aligner
//
// The Aligner coordinates the entire workflow:
//
//  1. Load the playlist export and the file listing (or scan a directory)
//  2. Match every playlist entry to its best MP3 candidate
//  3. Save the JSON report and the human-readable mapping
//  4. Rename files with order prefixes (dry run by default)
//  5. Tag renamed MP3 files with ID3 metadata (optional)
//  6. Generate the rename script and the feed ordering output
//
// # Basic Usage
//
//	aligner := align.NewAligner(settings, func(event align.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := aligner.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := aligner.Rename(ctx, false) // dry run
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The messages form a readable session log: per-entry match results,
// the statistics block with low-confidence warnings, and per-file
// rename outcomes.
package align
