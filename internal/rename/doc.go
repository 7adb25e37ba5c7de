// Package rename applies playlist order to audio files by prefixing
// their names.
//
// A matched file "Episode.mp3" at playlist position 7 becomes
// "007_Episode.mp3" in place, so a plain name sort plays the feed in
// playlist order. Planning and execution are separate: Plan decides
// per file whether to rename, skip (already prefixed) or give up
// (path unknown), and Apply carries the plan out, either for real or
// as a dry run. Script renders the same plan as a reviewable bash
// script instead.
package rename
