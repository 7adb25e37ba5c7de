// Package report persists matching results and summarizes them.
//
// A matching run produces two artifacts: a JSON report consumed by
// the rename and mapfile commands, and a human-readable mapping file
// for eyeballing what got paired with what. Collect derives the run
// statistics shown after matching, including the list of pairings
// that deserve a second look.
package report
