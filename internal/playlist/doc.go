// Package playlist parses playlist exports into ordered entry names.
//
// The primary input is the bulletized export format produced by
// playlist scraping tools:
//
//	[
//	Part One: The Ballad of Someone,
//	Part Two: The Ballad of Someone,
//	Private video,
//	How It All Went Wrong,
//	]
//
// Plain one-entry-per-line files and JSON string arrays are accepted
// as well. Unresolvable "Private video" placeholders are dropped
// everywhere, so the resulting order reflects only matchable entries.
package playlist
