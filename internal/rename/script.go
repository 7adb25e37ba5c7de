package rename

import (
	"fmt"
	"strings"
)

// Script renders the planned operations as a bash script of mv
// commands, for review before running by hand.
//
// Skipped and missing files appear as comments in place of their
// command, so the script line order still mirrors the plan.
func Script(ops []Op) string {
	lines := []string{
		"#!/bin/bash",
		"",
		"# Rename MP3 files with order prefix",
		"",
	}

	for _, op := range ops {
		switch op.Action {
		case ActionSkip:
			lines = append(lines, fmt.Sprintf("# SKIP: %s (already has order prefix)", op.Name))
		case ActionMissing:
			lines = append(lines, fmt.Sprintf("# ERROR: Could not find path for %s", op.Name))
		default:
			lines = append(lines, fmt.Sprintf("mv '%s' '%s'", shellQuote(op.Src), shellQuote(op.Dst)))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// shellQuote escapes single quotes for embedding in a single-quoted
// bash string.
func shellQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
