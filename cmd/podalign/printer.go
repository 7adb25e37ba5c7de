package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"podalign/internal/align"
)

// Progress goes to stderr so data output (reversed lists, tables)
// stays pipeable on stdout.
var (
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	verboseStyle = stderrRenderer.NewStyle().Faint(true)
	warnStyle    = stderrRenderer.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = stderrRenderer.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = stderrRenderer.NewStyle().Foreground(lipgloss.Color("10"))
)

// newProgressPrinter returns the callback that renders aligner events.
// Verbose events are dropped unless enabled.
func newProgressPrinter(verbose bool) func(align.ProgressEvent) {
	return func(event align.ProgressEvent) {
		switch event.Level {
		case align.LevelVerbose:
			if !verbose {
				return
			}
			fmt.Fprintln(os.Stderr, verboseStyle.Render(event.Message))
		case align.LevelWarning:
			fmt.Fprintln(os.Stderr, warnStyle.Render(event.Message))
		case align.LevelError:
			fmt.Fprintln(os.Stderr, errorStyle.Render(event.Message))
		case align.LevelSuccess:
			fmt.Fprintln(os.Stderr, successStyle.Render(event.Message))
		default:
			fmt.Fprintln(os.Stderr, event.Message)
		}
	}
}
