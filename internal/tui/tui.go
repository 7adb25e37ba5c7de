// Package tui provides a Bubble Tea terminal user interface for podalign.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"podalign/internal/align"
	"podalign/internal/config"
	"podalign/internal/model"
	"podalign/internal/rename"
	"podalign/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateMatching
	StateReview
	StateRenaming
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   align.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state         State
	playlistInput textinput.Model
	dirInput      textinput.Model
	focusIndex    int
	spinner       spinner.Model
	progress      progress.Model
	settings      *config.Settings
	logs          []LogEntry
	matches       []model.Match
	stats         report.Stats
	summary       rename.Summary
	err           error

	// Alignment context
	ctx    context.Context
	cancel context.CancelFunc

	// Aligner reference
	aligner *align.Aligner

	// Progress events from the aligner
	events chan align.ProgressEvent

	// Review list scroll position
	offset int

	// Options
	execute bool
	tag     bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	pi := textinput.New()
	pi.Placeholder = "playlist.txt"
	pi.Focus()
	pi.CharLimit = 500
	pi.Width = 60

	di := textinput.New()
	di.Placeholder = "/mnt/user/podcasts"
	di.CharLimit = 500
	di.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:         StateInput,
		playlistInput: pi,
		dirInput:      di,
		spinner:       sp,
		progress:      prog,
		settings:      config.DefaultSettings(),
		logs:          make([]LogEntry, 0),
		events:        make(chan align.ProgressEvent, 64),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForEvent())
}

// Message types
type (
	// ProgressMsg carries one aligner progress event into the UI.
	ProgressMsg struct {
		Event align.ProgressEvent
	}

	// MatchDoneMsg is sent when the matching pass completes.
	MatchDoneMsg struct {
		Matches []model.Match
		Stats   report.Stats
		Err     error
	}

	// RenameDoneMsg is sent when the rename pass completes.
	RenameDoneMsg struct {
		Summary rename.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateMatching || m.state == StateRenaming {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}
			if m.state == StateReview {
				// Back to the inputs, keeping their values
				m.state = StateInput
				m.focusIndex = 0
				m.playlistInput.Focus()
				m.dirInput.Blur()
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateMatching
				return m, tea.Batch(m.startMatching(), m.spinner.Tick)
			}
			if m.state == StateReview {
				m.state = StateRenaming
				return m, tea.Batch(m.startRenaming(), m.tickProgress())
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.switchFocus()
			}

		case "up":
			if m.state == StateInput {
				m.switchFocus()
			}
			if m.state == StateReview && m.offset > 0 {
				m.offset--
			}

		case "down":
			if m.state == StateInput {
				m.switchFocus()
			}
			if m.state == StateReview && m.offset < m.maxOffset() {
				m.offset++
			}

		case "pgup":
			if m.state == StateReview {
				m.offset -= m.reviewRows()
				if m.offset < 0 {
					m.offset = 0
				}
			}

		case "pgdown":
			if m.state == StateReview {
				m.offset += m.reviewRows()
				if m.offset > m.maxOffset() {
					m.offset = m.maxOffset()
				}
			}

		case "x":
			if m.state == StateReview {
				m.execute = !m.execute
			}

		case "t":
			if m.state == StateReview {
				m.tag = !m.tag
			}

		case "v":
			if m.state == StateReview {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateReview || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new pass, keeping the entered paths
				m.state = StateInput
				m.logs = nil
				m.matches = nil
				m.stats = report.Stats{}
				m.summary = rename.Summary{}
				m.err = nil
				m.offset = 0
				m.aligner = nil
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.focusIndex = 0
				m.playlistInput.Focus()
				m.dirInput.Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Keep listening for the next event.
		cmds = append(cmds, m.waitForEvent())

		// Filter verbose messages if not in verbose mode, and the
		// blank spacer lines that only pad terminal output.
		keep := msg.Event.Message != ""
		if msg.Event.Level == align.LevelVerbose && !m.verbose {
			keep = false
		}
		if keep {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}

	case MatchDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.matches = msg.Matches
			m.stats = msg.Stats
			m.offset = 0
			m.state = StateReview
		}

	case RenameDoneMsg:
		m.summary = msg.Summary
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the aligner
		if m.aligner != nil && m.state == StateRenaming {
			done, total := m.aligner.RenameProgress()

			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		m.playlistInput, cmd = m.playlistInput.Update(msg)
		cmds = append(cmds, cmd)
		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// switchFocus moves the cursor to the other text input.
func (m *Model) switchFocus() {
	m.focusIndex = (m.focusIndex + 1) % 2
	if m.focusIndex == 0 {
		m.playlistInput.Focus()
		m.dirInput.Blur()
	} else {
		m.playlistInput.Blur()
		m.dirInput.Focus()
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent relays the next aligner progress event into the UI.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// reviewRows is how many match rows fit the current terminal height.
func (m Model) reviewRows() int {
	rows := m.height - 14
	if rows < 5 {
		rows = 5
	}
	if rows > 30 {
		rows = 30
	}
	return rows
}

func (m Model) maxOffset() int {
	max := len(m.matches) - m.reviewRows()
	if max < 0 {
		max = 0
	}
	return max
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎙 podalign"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Match playlist entries to MP3 files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateMatching:
		b.WriteString(m.viewMatching())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateRenaming:
		b.WriteString(m.viewRenaming())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Playlist export:"))
	b.WriteString("\n")
	b.WriteString(m.playlistInput.View())
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("MP3 directory:"))
	b.WriteString("\n")
	b.WriteString(m.dirInput.View())
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("Leave the directory empty to read the listing file (%s)", m.settings.ListingPath)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Results go to %s and %s", m.settings.ReportPath, m.settings.MappingPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewMatching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Matching playlist entries to MP3 files..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf(
		"Matched %d of %d entries (average score %.2f%%)",
		m.stats.Matched,
		m.stats.PlaylistEntries,
		m.stats.AverageScore*100,
	)))
	b.WriteString("\n")
	if len(m.stats.LowConfidence) > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("%d matches have low confidence", len(m.stats.LowConfidence))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.reviewRows()
	end := m.offset + visible
	if end > len(m.matches) {
		end = len(m.matches)
	}
	for _, match := range m.matches[m.offset:end] {
		b.WriteString(m.renderMatch(match))
		b.WriteString("\n")
	}
	if len(m.matches) > visible {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%d-%d of %d]", m.offset+1, end, len(m.matches))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	executeCheck := "[ ]"
	if m.execute {
		executeCheck = "[×]"
	}
	tagCheck := "[ ]"
	if m.tag {
		tagCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Live run, files are renamed (x)\n", executeCheck))
	b.WriteString(fmt.Sprintf("  %s Tag renamed files (t)\n", tagCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	return b.String()
}

// renderMatch renders one review row, coloured by confidence band.
func (m Model) renderMatch(match model.Match) string {
	if !match.Matched() {
		return dimStyle.Render(fmt.Sprintf("  %3d. %s → (no match)", match.Order, match.PlaylistName))
	}

	var style lipgloss.Style
	switch match.Confidence() {
	case model.ConfidenceHigh:
		style = successStyle
	case model.ConfidenceMedium:
		style = warningStyle
	default:
		style = errorStyle
	}
	return style.Render(fmt.Sprintf(
		"  %3d. %s → %s (%.2f%%)",
		match.Order,
		match.PlaylistName,
		match.File,
		match.Score*100,
	))
}

func (m Model) viewRenaming() string {
	var b strings.Builder

	var done, total int32
	if m.aligner != nil {
		done, total = m.aligner.RenameProgress()
	}

	// Progress bar
	var percent float64
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", done, total)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	verb := "Would rename"
	if m.execute {
		verb = "Renamed"
	}
	box := boxStyle.Render(fmt.Sprintf(
		"✨ Alignment Complete!\n\n"+
			"%s: %d\n"+
			"Skipped: %d\n"+
			"Errors: %d",
		verb,
		m.summary.Renamed,
		m.summary.Skipped,
		m.summary.Errors,
	))
	b.WriteString(box)

	if !m.execute {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Dry run only. Press r, then enable the live run to rename files."))
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		switch log.Level {
		case align.LevelError:
			style = errorStyle
		case align.LevelWarning:
			style = warningStyle
		case align.LevelSuccess:
			style = successStyle
		case align.LevelInfo:
			style = infoStyle
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: match • tab: switch field • esc: quit"
	case StateMatching, StateRenaming:
		return "esc: cancel"
	case StateReview:
		return "enter: rename • ↑/↓: scroll • x: live run • t: tag • v: verbose • esc: back • q: quit"
	case StateComplete, StateError:
		return "r: start over • q: quit"
	}
	return ""
}

// startMatching builds the aligner and runs the matching pass in
// background.
func (m *Model) startMatching() tea.Cmd {
	settings := *m.settings
	if v := strings.TrimSpace(m.playlistInput.Value()); v != "" {
		settings.PlaylistPath = v
	}
	if v := strings.TrimSpace(m.dirInput.Value()); v != "" {
		settings.MP3Dir = v
	}

	events := m.events
	aligner := align.NewAligner(&settings, func(event align.ProgressEvent) {
		events <- event
	})
	m.aligner = aligner

	ctx := m.ctx
	return func() tea.Msg {
		if err := aligner.Run(ctx); err != nil {
			return MatchDoneMsg{Err: err}
		}
		return MatchDoneMsg{
			Matches: aligner.Matches(),
			Stats:   aligner.Stats(),
		}
	}
}

// startRenaming builds a fresh aligner honouring the review toggles and
// runs the rename pass in background. The pass reads the report the
// matching pass just saved.
func (m *Model) startRenaming() tea.Cmd {
	settings := *m.settings
	if v := strings.TrimSpace(m.dirInput.Value()); v != "" {
		settings.MP3Dir = v
	}
	settings.ModifyTags = m.tag

	events := m.events
	aligner := align.NewAligner(&settings, func(event align.ProgressEvent) {
		events <- event
	})
	m.aligner = aligner

	ctx := m.ctx
	execute := m.execute
	return func() tea.Msg {
		summary, err := aligner.Rename(ctx, execute)
		return RenameDoneMsg{Summary: summary, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
