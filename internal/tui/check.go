package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gerunddev/lessontex/internal/styles"
)

var (
	titleStyle     = styles.TitleStyle
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Comment))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Foreground))
	spinnerStyle   = styles.SpinnerStyle
	helpStyle      = styles.HelpStyle
	successStyle   = styles.SuccessStyle
	warningStyle   = styles.WarningStyle
	errorStyle     = styles.ErrorStyle
	highlightStyle = styles.HighlightStyle
	tableStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(styles.Border))
)

// CheckResult holds the summary of a catalog check
type CheckResult struct {
	Topics      int
	Missing     int
	Diagnostics int
	Orphans     int
	Bytes       uint64
	Duration    time.Duration
}

// CheckMsg is sent when the check completes
type CheckMsg struct {
	Result *CheckResult
	Err    error
}

// CheckProgressMsg reports how many topics have been checked
type CheckProgressMsg struct {
	Done  int
	Total int
}

// checkModel is the Bubble Tea model for the check progress display
type checkModel struct {
	spinner  spinner.Model
	status   string
	complete bool
	result   *CheckResult
	err      error
}

// InitCheckModel creates a new check progress model
func InitCheckModel() checkModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return checkModel{
		spinner: s,
		status:  "Loading catalog...",
	}
}

func (m checkModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case CheckProgressMsg:
		m.status = fmt.Sprintf("Parsing topics... %d/%d", msg.Done, msg.Total)
		return m, nil

	case CheckMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Done reports whether the check finished
func (m checkModel) Done() bool {
	return m.complete
}

func (m checkModel) View() string {
	if !m.complete {
		return fmt.Sprintf("\n%s %s\n\n", m.spinner.View(), m.status)
	}

	if m.err != nil {
		return errorStyle.Render("✗ Check failed: "+m.err.Error()) + "\n"
	}

	r := m.result
	var msg string
	if r.Missing == 0 && r.Diagnostics == 0 {
		msg = successStyle.Render(fmt.Sprintf("✓ All %d topics parsed cleanly", r.Topics))
	} else {
		msg = warningStyle.Render(fmt.Sprintf("⚠ %d topics, %d missing, %d diagnostics", r.Topics, r.Missing, r.Diagnostics))
	}
	if r.Orphans > 0 {
		msg += ", " + errorStyle.Render(fmt.Sprintf("%d orphan file(s)", r.Orphans))
	}
	msg += "\n" + helpStyle.Render(fmt.Sprintf("%s of content, completed in %v", humanize.Bytes(r.Bytes), r.Duration.Round(time.Millisecond))) + "\n"

	return msg
}
