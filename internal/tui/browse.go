package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gerunddev/lessontex/internal/styles"
)

// Topic statuses shown in the browser
const (
	StatusUnread  = "unread"
	StatusUpdated = "updated"
	StatusRead    = "read"
	StatusMissing = "missing"
)

// BrowseData holds every catalog topic and its reading status
type BrowseData struct {
	Topics []TopicInfo
}

// TopicInfo represents a catalog topic with its status
type TopicInfo struct {
	Section  string
	Chapter  string
	Topic    string
	Path     string
	Status   string    // One of the Status constants
	ViewedAt time.Time // Zero if never read
}

// BrowseMsg is sent when browse data is ready
type BrowseMsg struct {
	Data *BrowseData
	Err  error
}

// LessonMsg is sent when a rendered lesson is ready
type LessonMsg struct {
	Topic   string
	Content string
	Err     error
}

// DiffMsg is sent when a change diff is ready
type DiffMsg struct {
	Topic   string
	Content string
	Err     error
}

// RefreshBrowseMsg triggers a browse data refresh
type RefreshBrowseMsg struct{}

type browseMode int

const (
	modeTable browseMode = iota
	modeLesson
	modeDiff
)

type browseModel struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model
	data     *BrowseData
	err      error
	ready    bool
	loading  bool
	mode     browseMode
	width    int
	height   int
	selected *TopicInfo
	now      func() time.Time
	// Dependencies for loading lessons
	loadFunc    func(topic TopicInfo, width int) (string, error)
	diffFunc    func(topic TopicInfo, width int) (string, error)
	refreshFunc func()
}

// InitBrowseModel creates a new lesson browser model. loadFunc renders a
// topic (and records it as read), diffFunc renders its changes since the last
// read, refreshFunc re-sends BrowseMsg.
func InitBrowseModel(loadFunc, diffFunc func(TopicInfo, int) (string, error), refreshFunc func()) browseModel {
	columns := []table.Column{
		{Title: "Section", Width: 28},
		{Title: "Chapter", Width: 28},
		{Title: "Topic", Width: 32},
		{Title: "Status", Width: 12},
		{Title: "Viewed", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(0, 1)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return browseModel{
		table:       t,
		viewport:    vp,
		spinner:     s,
		now:         time.Now,
		loadFunc:    loadFunc,
		diffFunc:    diffFunc,
		refreshFunc: refreshFunc,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-10, 3))
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-6, 3)

	case tea.KeyMsg:
		if m.mode != modeTable {
			// In lesson or diff view
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				m.mode = modeTable
				return m, refreshBrowse
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		// In table view
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "r":
			return m, refreshBrowse
		case "enter", "c":
			if m.loading {
				return m, nil
			}
			topic, ok := m.selectedTopic()
			if !ok {
				return m, nil
			}
			m.selected = &topic
			m.loading = true
			if msg.String() == "c" {
				return m, tea.Batch(m.spinner.Tick, m.loadDiff(topic))
			}
			return m, tea.Batch(m.spinner.Tick, m.loadLesson(topic))
		}

	case BrowseMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err

		if m.data != nil {
			m.table.SetRows(topicRows(m.data.Topics, m.now()))
		}

		return m, nil

	case LessonMsg:
		m.loading = false
		m.mode = modeLesson
		if msg.Err != nil {
			m.viewport.SetContent(errorStyle.Render("✗ " + msg.Err.Error()))
		} else {
			m.viewport.SetContent(msg.Content)
		}
		m.viewport.GotoTop()
		return m, nil

	case DiffMsg:
		m.loading = false
		m.mode = modeDiff
		switch {
		case msg.Err != nil:
			m.viewport.SetContent(errorStyle.Render("✗ " + msg.Err.Error()))
		case msg.Content == "":
			m.viewport.SetContent(helpStyle.Render("No changes since last read"))
		default:
			m.viewport.SetContent(msg.Content)
		}
		m.viewport.GotoTop()
		return m, nil

	case RefreshBrowseMsg:
		// Trigger browse data refresh
		if m.refreshFunc != nil {
			go m.refreshFunc()
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("Lesson Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		return errorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s Loading %s...\n", m.spinner.View(), highlightStyle.Render(m.selected.Topic)))
	case m.mode == modeLesson:
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s › %s", m.selected.Chapter, m.selected.Topic)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("↑/k up • ↓/j down • %3.f%% • esc/q back", m.viewport.ScrollPercent()*100)))
		b.WriteString("\n")
	case m.mode == modeDiff:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Changes since last read: %s", m.selected.Topic)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
	default:
		b.WriteString(labelStyle.Render("Topics: "))
		b.WriteString(valueStyle.Render(summarize(m.data.Topics)))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter read • c changes • r refresh • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m browseModel) selectedTopic() (TopicInfo, bool) {
	if m.data == nil {
		return TopicInfo{}, false
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.data.Topics) {
		return TopicInfo{}, false
	}
	return m.data.Topics[idx], true
}

// contentWidth is the width available inside the viewport border and padding
func (m browseModel) contentWidth() int {
	return max(m.viewport.Width-4, 20)
}

// loadLesson creates a command that renders the selected topic
func (m browseModel) loadLesson(topic TopicInfo) tea.Cmd {
	width := m.contentWidth()
	return func() tea.Msg {
		if m.loadFunc == nil {
			return LessonMsg{Topic: topic.Topic, Err: errors.New("no lesson loader configured")}
		}
		content, err := m.loadFunc(topic, width)
		return LessonMsg{Topic: topic.Topic, Content: content, Err: err}
	}
}

// loadDiff creates a command that renders changes to the selected topic
func (m browseModel) loadDiff(topic TopicInfo) tea.Cmd {
	width := m.contentWidth()
	return func() tea.Msg {
		if m.diffFunc == nil {
			return DiffMsg{Topic: topic.Topic, Err: errors.New("no diff loader configured")}
		}
		content, err := m.diffFunc(topic, width)
		return DiffMsg{Topic: topic.Topic, Content: content, Err: err}
	}
}

func refreshBrowse() tea.Msg {
	return RefreshBrowseMsg{}
}

func statusIcon(status string) string {
	switch status {
	case StatusRead:
		return "✓"
	case StatusUpdated:
		return "↻"
	case StatusMissing:
		return "✗"
	default:
		return "•"
	}
}

// topicRows builds table rows, with viewed times relative to now
func topicRows(topics []TopicInfo, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(topics))
	for _, t := range topics {
		viewed := "never"
		if !t.ViewedAt.IsZero() {
			viewed = humanize.RelTime(t.ViewedAt, now, "ago", "from now")
		}
		rows = append(rows, table.Row{
			t.Section,
			t.Chapter,
			t.Topic,
			fmt.Sprintf("%s %s", statusIcon(t.Status), t.Status),
			viewed,
		})
	}
	return rows
}

func summarize(topics []TopicInfo) string {
	counts := make(map[string]int)
	for _, t := range topics {
		counts[t.Status]++
	}
	return fmt.Sprintf("%d total, %d unread, %d updated, %d read, %d missing",
		len(topics), counts[StatusUnread], counts[StatusUpdated], counts[StatusRead], counts[StatusMissing])
}
