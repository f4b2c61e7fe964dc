package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var sampleTopics = []TopicInfo{
	{Section: "SECTION I: FOUNDATIONS", Chapter: "Networking", Topic: "TCP vs UDP", Status: StatusRead},
	{Section: "SECTION I: FOUNDATIONS", Chapter: "Networking", Topic: "DNS", Status: StatusUnread},
	{Section: "SECTION II: CORE IDEAS", Chapter: "Caching", Topic: "LRU", Status: StatusMissing},
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

func TestTopicRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	topics := []TopicInfo{
		{Topic: "DNS", Status: StatusUnread},
		{Topic: "LRU", Status: StatusUpdated, ViewedAt: now.Add(-3 * time.Hour)},
	}

	rows := topicRows(topics, now)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][3] != "• unread" || rows[0][4] != "never" {
		t.Errorf("Unexpected row: %v", rows[0])
	}
	if rows[1][3] != "↻ updated" || rows[1][4] != "3 hours ago" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestBrowseLoadsLesson(t *testing.T) {
	var loaded TopicInfo
	loadFunc := func(topic TopicInfo, width int) (string, error) {
		loaded = topic
		return "Lesson body for " + topic.Topic, nil
	}
	m := InitBrowseModel(loadFunc, nil, nil)

	m, _ = update(t, m, BrowseMsg{Data: &BrowseData{Topics: sampleTopics}})
	if len(m.table.Rows()) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "3 total, 1 unread, 0 updated, 1 read, 1 missing") {
		t.Errorf("Missing summary in view:\n%s", m.View())
	}

	m, _ = update(t, m, key("down"))
	m, cmd := update(t, m, key("enter"))
	if !m.loading || cmd == nil {
		t.Fatal("Expected loading after enter")
	}
	if m.selected == nil || m.selected.Topic != "DNS" {
		t.Fatalf("Expected DNS selected, got %+v", m.selected)
	}

	msg := m.loadLesson(*m.selected)()
	m, _ = update(t, m, msg)
	if loaded.Topic != "DNS" {
		t.Errorf("Loader called with %q", loaded.Topic)
	}
	if m.loading || m.mode != modeLesson {
		t.Errorf("Expected lesson view, got mode %d loading %v", m.mode, m.loading)
	}
	if !strings.Contains(m.View(), "Lesson body for DNS") {
		t.Errorf("Lesson not shown:\n%s", m.View())
	}

	m, cmd = update(t, m, key("esc"))
	if m.mode != modeTable {
		t.Error("Expected table view after esc")
	}
	if cmd == nil {
		t.Fatal("Expected refresh command after leaving lesson")
	}
	if _, ok := cmd().(RefreshBrowseMsg); !ok {
		t.Error("Expected RefreshBrowseMsg")
	}
}

func TestBrowseDiff(t *testing.T) {
	diffFunc := func(topic TopicInfo, width int) (string, error) {
		return "", nil
	}
	m := InitBrowseModel(nil, diffFunc, nil)
	m, _ = update(t, m, BrowseMsg{Data: &BrowseData{Topics: sampleTopics}})

	m, cmd := update(t, m, key("c"))
	if cmd == nil || !m.loading {
		t.Fatal("Expected diff load")
	}

	m, _ = update(t, m, m.loadDiff(*m.selected)())
	if m.mode != modeDiff {
		t.Fatalf("Expected diff view, got %d", m.mode)
	}
	if !strings.Contains(m.View(), "No changes since last read") {
		t.Errorf("Expected no-change notice:\n%s", m.View())
	}
}

func TestBrowseLoadError(t *testing.T) {
	m := InitBrowseModel(nil, nil, nil)
	m, _ = update(t, m, BrowseMsg{Data: &BrowseData{Topics: sampleTopics}})
	m, _ = update(t, m, key("enter"))

	m, _ = update(t, m, m.loadLesson(*m.selected)())
	if !strings.Contains(m.View(), "no lesson loader configured") {
		t.Errorf("Expected loader error in view:\n%s", m.View())
	}

	m, _ = update(t, m, LessonMsg{Err: errors.New("boom")})
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("Expected error in view:\n%s", m.View())
	}
}

func TestBrowseError(t *testing.T) {
	m := InitBrowseModel(nil, nil, nil)
	m, _ = update(t, m, BrowseMsg{Err: errors.New("state is corrupt")})
	if !strings.Contains(m.View(), "✗ Error: state is corrupt") {
		t.Errorf("Unexpected view:\n%s", m.View())
	}
}

func TestCheckModel(t *testing.T) {
	m := InitCheckModel()

	next, _ := m.Update(CheckProgressMsg{Done: 2, Total: 5})
	m = next.(checkModel)
	if !strings.Contains(m.View(), "Parsing topics... 2/5") {
		t.Errorf("Unexpected progress view: %q", m.View())
	}

	next, cmd := m.Update(CheckMsg{Result: &CheckResult{Topics: 5, Missing: 1, Diagnostics: 2, Bytes: 2048, Duration: time.Second}})
	m = next.(checkModel)
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	view := m.View()
	if !strings.Contains(view, "5 topics, 1 missing, 2 diagnostics") {
		t.Errorf("Unexpected result view: %q", view)
	}
	if !strings.Contains(view, "2.0 kB") {
		t.Errorf("Expected humanized size: %q", view)
	}

	next, _ = InitCheckModel().Update(CheckMsg{Err: errors.New("no catalog")})
	if !strings.Contains(next.View(), "✗ Check failed: no catalog") {
		t.Errorf("Unexpected error view: %q", next.View())
	}
}
