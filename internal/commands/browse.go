package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/lessontex/internal/config"
	"github.com/gerunddev/lessontex/internal/diff"
	"github.com/gerunddev/lessontex/internal/render"
	"github.com/gerunddev/lessontex/internal/state"
	"github.com/gerunddev/lessontex/internal/tui"
)

// browser serves the lesson browser's data, lesson and diff requests
type browser struct {
	env       *env
	state     *state.State
	statePath string
	now       func() time.Time
}

// Browse shows the catalog in an interactive lesson browser
func Browse() {
	e, err := loadEnv()
	if err != nil {
		fail(err.Error())
	}
	defer e.cleanup()

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state: " + err.Error())
	}

	b := &browser{env: e, state: st, statePath: config.StateFilePath(), now: time.Now}

	// Bubble Tea program (will be set after creating sendBrowseData)
	var p *tea.Program

	sendBrowseData := func() {
		p.Send(tui.BrowseMsg{Data: b.data(context.Background())})
	}

	m := tui.InitBrowseModel(b.lesson, b.changes, sendBrowseData)
	p = tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen())

	// Send initial browse data
	go sendBrowseData()

	// Run the program
	if _, err := p.Run(); err != nil {
		fail("Error: " + err.Error())
	}
}

// data lists every catalog topic with its reading status
func (b *browser) data(ctx context.Context) *tui.BrowseData {
	var topics []tui.TopicInfo

	for _, loc := range b.env.catalog.Topics() {
		info := tui.TopicInfo{
			Section: loc.Section.Title,
			Chapter: loc.Chapter.Title,
			Topic:   loc.Topic,
			Status:  tui.StatusMissing,
		}

		path, ok := loc.Path()
		if ok {
			info.Path = path
			info.ViewedAt = b.state.ViewedAt(path)

			fetchCtx, cancel := context.WithTimeout(ctx, b.env.cfg.FetchTimeout)
			data, err := b.env.fetcher.Fetch(fetchCtx, path)
			cancel()
			if err == nil && len(data) > 0 {
				info.Status = string(b.state.Status(path, data))
			}
		}

		topics = append(topics, info)
	}

	return &tui.BrowseData{Topics: topics}
}

// lesson renders a topic for the viewport and records it as read
func (b *browser) lesson(topic tui.TopicInfo, width int) (string, error) {
	requestID := newRequestID()

	l, err := b.env.loadTopic(context.Background(), requestID, topic.Topic)
	if err != nil {
		return "", err
	}

	var r render.Renderer = &render.Terminal{Width: width, CodeStyle: b.env.cfg.CodeStyle}
	if b.env.cfg.Format == config.FormatGlamour {
		r = &render.Glamour{Width: width}
	}
	out := b.env.renderLesson(requestID, l, r)

	if l.Available {
		b.state.MarkViewed(l.Path, []byte(l.Content), b.now())
		if err := b.state.Save(b.statePath); err != nil {
			b.env.log.StateError("save", err)
		}
	}

	return out, nil
}

// changes diffs a topic against the version that was last read
func (b *browser) changes(topic tui.TopicInfo, width int) (string, error) {
	l, err := b.env.loadTopic(context.Background(), newRequestID(), topic.Topic)
	if err != nil {
		return "", err
	}
	if !l.Available {
		return "", errors.New("this topic hasn't been written yet")
	}

	snapshot, ok := b.state.Snapshot(l.Path)
	if !ok {
		return "", fmt.Errorf("%s has not been read yet", topic.Topic)
	}

	return diff.Generate(topic.Topic, snapshot, l.Content, diff.FormatMarkdown, width)
}
