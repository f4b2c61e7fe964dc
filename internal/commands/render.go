package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gerunddev/lessontex/internal/config"
	"github.com/gerunddev/lessontex/internal/render"
	"github.com/gerunddev/lessontex/internal/state"
	"github.com/gerunddev/lessontex/internal/styles"
)

// Render prints a rendered lesson
func Render(args []string) {
	topic := positional(args)
	file, fromFile := flagValue(args, "--file")
	if topic == "" && !fromFile {
		fail("Usage: lessontex render <topic> | --file <path.tex> [--format terminal|glamour|markdown]")
	}

	e, err := loadEnv()
	if err != nil {
		fail(err.Error())
	}
	defer e.cleanup()

	format := e.cfg.Format
	if f, ok := flagValue(args, "--format"); ok {
		format = f
	}
	if err := validateFormat(format); err != nil {
		fail(err.Error())
	}

	requestID := newRequestID()

	var l *lesson
	if fromFile {
		l, err = loadFile(file)
	} else {
		l, err = e.loadTopic(context.Background(), requestID, topic)
	}
	if err != nil {
		fail(err.Error())
	}

	r := render.New(format, e.cfg.Width, e.cfg.CodeStyle)
	fmt.Println(e.renderLesson(requestID, l, r))

	// Reading a catalog topic counts towards progress
	if fromFile || !l.Available {
		return
	}
	st, err := state.Load(config.StateFilePath())
	if err != nil {
		e.log.StateError("load", err)
		return
	}
	st.MarkViewed(l.Path, []byte(l.Content), time.Now())
	if err := st.Save(config.StateFilePath()); err != nil {
		e.log.StateError("save", err)
	}
}

func validateFormat(format string) error {
	switch format {
	case config.FormatTerminal, config.FormatGlamour, config.FormatMarkdown:
		return nil
	}
	return fmt.Errorf("invalid format '%s': must be one of: terminal, glamour, markdown", format)
}

// Path prints the content path of a topic
func Path(args []string) {
	topic := positional(args)
	if topic == "" {
		fail("Usage: lessontex path <topic>")
	}

	e, err := loadEnv()
	if err != nil {
		fail(err.Error())
	}
	defer e.cleanup()

	loc, ok := e.catalog.Locate(topic)
	if !ok {
		fail(fmt.Sprintf("Unknown topic %q", topic))
	}
	path, ok := loc.Path()
	if !ok {
		fail(fmt.Sprintf("Cannot build content path for %q (section %q, chapter %q)", topic, loc.Section.ID, loc.Chapter.ID))
	}

	fmt.Println(path)
}

// Topics lists the catalog with each topic's content size and reading status
func Topics() {
	e, err := loadEnv()
	if err != nil {
		fail(err.Error())
	}
	defer e.cleanup()

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state: " + err.Error())
	}

	fmt.Print(topicListing(context.Background(), e, st))
}

// topicListing renders the catalog tree
func topicListing(ctx context.Context, e *env, st *state.State) string {
	var b strings.Builder
	lastSection, lastChapter := "", ""

	for _, loc := range e.catalog.Topics() {
		if loc.Section.ID != lastSection {
			b.WriteString(styles.TitleStyle.Render(loc.Section.Title) + "\n")
			lastSection = loc.Section.ID
			lastChapter = ""
		}
		if loc.Chapter.ID != lastChapter {
			b.WriteString("  " + styles.HighlightStyle.Render(loc.Chapter.Title) + "\n")
			lastChapter = loc.Chapter.ID
		}

		path, ok := loc.Path()
		if !ok {
			fmt.Fprintf(&b, "    %s %s\n", styles.ErrorStyle.Render("✗"), loc.Topic)
			continue
		}

		fetchCtx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
		data, err := e.fetcher.Fetch(fetchCtx, path)
		cancel()

		var detail string
		switch {
		case err != nil || len(data) == 0:
			detail = styles.DimStyle.Render("not written")
		default:
			detail = styles.DimStyle.Render(humanize.Bytes(uint64(len(data)))) + " " + statusLabel(st.Status(path, data))
		}
		fmt.Fprintf(&b, "    • %s  %s\n", loc.Topic, detail)
	}

	return b.String()
}

func statusLabel(s state.Status) string {
	switch s {
	case state.StatusRead:
		return styles.SuccessStyle.Render("✓ read")
	case state.StatusUpdated:
		return styles.WarningStyle.Render("↻ updated")
	default:
		return styles.DimStyle.Render("• unread")
	}
}
