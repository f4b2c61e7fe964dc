package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/lessontex/internal/check"
	"github.com/gerunddev/lessontex/internal/content"
	"github.com/gerunddev/lessontex/internal/styles"
	"github.com/gerunddev/lessontex/internal/tui"
)

// Check fetches and parses every catalog topic and reports problems
func Check(args []string) {
	workers := check.DefaultWorkers
	if v, ok := flagValue(args, "--workers"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fail(fmt.Sprintf("Invalid worker count: %s", v))
		}
		workers = n
	}

	fmt.Println(styles.TitleStyle.Render("Lesson Check"))
	fmt.Println()

	e, err := loadEnv()
	if err != nil {
		fail(err.Error())
	}
	defer e.cleanup()

	fmt.Println(styles.DimStyle.Render(e.cfg.ContentRoot))
	fmt.Println()

	checker := check.NewChecker(e.catalog, e.fetcher, workers)
	checker.SetLogger(e.log)

	// Initialize Bubble Tea program
	m := tui.InitCheckModel()
	p := tea.NewProgram(m, tea.WithInput(os.Stdin))

	checker.OnTopic = func(done, total int) {
		p.Send(tui.CheckProgressMsg{Done: done, Total: total})
	}

	var result *check.Result

	// Run check in goroutine and send result to program
	go func() {
		var err error
		result, err = checker.Check(context.Background())

		var tuiResult *tui.CheckResult
		if result != nil {
			tuiResult = &tui.CheckResult{
				Topics:      len(result.Reports),
				Missing:     len(result.Missing()),
				Diagnostics: result.DiagnosticCount(),
				Orphans:     len(result.Orphans),
				Bytes:       result.Bytes(),
				Duration:    result.EndTime.Sub(result.StartTime),
			}
		}

		p.Send(tui.CheckMsg{
			Result: tuiResult,
			Err:    err,
		})
	}()

	// Run the program
	final, err := p.Run()
	if err != nil {
		fail("Error: " + err.Error())
	}
	if cm, ok := final.(interface{ Done() bool }); ok && !cm.Done() {
		// Interrupted before the check finished
		os.Exit(1)
	}

	fmt.Print(checkReport(result))

	if result == nil || result.Failed() {
		os.Exit(1)
	}
}

// checkReport lists missing topics, diagnostics and orphan files
func checkReport(result *check.Result) string {
	if result == nil {
		return ""
	}

	var b strings.Builder

	if missing := result.Missing(); len(missing) > 0 {
		b.WriteString("\n" + styles.HighlightStyle.Render("Missing content") + "\n")
		for _, rep := range missing {
			reason := "not written"
			if rep.Err != nil && !errors.Is(rep.Err, content.ErrNotFound) {
				reason = rep.Err.Error()
			}
			fmt.Fprintf(&b, "  %s %s %s\n",
				styles.WarningStyle.Render("•"),
				rep.Location.Topic,
				styles.DimStyle.Render("("+reason+")"))
		}
	}

	if result.DiagnosticCount() > 0 {
		b.WriteString("\n" + styles.HighlightStyle.Render("Diagnostics") + "\n")
		for _, rep := range result.Reports {
			for _, d := range rep.Diagnostics {
				fmt.Fprintf(&b, "  %s %s %s\n",
					styles.WarningStyle.Render("⚠"),
					rep.Path,
					styles.DimStyle.Render(d.String()))
			}
		}
	}

	if len(result.Orphans) > 0 {
		b.WriteString("\n" + styles.HighlightStyle.Render("Files not in the catalog") + "\n")
		for _, path := range result.Orphans {
			fmt.Fprintf(&b, "  %s %s\n", styles.ErrorStyle.Render("✗"), path)
		}
	}

	return b.String()
}
