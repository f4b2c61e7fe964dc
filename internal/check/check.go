package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gerunddev/lessontex/internal/content"
	"github.com/gerunddev/lessontex/internal/latex"
	"github.com/gerunddev/lessontex/internal/logger"
	"github.com/google/uuid"
)

// DefaultWorkers is the number of topics parsed in parallel
const DefaultWorkers = 4

// Checker fetches and parses every catalog topic
type Checker struct {
	catalog   *content.Catalog
	fetcher   content.Fetcher
	workers   int
	logger    *logger.Logger
	requestID string

	// OnTopic, when set, is called after each topic with the number done so far.
	OnTopic func(done, total int)
}

// NewChecker creates a new checker instance
func NewChecker(cat *content.Catalog, f content.Fetcher, workers int) *Checker {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Checker{
		catalog:   cat,
		fetcher:   f,
		workers:   workers,
		logger:    logger.Discard(),
		requestID: uuid.NewString()[:8],
	}
}

// SetLogger sets the logger for the checker
func (c *Checker) SetLogger(l *logger.Logger) {
	c.logger = l
}

// TopicReport is the outcome of checking one topic
type TopicReport struct {
	Location    content.Location
	Path        string
	Available   bool
	Err         error
	Size        int
	Stats       map[latex.BlockKind]int
	Diagnostics []latex.Diagnostic
}

// Result represents the result of a check run
type Result struct {
	Reports   []TopicReport // Catalog order
	Orphans   []string      // Content files no topic points at
	StartTime time.Time
	EndTime   time.Time
}

// Check fetches and parses all topics using a bounded number of workers.
// Missing content is reported, not returned as an error.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	result := &Result{
		StartTime: time.Now(),
	}

	topics := c.catalog.Topics()
	result.Reports = make([]TopicReport, len(topics))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)
	sem := make(chan struct{}, c.workers)

	for i, loc := range topics {
		i, loc := i, loc
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result.Reports[i] = c.checkTopic(ctx, loc)

			if c.OnTopic != nil {
				mu.Lock()
				done++
				n := done
				mu.Unlock()
				c.OnTopic(n, len(topics))
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if df, ok := c.fetcher.(*content.DirFetcher); ok {
		orphans, err := FindOrphans(df.Root, result.Reports)
		if err != nil {
			c.logger.Warn("orphan scan failed", "request", c.requestID, "root", df.Root, "error", err)
		}
		result.Orphans = orphans
	}

	result.EndTime = time.Now()
	c.logger.CheckCompleted(len(topics), len(result.Missing()), result.DiagnosticCount(), result.EndTime.Sub(result.StartTime))
	return result, nil
}

func (c *Checker) checkTopic(ctx context.Context, loc content.Location) TopicReport {
	report := TopicReport{Location: loc}

	path, ok := loc.Path()
	if !ok {
		report.Err = fmt.Errorf("cannot build content path (section %q, chapter %q)", loc.Section.ID, loc.Chapter.ID)
		c.logger.ContentUnavailable(c.requestID, loc.Topic, "", report.Err)
		return report
	}
	report.Path = path

	data, err := c.fetcher.Fetch(ctx, path)
	if err != nil {
		report.Err = err
		c.logger.ContentUnavailable(c.requestID, loc.Topic, path, err)
		return report
	}
	if len(data) == 0 {
		report.Err = fmt.Errorf("%s: empty file: %w", path, content.ErrNotFound)
		c.logger.ContentUnavailable(c.requestID, loc.Topic, path, report.Err)
		return report
	}

	start := time.Now()
	doc := latex.ParseDocument(string(data))
	c.logger.DocumentParsed(c.requestID, path, len(doc.Blocks), len(doc.Diagnostics), time.Since(start))
	for _, d := range doc.Diagnostics {
		c.logger.ParseDiagnostic(path, d.Line, d.Message)
	}

	report.Available = true
	report.Size = len(data)
	report.Stats = doc.Stats()
	report.Diagnostics = doc.Diagnostics
	return report
}

// Missing returns the reports of topics without content
func (r *Result) Missing() []TopicReport {
	var missing []TopicReport
	for _, rep := range r.Reports {
		if !rep.Available {
			missing = append(missing, rep)
		}
	}
	return missing
}

// DiagnosticCount sums diagnostics over all topics
func (r *Result) DiagnosticCount() int {
	n := 0
	for _, rep := range r.Reports {
		n += len(rep.Diagnostics)
	}
	return n
}

// Bytes is the total size of the content that was found
func (r *Result) Bytes() uint64 {
	var n uint64
	for _, rep := range r.Reports {
		n += uint64(rep.Size)
	}
	return n
}

// Failed reports whether any topic failed for a reason other than missing content
func (r *Result) Failed() bool {
	for _, rep := range r.Reports {
		if rep.Err != nil && !errors.Is(rep.Err, content.ErrNotFound) {
			return true
		}
	}
	return false
}

// String returns a human-readable summary of the check result
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Check complete: %d topics, %d missing, %d diagnostics, %s of content (took %v)",
		len(r.Reports),
		len(r.Missing()),
		r.DiagnosticCount(),
		humanize.Bytes(r.Bytes()),
		duration.Round(time.Millisecond),
	)
}

// ScanDirectory scans a directory for files with given extension
func ScanDirectory(dir string, ext string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindOrphans lists .tex files under root that no report points at, as
// content paths ("/content/...") in sorted order.
func FindOrphans(root string, reports []TopicReport) ([]string, error) {
	known := make(map[string]bool, len(reports))
	for _, rep := range reports {
		if rep.Path != "" {
			known[rep.Path] = true
		}
	}

	files, err := ScanDirectory(root, ".tex")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var orphans []string
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			continue
		}
		path := "/" + filepath.ToSlash(rel)
		if !known[path] {
			orphans = append(orphans, path)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
