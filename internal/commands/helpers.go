package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gerunddev/lessontex/internal/config"
	"github.com/gerunddev/lessontex/internal/content"
	"github.com/gerunddev/lessontex/internal/latex"
	"github.com/gerunddev/lessontex/internal/logger"
	"github.com/gerunddev/lessontex/internal/render"
	"github.com/gerunddev/lessontex/internal/styles"
	"github.com/google/uuid"
)

// env bundles what every command needs
type env struct {
	cfg     *config.Config
	catalog *content.Catalog
	fetcher content.Fetcher
	log     *logger.Logger
	cleanup func()
}

// loadEnv loads config, catalog and logger
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	cat, err := content.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	log, cleanup := openLogger(cfg)
	log.ConfigLoaded(cfg.ContentRoot, cfg.Format, cfg.Width)

	return &env{
		cfg:     cfg,
		catalog: cat,
		fetcher: content.NewFetcher(cfg.ContentRoot, cfg.FetchTimeout),
		log:     log,
		cleanup: cleanup,
	}, nil
}

// openLogger sets up structured logging to the configured file
func openLogger(cfg *config.Config) (*logger.Logger, func()) {
	if cfg.LogFile != "" {
		l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
		if err == nil {
			return l, cleanup
		}
	}
	return logger.Discard(), func() {}
}

// fail prints an error line and exits
func fail(msg string) {
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}

func newRequestID() string {
	return uuid.NewString()[:8]
}

// Flags that consume the following argument
var valueFlags = map[string]bool{
	"--format":  true,
	"--file":    true,
	"--workers": true,
}

// flagValue returns the argument following name
func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// positional joins the arguments that are neither flags nor flag values, so
// topics with spaces work quoted or not
func positional(args []string) string {
	var words []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			if valueFlags[arg] {
				i++
			}
			continue
		}
		words = append(words, arg)
	}
	return strings.Join(words, " ")
}

// lesson is markup to render, from a catalog topic or a local file
type lesson struct {
	Name      string // Topic name or file path
	Path      string // Content path, empty for local files
	Content   string
	Available bool
}

// loadTopic fetches a catalog topic. Unavailable content is not an error.
func (e *env) loadTopic(ctx context.Context, requestID, topic string) (*lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()

	t, err := content.LoadTopic(ctx, e.catalog, e.fetcher, topic)
	if err != nil {
		return nil, err
	}

	if !t.Available {
		e.log.ContentUnavailable(requestID, topic, t.Path, t.Err)
	} else {
		e.log.TopicLoaded(requestID, topic, t.Path, len(t.Content))
	}

	return &lesson{
		Name:      t.Topic,
		Path:      t.Path,
		Content:   t.Content,
		Available: t.Available,
	}, nil
}

// loadFile reads markup from a local file
func loadFile(path string) (*lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &lesson{
		Name:      path,
		Content:   string(data),
		Available: len(data) > 0,
	}, nil
}

// renderLesson parses and renders a lesson, or returns the placeholder when
// it has no content
func (e *env) renderLesson(requestID string, l *lesson, r render.Renderer) string {
	if !l.Available {
		return render.Unavailable()
	}

	source := l.Path
	if source == "" {
		source = l.Name
	}

	start := time.Now()
	doc := latex.ParseDocument(l.Content)
	e.log.DocumentParsed(requestID, source, len(doc.Blocks), len(doc.Diagnostics), time.Since(start))
	for _, d := range doc.Diagnostics {
		e.log.ParseDiagnostic(source, d.Line, d.Message)
	}

	return r.Render(doc.Blocks)
}
