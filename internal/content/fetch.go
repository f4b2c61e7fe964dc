package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when no content exists at a path.
var ErrNotFound = errors.New("content not found")

// Fetcher retrieves the raw bytes stored at a content path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// NewFetcher returns an HTTPFetcher for http(s) roots and a DirFetcher otherwise.
func NewFetcher(root string, timeout time.Duration) Fetcher {
	if strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://") {
		return &HTTPFetcher{
			BaseURL: strings.TrimRight(root, "/"),
			Client:  &http.Client{Timeout: timeout},
		}
	}
	return &DirFetcher{Root: root}
}

// DirFetcher serves content paths from a local directory. Paths never resolve
// outside Root.
type DirFetcher struct {
	Root string
}

// Fetch reads path relative to Root.
func (f *DirFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := f.resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", full, err)
	}
	return data, nil
}

func (f *DirFetcher) resolve(path string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	return filepath.Join(f.Root, clean)
}

// HTTPFetcher requests content paths from a web server.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// Fetch performs a GET of BaseURL+path.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not get %s: %w", path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	case res.StatusCode < 200 || res.StatusCode > 299:
		return nil, fmt.Errorf("failed to load content: %s", res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read body: %w", err)
	}
	return data, nil
}
