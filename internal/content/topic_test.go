package content

import (
	"context"
	"errors"
	"testing"
)

func TestLoadTopic(t *testing.T) {
	cat, err := LoadCatalog("testdata/catalog.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	root := t.TempDir()
	writeContent(t, root, "/content/section-2-core-ideas/ch-2-3-caching-queues/queues-101.tex", "Queues.")
	f := &DirFetcher{Root: root}

	topic, err := LoadTopic(context.Background(), cat, f, "Queues 101")
	if err != nil {
		t.Fatalf("LoadTopic failed: %v", err)
	}
	if !topic.Available || topic.Content != "Queues." {
		t.Errorf("Unexpected topic: %+v", topic)
	}
	if topic.Chapter.Title != "Caching & Queues" {
		t.Errorf("Unexpected chapter: %q", topic.Chapter.Title)
	}

	missing, err := LoadTopic(context.Background(), cat, f, "What is a Cache?")
	if err != nil {
		t.Fatalf("LoadTopic failed: %v", err)
	}
	if missing.Available || missing.Content != "" {
		t.Errorf("Expected unavailable topic, got %+v", missing)
	}
	if !errors.Is(missing.Err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", missing.Err)
	}
	if missing.Path != "/content/section-2-core-ideas/ch-2-3-caching-queues/what-is-a-cache.tex" {
		t.Errorf("Unexpected path: %q", missing.Path)
	}

	if _, err := LoadTopic(context.Background(), cat, f, "Not A Topic"); err == nil {
		t.Error("Expected error for unknown topic")
	}
}
