package content

import (
	"context"
	"fmt"
)

// Topic is a catalog topic together with its markup, if any was found.
type Topic struct {
	Location
	Path      string
	Content   string
	Available bool
	// Err is the fetch failure when Available is false.
	Err error
}

// LoadTopic locates topic in the catalog and fetches its markup. A missing or
// unreadable file is not an error: the topic comes back with Available unset.
// Only a topic that is not in the catalog, or whose path cannot be built, fails.
func LoadTopic(ctx context.Context, cat *Catalog, f Fetcher, topic string) (*Topic, error) {
	loc, ok := cat.Locate(topic)
	if !ok {
		return nil, fmt.Errorf("unknown topic %q", topic)
	}

	path, ok := loc.Path()
	if !ok {
		return nil, fmt.Errorf("cannot build content path for %q (section %q, chapter %q)", topic, loc.Section.ID, loc.Chapter.ID)
	}

	t := &Topic{Location: loc, Path: path}

	data, err := f.Fetch(ctx, path)
	if err != nil {
		t.Err = err
		return t, nil
	}

	t.Content = string(data)
	t.Available = len(data) > 0
	return t, nil
}
