package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the course outline: sections contain chapters, chapters list topics.
type Catalog struct {
	Sections []Section `yaml:"sections"`
}

// Section is a top-level part of the course, e.g. id "section-1",
// title "SECTION I: FOUNDATIONS".
type Section struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Chapters []Chapter `yaml:"chapters"`
}

// Chapter groups topics. IDs look like "ch-1-2".
type Chapter struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Topics []string `yaml:"topics"`
}

// Location identifies a topic inside the catalog.
type Location struct {
	Section *Section
	Chapter *Chapter
	Topic   string
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &cat, nil
}

// LoadCatalog reads a YAML catalog file. An empty path selects the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the built-in course catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// Validate checks that every section and chapter has an id.
func (c *Catalog) Validate() error {
	if len(c.Sections) == 0 {
		return fmt.Errorf("catalog has no sections")
	}

	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i+1)
		}
		for j, ch := range s.Chapters {
			if ch.ID == "" {
				return fmt.Errorf("chapter %d of section %q has no id", j+1, s.ID)
			}
		}
	}

	return nil
}

// Topics lists every topic in catalog order.
func (c *Catalog) Topics() []Location {
	var locs []Location
	for i := range c.Sections {
		section := &c.Sections[i]
		for j := range section.Chapters {
			chapter := &section.Chapters[j]
			for _, topic := range chapter.Topics {
				locs = append(locs, Location{Section: section, Chapter: chapter, Topic: topic})
			}
		}
	}
	return locs
}

// Locate finds the first chapter listing topic.
func (c *Catalog) Locate(topic string) (Location, bool) {
	for _, loc := range c.Topics() {
		if loc.Topic == topic {
			return loc, true
		}
	}
	return Location{}, false
}

// ContentPath builds the storage path of a topic:
//
//	/content/section-{N}-{section-slug}/ch-{N}-{M}-{chapter-slug}/{topic-slug}.tex
//
// It reports false when the section or chapter is unknown or their numbers cannot
// be derived.
func (c *Catalog) ContentPath(sectionID, chapterID, topic string) (string, bool) {
	for i := range c.Sections {
		section := &c.Sections[i]
		if section.ID != sectionID {
			continue
		}
		for j := range section.Chapters {
			chapter := &section.Chapters[j]
			if chapter.ID == chapterID {
				return Location{Section: section, Chapter: chapter, Topic: topic}.Path()
			}
		}
		return "", false
	}
	return "", false
}

// Path is ContentPath for a resolved location.
func (l Location) Path() (string, bool) {
	if l.Section == nil || l.Chapter == nil {
		return "", false
	}

	sectionNum, ok := SectionNumber(l.Section.ID, l.Section.Title)
	if !ok {
		return "", false
	}
	chSection, chNum, ok := ChapterNumbers(l.Chapter.ID)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("/content/section-%d-%s/ch-%d-%d-%s/%s.tex",
		sectionNum,
		SectionSlug(l.Section.Title),
		chSection,
		chNum,
		Slug(l.Chapter.Title),
		Slug(l.Topic),
	), true
}
