// Package index defines the site's search index: an ordered, read-only
// collection of records describing each searchable page. The index is
// constructed once at startup from the search manifest and never mutated
// afterward, so it is safe for concurrent readers without locking.
package index

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Record describes one searchable page.
type Record struct {
	// Title is the human-readable display string for the page.
	Title string `yaml:"title"`

	// URL is the link target of the page. It is treated as an opaque string
	// and is not validated as a real path.
	URL string `yaml:"url"`

	// Keywords is a single space-delimited string of search terms. It may
	// be empty.
	Keywords string `yaml:"keywords"`
}

// Index is an ordered sequence of records, fixed at construction. Record
// order determines the display order of search results; no re-ranking is
// performed.
type Index struct {
	records []Record
}

// New returns an index over records. Every record must have a non-empty
// title and URL. Duplicate titles or URLs are permitted and surface as
// separate results.
func New(records []Record) (*Index, error) {
	for i, r := range records {
		if r.Title == "" {
			return nil, errors.Errorf("index record %d: empty title", i)
		}
		if r.URL == "" {
			return nil, errors.Errorf("index record %d (%q): empty url", i, r.Title)
		}
	}
	return &Index{records: append([]Record(nil), records...)}, nil
}

// Records returns the records in insertion order. The returned slice is
// shared; callers must not modify it. A nil index has no records.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	return idx.records
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// ParseManifest parses a YAML search manifest (a list of records) and
// returns the index it describes.
func ParseManifest(data []byte) (*Index, error) {
	var records []Record
	if err := yaml.UnmarshalStrict(data, &records); err != nil {
		return nil, errors.WithMessage(err, "parsing search manifest")
	}
	return New(records)
}
