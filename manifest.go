package booksite

import (
	"net/url"

	"github.com/booklab/booksite/internal/search/index"
)

// GenerateIndexRecords derives search manifest records from the site's
// chapters: the title from front matter (or else the first heading), the
// URL from the chapter path, and keywords from front matter. Authors use
// this to regenerate the hand-maintained search manifest after adding or
// renaming chapters.
func (s *Site) GenerateIndexRecords() ([]index.Record, error) {
	base := s.Base
	if base == nil {
		base = &url.URL{Path: "/"}
	}

	var records []index.Record
	err := WalkFileSystem(s.Content, isChapterPage, func(path string) error {
		data, err := ReadFile(s.Content, path)
		if err != nil {
			return err
		}
		page, err := s.newChapterPage(path, data)
		if err != nil {
			return err
		}

		title := page.Doc.Title
		if title == "" {
			// A chapter with no front matter title and no headings still
			// needs a non-empty display string.
			title = page.Path
			if title == "" {
				title = "Index"
			}
		}
		records = append(records, index.Record{
			Title:    title,
			URL:      base.ResolveReference(&url.URL{Path: page.Path}).String(),
			Keywords: page.Doc.Meta.Keywords,
		})
		return nil
	})
	return records, err
}
