package booksite

import (
	"bytes"
	"html/template"

	"github.com/booklab/booksite/internal/search"
)

// maxSummaryKeywords is the number of keyword tokens shown as secondary
// text under each search result.
const maxSummaryKeywords = 3

// Search matches queryStr against the site's search index. It never fails:
// under-length queries yield a prompt outcome and exhausted searches yield
// a no-results outcome.
func (s *Site) Search(queryStr string) search.Outcome {
	return search.Search(s.Index, queryStr)
}

func (s *Site) renderSearchPage(outcome search.Outcome) ([]byte, error) {
	tmpl, err := s.getTemplate(s.Templates, searchTemplateName, template.FuncMap{
		"highlight": func(title string) template.HTML {
			return search.Highlight(title, outcome.Query)
		},
		"keywordSummary": func(keywords string) string {
			return search.KeywordSummary(keywords, maxSummaryKeywords)
		},
		"minQueryLength": func() int { return search.MinQueryLength },
	})
	if err != nil {
		return nil, err
	}

	data := struct {
		Query   string
		Outcome search.Outcome
	}{
		Query:   outcome.Query,
		Outcome: outcome,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
