// Package search implements the site's page search: a case-insensitive
// substring match of a free-text query against the title and keywords of
// each record in the search index.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/booklab/booksite/internal/search/index"
)

// MinQueryLength is the minimum query length, counted in runes, for a
// search to run. Shorter queries produce a Prompt outcome instead of an
// empty result list so the UI can distinguish "not enough input yet" from
// "searched and found nothing".
const MinQueryLength = 2

// State tags the kind of outcome a search produced.
type State int

const (
	// Prompt means the query was too short to search.
	Prompt State = iota
	// NoResults means the search ran and matched no records.
	NoResults
	// Results means the search matched at least one record.
	Results
)

func (s State) String() string {
	switch s {
	case Prompt:
		return "prompt"
	case NoResults:
		return "no-results"
	case Results:
		return "results"
	default:
		return "invalid"
	}
}

// Outcome is the result of a search.
type Outcome struct {
	State State

	// Query is the original query string, kept for highlight computation.
	Query string

	// Matches holds the matched records in index order. It is non-empty
	// exactly when State is Results.
	Matches []index.Record
}

func (o Outcome) IsPrompt() bool    { return o.State == Prompt }
func (o Outcome) IsNoResults() bool { return o.State == NoResults }
func (o Outcome) IsResults() bool   { return o.State == Results }

// Search matches query against idx. A record matches if the query occurs,
// case-insensitively, as a plain substring of its title or keywords; there
// is no tokenization, word-boundary awareness, or relevance scoring.
// Matches keep their index order.
//
// Search is total over all string inputs and never interprets the query as
// pattern syntax. The raw query is not trimmed: a query of two spaces
// searches for two spaces.
func Search(idx *index.Index, query string) Outcome {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return Outcome{State: Prompt, Query: query}
	}

	needle := strings.ToLower(query)
	var matches []index.Record
	for _, r := range idx.Records() {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Keywords), needle) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return Outcome{State: NoResults, Query: query}
	}
	return Outcome{State: Results, Query: query, Matches: matches}
}
