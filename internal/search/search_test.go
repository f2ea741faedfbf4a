package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/booklab/booksite/internal/search/index"
)

func testIndex(t *testing.T) *index.Index {
	t.Helper()
	idx, err := index.New([]index.Record{
		{Title: "Introduction", URL: "/intro", Keywords: "intro overview start"},
		{Title: "Testing Guide", URL: "/testing", Keywords: "unit tests harness mock"},
		{Title: "Networking", URL: "/networking", Keywords: "sockets http rest"},
		{Title: "Unit vs UI tests", URL: "/testing-kinds", Keywords: ""},
	})
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestSearch_shortQueryPrompt(t *testing.T) {
	idx := testIndex(t)
	for _, query := range []string{"", "t", " ", "é", "界"} {
		t.Run("query="+query, func(t *testing.T) {
			outcome := Search(idx, query)
			if outcome.State != Prompt {
				t.Errorf("got state %v, want %v", outcome.State, Prompt)
			}
			if outcome.Matches != nil {
				t.Errorf("got matches %v, want none", outcome.Matches)
			}
			if outcome.Query != query {
				t.Errorf("got query %q, want %q", outcome.Query, query)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	tests := map[string]struct {
		query     string
		wantState State
		wantURLs  []string
	}{
		"title match": {
			query:     "Networking",
			wantState: Results,
			wantURLs:  []string{"/networking"},
		},
		"keyword match": {
			query:     "harness",
			wantState: Results,
			wantURLs:  []string{"/testing"},
		},
		"case insensitive upper": {
			query:     "INTRO",
			wantState: Results,
			wantURLs:  []string{"/intro"},
		},
		"case insensitive mixed": {
			query:     "tEsT",
			wantState: Results,
			wantURLs:  []string{"/testing", "/testing-kinds"},
		},
		"substring within word": {
			query:     "ocket",
			wantState: Results,
			wantURLs:  []string{"/networking"},
		},
		"order preserved across title and keyword matches": {
			query:     "unit",
			wantState: Results,
			wantURLs:  []string{"/testing", "/testing-kinds"},
		},
		"no results": {
			query:     "zzz",
			wantState: NoResults,
		},
		"metacharacters are literal": {
			query:     "a.*",
			wantState: NoResults,
		},
		"untrimmed spaces": {
			query:     "  ",
			wantState: NoResults,
		},
	}
	idx := testIndex(t)
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			outcome := Search(idx, test.query)
			if outcome.State != test.wantState {
				t.Fatalf("got state %v, want %v", outcome.State, test.wantState)
			}
			var gotURLs []string
			for _, r := range outcome.Matches {
				gotURLs = append(gotURLs, r.URL)
			}
			if diff := cmp.Diff(test.wantURLs, gotURLs); diff != "" {
				t.Errorf("matches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch_pure(t *testing.T) {
	idx := testIndex(t)
	for _, query := range []string{"", "t", "test", "zzz"} {
		first := Search(idx, query)
		second := Search(idx, query)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("query %q: outcomes differ (-first +second):\n%s", query, diff)
		}
	}
}

func TestSearch_nilIndex(t *testing.T) {
	outcome := Search(nil, "test")
	if outcome.State != NoResults {
		t.Errorf("got state %v, want %v", outcome.State, NoResults)
	}
}

func TestOutcome_stateAccessors(t *testing.T) {
	idx := testIndex(t)
	tests := map[string]struct {
		query string
		want  State
	}{
		"prompt":     {query: "t", want: Prompt},
		"no results": {query: "zzz", want: NoResults},
		"results":    {query: "test", want: Results},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			o := Search(idx, test.query)
			got := map[State]bool{
				Prompt:    o.IsPrompt(),
				NoResults: o.IsNoResults(),
				Results:   o.IsResults(),
			}
			for state, isSet := range got {
				if want := state == test.want; isSet != want {
					t.Errorf("state %v: got %v, want %v", state, isSet, want)
				}
			}
		})
	}
}
