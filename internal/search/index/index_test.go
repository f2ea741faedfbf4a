package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid records", func(t *testing.T) {
		records := []Record{
			{Title: "Introduction", URL: "/intro", Keywords: "intro overview start"},
			{Title: "Testing Guide", URL: "/testing", Keywords: "unit tests harness mock"},
		}
		idx, err := New(records)
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())
		assert.Equal(t, records, idx.Records())
	})

	t.Run("empty keywords are allowed", func(t *testing.T) {
		_, err := New([]Record{{Title: "Appendix", URL: "/appendix"}})
		require.NoError(t, err)
	})

	t.Run("duplicates are allowed", func(t *testing.T) {
		idx, err := New([]Record{
			{Title: "Intro", URL: "/intro"},
			{Title: "Intro", URL: "/intro"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := New([]Record{{URL: "/intro"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty title")
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := New([]Record{{Title: "Intro"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty url")
	})

	t.Run("input slice is copied", func(t *testing.T) {
		records := []Record{{Title: "Intro", URL: "/intro"}}
		idx, err := New(records)
		require.NoError(t, err)
		records[0].Title = "mutated"
		assert.Equal(t, "Intro", idx.Records()[0].Title)
	})
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.Records())
}

func TestParseManifest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		idx, err := ParseManifest([]byte(`
- title: Introduction
  url: /intro
  keywords: intro overview start
- title: Testing Guide
  url: /testing
  keywords: unit tests harness mock
`))
		require.NoError(t, err)
		require.Equal(t, 2, idx.Len())
		assert.Equal(t, Record{Title: "Introduction", URL: "/intro", Keywords: "intro overview start"}, idx.Records()[0])
		assert.Equal(t, Record{Title: "Testing Guide", URL: "/testing", Keywords: "unit tests harness mock"}, idx.Records()[1])
	})

	t.Run("order preserved", func(t *testing.T) {
		idx, err := ParseManifest([]byte(`
- {title: C, url: /c}
- {title: A, url: /a}
- {title: B, url: /b}
`))
		require.NoError(t, err)
		var titles []string
		for _, r := range idx.Records() {
			titles = append(titles, r.Title)
		}
		assert.Equal(t, []string{"C", "A", "B"}, titles)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := ParseManifest([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseManifest([]byte(`
- title: Intro
  url: /intro
  keyword: typo
`))
		assert.Error(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ParseManifest([]byte(`
- url: /intro
`))
		assert.Error(t, err)
	})
}
