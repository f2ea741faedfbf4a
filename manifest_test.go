package booksite

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"

	"github.com/booklab/booksite/internal/search/index"
)

func TestSite_GenerateIndexRecords(t *testing.T) {
	site := Site{
		Content: httpfs.New(mapfs.New(map[string]string{
			"index.md":         "---\ntitle: Introduction\nkeywords: intro start\n---\n\n# Welcome",
			"testing.md":       "# Testing Guide",
			"untitled.md":      "no heading here",
			"guide/network.md": "---\nkeywords: tcp http\n---\n\n# Networking",
		})),
		Base: &url.URL{Path: "/"},
	}

	records, err := site.GenerateIndexRecords()
	if err != nil {
		t.Fatal(err)
	}
	want := []index.Record{
		{Title: "Introduction", URL: "/", Keywords: "intro start"},
		{Title: "Testing Guide", URL: "/testing"},
		{Title: "untitled", URL: "/untitled"},
		{Title: "Networking", URL: "/guide/network", Keywords: "tcp http"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSite_GenerateIndexRecords_roundTrip(t *testing.T) {
	site := Site{
		Content: httpfs.New(mapfs.New(map[string]string{
			"index.md": "# Home",
			"a.md":     "---\ntitle: A\nkeywords: alpha\n---\n\ntext",
		})),
		Base: &url.URL{Path: "/"},
	}

	records, err := site.GenerateIndexRecords()
	if err != nil {
		t.Fatal(err)
	}
	idx, err := index.New(records)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := idx.Len(), 2; got != want {
		t.Errorf("got %d records, want %d", got, want)
	}
}
