package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTree(t *testing.T) {
	doc := mustRun(t, `# Chapter

## Section A

### Sub A1

## Section B
`, Options{})
	want := []*SectionNode{
		{
			Title: "Chapter",
			URL:   "#chapter",
			Level: 1,
			Children: []*SectionNode{
				{
					Title: "Section A",
					URL:   "#section-a",
					Level: 2,
					Children: []*SectionNode{
						{Title: "Sub A1", URL: "#sub-a1", Level: 3},
					},
				},
				{Title: "Section B", URL: "#section-b", Level: 2},
			},
		},
	}
	if diff := cmp.Diff(want, doc.Tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}
