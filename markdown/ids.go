package markdown

import (
	"fmt"

	"github.com/mozillazg/go-slugify"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// slugIDs generates heading IDs by slugifying the heading text, with a
// numeric suffix to keep IDs unique within a document. goldmark's default
// generator drops non-ASCII characters entirely; slugify transliterates
// them, which matters for chapters with accented headings.
type slugIDs struct {
	used map[string]bool
}

var _ parser.IDs = (*slugIDs)(nil)

func newSlugIDs() *slugIDs {
	return &slugIDs{used: map[string]bool{}}
}

func (s *slugIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	id := slugify.Slugify(string(value))
	if id == "" {
		id = "section"
	}
	if !s.used[id] {
		s.used[id] = true
		return []byte(id)
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !s.used[candidate] {
			s.used[candidate] = true
			return []byte(candidate)
		}
	}
}

func (s *slugIDs) Put(value []byte) {
	s.used[string(value)] = true
}
