package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// RenderText renders the plain text content of node (e.g. for deriving a
// chapter title from its first heading).
func RenderText(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.String:
			buf.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
