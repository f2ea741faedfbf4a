package markdown

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var _ goldmark.Extender = (*extender)(nil)

type extender struct {
	Options
}

func (e *extender) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&nodeRenderer{e.Options}, 10),
		),
	)
}

var _ renderer.NodeRenderer = (*nodeRenderer)(nil)

type nodeRenderer struct {
	Options
}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
	reg.Register(ast.KindLink, r.renderLinkOrImage)
	reg.Register(ast.KindImage, r.renderLinkOrImage)
}

func (r *nodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<h")
	_ = w.WriteByte("0123456"[n.Level])
	if n.Attributes() != nil {
		goldmarkhtml.RenderAttributes(w, node, goldmarkhtml.HeadingAttributeFilter)
	}
	_ = w.WriteByte('>')

	// Add "#" anchor links to headings to make it easy for readers to
	// discover and copy links to sections of a chapter.
	attrID := GetAttributeID(n)

	// If the heading consists only of a link, do not emit an anchor link.
	if hasSingleChildOfLink(n) {
		_, _ = fmt.Fprintf(w, `<a name="%s" aria-hidden="true"></a>`, attrID)
	} else {
		_, _ = fmt.Fprintf(w, `<a name="%[1]s" class="anchor" href="#%[1]s" rel="nofollow" aria-hidden="true" title="#%[1]s"></a>`, attrID)
	}
	return ast.WalkContinue, nil
}

// renderBlockquote marks up "NOTE:" and "WARNING:" blockquotes as asides so
// the site styles can call them out.
func (r *nodeRenderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	var val []byte
	if paragraph := node.FirstChild(); paragraph != nil {
		for i := 0; i < paragraph.Lines().Len(); i++ {
			s := paragraph.Lines().At(i)
			val = append(val, s.Value(source)...)
		}
	}

	var aside string
	switch {
	case bytes.HasPrefix(val, []byte("NOTE:")):
		aside = "note"
	case bytes.HasPrefix(val, []byte("WARNING:")):
		aside = "warning"
	}

	if aside != "" {
		if entering {
			_, _ = fmt.Fprintf(w, "<aside class=\"%s\">\n", aside)
		} else {
			_, _ = w.WriteString("</aside>\n")
		}
	} else {
		if entering {
			_, _ = w.WriteString("<blockquote>\n")
		} else {
			_, _ = w.WriteString("</blockquote>\n")
		}
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	if !entering {
		if n.HasClosure() {
			_, _ = w.Write(n.ClosureLine.Value(source))
		}
		return ast.WalkContinue, nil
	}

	var val []byte
	for i := 0; i < n.Lines().Len(); i++ {
		s := n.Lines().At(i)
		val = append(val, s.Value(source)...)
	}

	// Rewrite URLs correctly when they are relative to the chapter,
	// regardless of whether it's an index.md document or not.
	if r.Options.Base != nil {
		if v, err := rewriteRelativeURLsInHTML(val, r.Options); err == nil {
			val = v
		}
	}
	_, _ = w.Write(val)
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}

	n := node.(*ast.RawHTML)
	var val []byte
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		val = append(val, segment.Value(source)...)
	}

	if r.Options.Base != nil {
		if v, err := rewriteRelativeURLsInHTML(val, r.Options); err == nil {
			val = v
		}
	}
	_, _ = w.Write(val)
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderLinkOrImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	var dest string
	switch n := node.(type) {
	case *ast.Link:
		dest = string(n.Destination)
	case *ast.Image:
		dest = string(n.Destination)
	}

	if entering {
		destURL, err := url.Parse(dest)
		if err == nil && !destURL.IsAbs() && destURL.Path != "" {
			if r.Options.ContentFilePathToLinkPath != nil {
				destURL.Path = r.Options.ContentFilePathToLinkPath(destURL.Path)
			}
			if r.Options.Base != nil {
				destURL = r.Options.Base.ResolveReference(destURL)
			}
			dest = destURL.String()
		}
	}

	switch n := node.(type) {
	case *ast.Link:
		n.Destination = []byte(dest)
		return r.renderLink(w, source, n, entering)
	case *ast.Image:
		n.Destination = []byte(dest)
		return r.renderImage(w, source, n, entering)
	default:
		panic("unreachable")
	}
}

// Copied from https://github.com/yuin/goldmark/blob/master/renderer/html/html.go
// (renderLink), minus the autolink handling that a default renderer covers.
func (r *nodeRenderer) renderLink(w util.BufWriter, source []byte, n *ast.Link, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(`<a href="`)
		if !goldmarkhtml.IsDangerousURL(n.Destination) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
		}
		_ = w.WriteByte('"')
		if n.Title != nil {
			_, _ = w.WriteString(` title="`)
			_, _ = w.Write(n.Title)
			_ = w.WriteByte('"')
		}
		if n.Attributes() != nil {
			goldmarkhtml.RenderAttributes(w, n, goldmarkhtml.LinkAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

// Copied from https://github.com/yuin/goldmark/blob/master/renderer/html/html.go
// (renderImage).
func (r *nodeRenderer) renderImage(w util.BufWriter, source []byte, n *ast.Image, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("<img src=\"")
	if !goldmarkhtml.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(RenderText(n, source))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(n.Title)
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		goldmarkhtml.RenderAttributes(w, n, goldmarkhtml.LinkAttributeFilter)
	}
	_, _ = w.WriteString(">")
	return ast.WalkSkipChildren, nil
}

// GetAttributeID returns the "id" attribute of node, or "" if it has none.
func GetAttributeID(node ast.Node) string {
	attr, ok := node.AttributeString("id")
	if !ok {
		return ""
	}
	v, ok := attr.([]byte)
	if !ok {
		return ""
	}
	return string(v)
}

func hasSingleChildOfLink(node ast.Node) bool {
	seenLink := false
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch {
		case child.Kind() == ast.KindText && child.(*ast.Text).Segment.Len() == 0:
			continue
		case child.Kind() == ast.KindLink && !seenLink:
			seenLink = true
		default:
			return false
		}
	}
	return seenLink
}
