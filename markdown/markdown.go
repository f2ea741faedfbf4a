// Package markdown parses and HTML-renders the book's Markdown chapters.
package markdown

import (
	"bytes"
	"net/url"

	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	highlighting "github.com/yuin/goldmark-highlighting"
)

// Document is a parsed and HTML-rendered Markdown chapter.
type Document struct {
	// Meta is the chapter's metadata in the Markdown "front matter", if any.
	Meta Metadata

	// Title is taken from the metadata (if it exists) or else from the text
	// content of the first heading.
	Title string

	// HTML is the rendered Markdown content.
	HTML []byte

	// Tree is the tree of sections (used to show a table of contents).
	Tree []*SectionNode
}

// Options customize how Run parses and HTML-renders the Markdown document.
type Options struct {
	// Base is the base URL (typically including only the path, such as "/"
	// or "/book/") to use when resolving relative links.
	Base *url.URL

	// ContentFilePathToLinkPath converts references to file paths of other
	// chapter files to the URL path to use in links. For example,
	// ContentFilePathToLinkPath("a/index.md") == "a".
	ContentFilePathToLinkPath func(string) string
}

// New creates the goldmark instance used by Run.
func New(opt Options) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
			&extender{opt},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)
}

// Run parses and HTML-renders a Markdown chapter (with optional metadata in
// the Markdown "front matter").
func Run(input []byte, opt Options) (*Document, error) {
	meta, source, err := parseMetadata(input)
	if err != nil {
		return nil, errors.WithMessage(err, "parsing front matter")
	}

	md := New(opt)
	pctx := parser.NewContext(parser.WithIDs(newSlugIDs()))
	root := md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, root); err != nil {
		return nil, errors.WithMessage(err, "rendering Markdown")
	}

	doc := Document{
		Meta:  meta,
		Title: meta.Title,
		HTML:  buf.Bytes(),
		Tree:  newTree(root, source),
	}
	if doc.Title == "" {
		doc.Title = firstHeadingText(root, source)
	}
	return &doc, nil
}

func firstHeadingText(root ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == ast.KindHeading {
			title = string(RenderText(node, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
