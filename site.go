package booksite

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	pathpkg "path"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/booklab/booksite/internal/search/index"
	"github.com/booklab/booksite/markdown"
)

// Site represents the book's documentation site, including its chapters,
// templates, assets, and search index.
type Site struct {
	// Content is the file system containing the Markdown chapter files and
	// the assets (e.g., images) embedded in them.
	Content http.FileSystem

	// Index is the search index over the site's pages. It is constructed
	// once at startup and read-only afterward. A nil Index means every
	// search of length >= 2 finds nothing.
	Index *index.Index

	// Base is the base URL (typically including only the path, such as "/"
	// or "/book/") where the site is available.
	Base *url.URL

	// Templates is the file system containing the Go html/template files
	// used to render site pages.
	Templates http.FileSystem

	// Assets is the file system containing the site-wide static asset files
	// (e.g., global styles and logo).
	Assets http.FileSystem

	// AssetsBase is the base URL (sometimes only including the path, such
	// as "/assets/") where the assets are available.
	AssetsBase *url.URL

	// Redirects maps URL paths to their redirect destinations.
	Redirects map[string]*url.URL

	// CheckIgnoreURLPattern is a regexp matching URLs to ignore in the
	// Check method.
	CheckIgnoreURLPattern *regexp.Regexp

	// Logger, if set, receives request-level log events from the handler.
	Logger *zerolog.Logger
}

func (s *Site) log() *zerolog.Logger {
	if s.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return s.Logger
}

// newChapterPage creates a new ChapterPage in the site.
func (s *Site) newChapterPage(filePath string, data []byte) (*ChapterPage, error) {
	urlPathPrefix := strings.TrimPrefix(pathpkg.Dir(filePath)+"/", "/")
	if urlPathPrefix != "" && !strings.HasSuffix(urlPathPrefix, "/") {
		urlPathPrefix += "/"
	}

	base := s.Base
	if base == nil {
		base = &url.URL{Path: "/"}
	}

	path := chapterFilePathToPath(filePath)
	doc, err := markdown.Run(data, markdown.Options{
		Base:                      base.ResolveReference(&url.URL{Path: urlPathPrefix}),
		ContentFilePathToLinkPath: chapterFilePathToPath,
	})
	if err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("render chapter %s", filePath))
	}
	return &ChapterPage{
		Path:        path,
		FilePath:    filePath,
		Data:        data,
		Doc:         *doc,
		Breadcrumbs: makeBreadcrumbEntries(path),
	}, nil
}

// AllChapterPages returns a list of all chapter pages in the site.
func (s *Site) AllChapterPages() ([]*ChapterPage, error) {
	var pages []*ChapterPage
	err := WalkFileSystem(s.Content, isChapterPage, func(path string) error {
		data, err := ReadFile(s.Content, path)
		if err != nil {
			return err
		}
		page, err := s.newChapterPage(path, data)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	return pages, err
}

// ResolveChapterPage looks up the chapter page at the given path (which
// generally comes from a URL). The path may omit the ".md" file extension
// and the "/index" or "/index.md" suffix.
func (s *Site) ResolveChapterPage(path string) (*ChapterPage, error) {
	filePath, data, err := resolveAndReadAll(s.Content, path)
	if err != nil {
		return nil, err
	}
	return s.newChapterPage(filePath, data)
}

// PageData is the data available to the HTML template used to render a page.
type PageData struct {
	ChapterPagePath string // chapter page path requested

	ChapterNotFoundError bool // whether the requested chapter was not found

	// Content is the chapter page, when it is found.
	Content *ChapterPage
}

// RenderChapterPage renders a chapter page using the template.
func (s *Site) RenderChapterPage(page *PageData) ([]byte, error) {
	tmpl, err := s.getTemplate(s.Templates, documentTemplateName, template.FuncMap{
		"markdown": func(page ChapterPage) template.HTML {
			return template.HTML(page.Doc.HTML)
		},
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
