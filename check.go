package booksite

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Check checks the site for common problems: broken internal links,
// disconnected chapters, and search index records whose URLs do not
// resolve to a page.
func (s *Site) Check() (problems []string, err error) {
	pages, err := s.AllChapterPages()
	if err != nil {
		return nil, err
	}

	problemPrefix := func(page *ChapterPage) string {
		return fmt.Sprintf("%s: ", page.FilePath)
	}

	handler := s.Handler()

	// Render and parse the pages.
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	addProblem := func(problem string) {
		mu.Lock()
		problems = append(problems, problem)
		mu.Unlock()
	}
	allPageDatas := make([]*chapterPageCheckData, 0, len(pages))
	for _, page := range pages {
		wg.Add(1)
		go func(page *ChapterPage) {
			defer wg.Done()
			data, err := s.RenderChapterPage(&PageData{Content: page})
			if err != nil {
				addProblem(problemPrefix(page) + err.Error())
				return
			}
			doc, err := html.Parse(bytes.NewReader(data))
			if err != nil {
				addProblem(problemPrefix(page) + err.Error())
				return
			}
			pageData := &chapterPageCheckData{
				ChapterPage: page,
				doc:         doc,
			}

			mu.Lock()
			allPageDatas = append(allPageDatas, pageData)
			mu.Unlock()

			// Find per-page problems.
			for _, p := range s.checkChapterPage(handler, pageData) {
				addProblem(problemPrefix(page) + p)
			}
		}(page)
	}
	wg.Wait()

	// Find site-wide problems.
	problems = append(problems, s.checkSite(allPageDatas)...)
	problems = append(problems, s.checkIndex(handler, allPageDatas)...)

	return problems, nil
}

type chapterPageCheckData struct {
	*ChapterPage
	doc *html.Node
}

func (s *Site) checkChapterPage(handler http.Handler, page *chapterPageCheckData) (problems []string) {
	walkHTMLDocument(page.doc, walkHTMLDocumentOptions{
		url: func(urlStr string) {
			if s.CheckIgnoreURLPattern != nil && s.CheckIgnoreURLPattern.MatchString(urlStr) {
				return
			}

			u, err := url.Parse(urlStr)
			if err != nil {
				problems = append(problems, fmt.Sprintf("invalid URL %q", urlStr))
				return
			}
			if u.Scheme != "" || u.Host != "" {
				return // external links are not checked
			}
			if u.Path == "" {
				return // fragment-only link within the page
			}

			rr := httptest.NewRecorder()
			req, err := http.NewRequest("HEAD", urlStr, nil)
			if err != nil {
				problems = append(problems, fmt.Sprintf("invalid request URI %q", urlStr))
				return
			}
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				problems = append(problems, fmt.Sprintf("broken link to %s", urlStr))
			}
		},
	})
	return problems
}

func (s *Site) checkSite(pages []*chapterPageCheckData) (problems []string) {
	basePath := "/"
	if s.Base != nil {
		basePath = s.Base.Path
	}

	inlinks := map[string]struct{}{}
	for _, page := range pages {
		walkHTMLDocument(page.doc, walkHTMLDocumentOptions{
			url: func(urlStr string) {
				u, err := url.Parse(urlStr)
				if err != nil {
					return // invalid URL error will be reported in per-page check
				}
				pagePath := strings.TrimPrefix(u.Path, basePath)
				if pagePath == page.Path {
					return // ignore self links for the sake of disconnected page detection
				}
				inlinks[pagePath] = struct{}{}
			},
		})
	}

	for _, page := range pages {
		if _, hasInlinks := inlinks[page.Path]; !hasInlinks && page.FilePath != "index.md" && !page.Doc.Meta.IgnoreDisconnectedPageCheck {
			problems = append(problems, fmt.Sprintf("%s: disconnected page (no inlinks from other pages)", page.FilePath))
		}
	}

	return problems
}

func (s *Site) checkIndex(handler http.Handler, pages []*chapterPageCheckData) (problems []string) {
	if s.Index.Len() == 0 {
		return []string{"search index: no records (generate the search manifest)"}
	}

	basePath := "/"
	if s.Base != nil {
		basePath = s.Base.Path
	}

	indexedPaths := map[string]struct{}{}
	for _, rec := range s.Index.Records() {
		u, err := url.Parse(rec.URL)
		if err != nil {
			problems = append(problems, fmt.Sprintf("search index %q: invalid url %q", rec.Title, rec.URL))
			continue
		}
		if u.Scheme != "" || u.Host != "" {
			continue // external records are not checked
		}
		indexedPaths[strings.TrimPrefix(u.Path, basePath)] = struct{}{}

		rr := httptest.NewRecorder()
		req, err := http.NewRequest("HEAD", rec.URL, nil)
		if err != nil {
			problems = append(problems, fmt.Sprintf("search index %q: invalid request URI %q", rec.Title, rec.URL))
			continue
		}
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			problems = append(problems, fmt.Sprintf("search index %q: url %s does not resolve", rec.Title, rec.URL))
		}
	}

	for _, page := range pages {
		if _, ok := indexedPaths[page.Path]; !ok {
			problems = append(problems, fmt.Sprintf("%s: chapter is not in the search index", page.FilePath))
		}
	}

	return problems
}

type walkHTMLDocumentOptions struct {
	url func(url string) // called for each URL encountered
}

func walkHTMLDocument(node *html.Node, opt walkHTMLDocumentOptions) {
	if node.Type == html.ElementNode {
		switch node.DataAtom {
		case atom.A:
			if href, ok := getAttribute(node, "href"); ok {
				opt.url(href)
			}
		case atom.Img:
			if src, ok := getAttribute(node, "src"); ok {
				opt.url(src)
			}
		}
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walkHTMLDocument(c, opt)
	}
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
