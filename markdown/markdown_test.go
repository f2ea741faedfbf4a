package markdown

import (
	"net/url"
	"strings"
	"testing"
)

func mustRun(t *testing.T, input string, opt Options) *Document {
	t.Helper()
	doc, err := Run([]byte(input), opt)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRun(t *testing.T) {
	doc := mustRun(t, "Hello world **cool**!", Options{})
	want := "<p>Hello world <strong>cool</strong>!</p>"
	if got := strings.TrimSpace(string(doc.HTML)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_relativeURL(t *testing.T) {
	doc := mustRun(t, "[a](./b/c)", Options{Base: &url.URL{Path: "/d/"}})
	want := `<p><a href="/d/b/c">a</a></p>`
	if got := strings.TrimSpace(string(doc.HTML)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_contentFilePathToLinkPath(t *testing.T) {
	doc := mustRun(t, "[a](b/index.md)", Options{
		Base:                      &url.URL{Path: "/"},
		ContentFilePathToLinkPath: func(p string) string { return strings.TrimSuffix(p, "/index.md") },
	})
	want := `<p><a href="/b">a</a></p>`
	if got := strings.TrimSpace(string(doc.HTML)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRun_headingAnchorLink(t *testing.T) {
	doc := mustRun(t, "## Unit Testing", Options{})
	got := strings.TrimSpace(string(doc.HTML))
	want := `<h2 id="unit-testing"><a name="unit-testing" class="anchor" href="#unit-testing" rel="nofollow" aria-hidden="true" title="#unit-testing"></a>Unit Testing</h2>`
	if got != want {
		t.Errorf("\ngot:  %s\nwant: %s", got, want)
	}
}

func TestRun_duplicateHeadingIDs(t *testing.T) {
	doc := mustRun(t, "## Setup\n\n## Setup", Options{})
	html := string(doc.HTML)
	for _, want := range []string{`id="setup"`, `id="setup-1"`} {
		if !strings.Contains(html, want) {
			t.Errorf("got %q, want contains %q", html, want)
		}
	}
}

func TestRun_aside(t *testing.T) {
	doc := mustRun(t, "> NOTE: remember this", Options{})
	got := string(doc.HTML)
	if want := `<aside class="note">`; !strings.Contains(got, want) {
		t.Errorf("got %q, want contains %q", got, want)
	}
}

func TestRun_titleFromMetadata(t *testing.T) {
	doc := mustRun(t, "---\ntitle: Intro\n---\n\n# Something else\n", Options{})
	if want := "Intro"; doc.Title != want {
		t.Errorf("got title %q, want %q", doc.Title, want)
	}
}

func TestRun_titleFromFirstHeading(t *testing.T) {
	doc := mustRun(t, "# The Concurrency Chapter\n\nbody\n", Options{})
	if want := "The Concurrency Chapter"; doc.Title != want {
		t.Errorf("got title %q, want %q", doc.Title, want)
	}
}
