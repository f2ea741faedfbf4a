package search

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// literalPattern compiles a case-insensitive pattern matching query as
// literal text. The QuoteMeta escaping keeps metacharacters in user input
// (such as "c++", "a.*b", or an unbalanced "[") from being interpreted as
// pattern syntax.
func literalPattern(query string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

// Highlight renders title as HTML with every case-insensitive occurrence
// of query wrapped in <strong>. Text outside matches is HTML-escaped, and
// matched text keeps its original casing. If query does not occur in
// title, the title is returned escaped and unmarked.
func Highlight(title, query string) template.HTML {
	if query == "" {
		return template.HTML(html.EscapeString(title))
	}
	var b strings.Builder
	c := 0
	for _, m := range literalPattern(query).FindAllStringIndex(title, -1) {
		start, end := m[0], m[1]
		if start > c {
			b.WriteString(html.EscapeString(title[c:start]))
		}
		b.WriteString("<strong>")
		b.WriteString(html.EscapeString(title[start:end]))
		b.WriteString("</strong>")
		c = end
	}
	if c < len(title) {
		b.WriteString(html.EscapeString(title[c:]))
	}
	return template.HTML(b.String())
}

// KeywordSummary returns the first n whitespace-delimited tokens of
// keywords, joined by single spaces, for display as secondary text under a
// result. Empty keywords yield "".
func KeywordSummary(keywords string, n int) string {
	fields := strings.Fields(keywords)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
