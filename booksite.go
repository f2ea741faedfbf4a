// Package booksite serves a book's companion documentation site: Markdown
// chapters rendered to HTML, static assets, and a client search over a
// static index of the site's pages.
package booksite

import (
	"io"
	"net/http"
)

// ReadFile reads a file from an http.FileSystem.
func ReadFile(fs http.FileSystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
