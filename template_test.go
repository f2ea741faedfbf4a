package booksite

import (
	"bytes"
	"net/url"
	"testing"

	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

func TestGetTemplate(t *testing.T) {
	t.Run("named template overrides root blocks", func(t *testing.T) {
		site := Site{
			Templates: httpfs.New(mapfs.New(map[string]string{
				"root.html":     `[{{block "content" .}}empty{{end}}]`,
				"document.html": `{{define "content"}}doc{{end}}`,
			})),
		}
		tmpl, err := site.getTemplate(site.Templates, documentTemplateName, nil)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, nil); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.String(), "[doc]"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("missing root template is allowed", func(t *testing.T) {
		site := Site{
			Templates: httpfs.New(mapfs.New(map[string]string{
				"search.html": `standalone`,
			})),
		}
		tmpl, err := site.getTemplate(site.Templates, searchTemplateName, nil)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, nil); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.String(), "standalone"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("missing named template is an error", func(t *testing.T) {
		site := Site{
			Templates: httpfs.New(mapfs.New(map[string]string{
				"root.html": `x`,
			})),
		}
		if _, err := site.getTemplate(site.Templates, documentTemplateName, nil); err == nil {
			t.Error("got nil error, want read error")
		}
	})

	t.Run("asset func resolves against the assets base", func(t *testing.T) {
		site := Site{
			AssetsBase: &url.URL{Path: "/assets/"},
			Templates: httpfs.New(mapfs.New(map[string]string{
				"document.html": `{{asset "style.css"}}`,
			})),
		}
		tmpl, err := site.getTemplate(site.Templates, documentTemplateName, nil)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, nil); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.String(), "/assets/style.css"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
