package booksite

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Handler returns an http.Handler that serves the site.
func (s *Site) Handler() http.Handler {
	m := http.NewServeMux()
	logger := s.log()

	const (
		cacheMaxAge0     = "max-age=0"
		cacheMaxAgeShort = "max-age=60"
		cacheMaxAgeLong  = "max-age=300"
	)
	isNoCacheRequest := func(r *http.Request) bool {
		return r.Header.Get("Cache-Control") == "no-cache"
	}
	isRedirect := func(path string) *url.URL {
		requestPathWithLeadingSlash := path
		if !strings.HasPrefix(requestPathWithLeadingSlash, "/") {
			requestPathWithLeadingSlash = "/" + requestPathWithLeadingSlash
		}
		if redirectTo, ok := s.Redirects[requestPathWithLeadingSlash]; ok {
			return redirectTo
		}
		return nil
	}
	setCacheControl := func(w http.ResponseWriter, r *http.Request, cacheControl string) {
		if isNoCacheRequest(r) {
			w.Header().Set("Cache-Control", cacheMaxAge0)
		} else {
			w.Header().Set("Cache-Control", cacheControl)
		}
	}

	// Serve site assets using http.FileServer.
	if s.AssetsBase != nil {
		assetsFileServer := http.FileServer(s.Assets)
		m.Handle(s.AssetsBase.Path, http.StripPrefix(s.AssetsBase.Path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setCacheControl(w, r, cacheMaxAgeLong)
			assetsFileServer.ServeHTTP(w, r)
		})))
	}

	var basePath string
	if s.Base != nil {
		basePath = s.Base.Path
	} else {
		basePath = "/"
	}

	// Serve search.
	m.Handle(path.Join(basePath, "search"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		queryStr := r.URL.Query().Get("q")
		outcome := s.Search(queryStr)
		logger.Debug().
			Str("query", queryStr).
			Stringer("state", outcome.State).
			Int("matches", len(outcome.Matches)).
			Msg("search")

		var respData []byte
		if r.Method == "GET" {
			var err error
			respData, err = s.renderSearchPage(outcome)
			if err != nil {
				logger.Error().Err(err).Msg("render search page")
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setCacheControl(w, r, cacheMaxAgeShort)
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	}))

	// Serve chapters.
	m.Handle(basePath, http.StripPrefix(basePath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if redirectTo := isRedirect(r.URL.Path); redirectTo != nil {
			http.Redirect(w, r, redirectTo.String(), http.StatusPermanentRedirect)
			return
		}

		if IsContentAsset(r.URL.Path) {
			// Serve non-Markdown content files (such as images) using
			// http.FileServer.
			setCacheControl(w, r, cacheMaxAgeLong)
			http.FileServer(s.Content).ServeHTTP(w, r)
			return
		}

		data := PageData{
			ChapterPagePath: r.URL.Path,
		}
		filePath, fileData, err := resolveAndReadAll(s.Content, r.URL.Path)
		if err == nil {
			// Strip trailing slashes for consistency.
			if strings.HasSuffix(r.URL.Path, "/") {
				http.Redirect(w, r, path.Join(basePath, strings.TrimSuffix(r.URL.Path, "/")), http.StatusMovedPermanently)
				return
			}

			// Chapter page found.
			data.Content, err = s.newChapterPage(filePath, fileData)
		}
		if err != nil {
			// Chapter page not found.
			if !os.IsNotExist(err) {
				logger.Error().Err(err).Str("path", r.URL.Path).Msg("load chapter")
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "content error: "+err.Error(), http.StatusInternalServerError)
				return
			}
			data.ChapterNotFoundError = true
		}

		var respData []byte
		if r.Method == "GET" {
			var err error
			respData, err = s.RenderChapterPage(&data)
			if err != nil {
				logger.Error().Err(err).Str("path", r.URL.Path).Msg("render chapter")
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		// Don't cache errors; do cache on success. Headers must be set
		// before WriteHeader or they are dropped.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if data.Content == nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			w.WriteHeader(http.StatusNotFound)
		} else {
			setCacheControl(w, r, cacheMaxAgeShort)
		}
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	})))

	return m
}
