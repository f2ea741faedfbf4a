package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/booklab/booksite"
	"github.com/booklab/booksite/internal/search/index"
)

// siteConfig is the shape of booksite.json.
type siteConfig struct {
	Content           string
	Templates         string
	Assets            string
	BaseURLPath       string
	AssetsBaseURLPath string
	SearchManifest    string
	Redirects         map[string]string
	Check             struct {
		IgnoreURLPattern string
	}
}

func (c *siteConfig) applyDefaults() {
	if c.Content == "" {
		c.Content = "content"
	}
	if c.Templates == "" {
		c.Templates = "templates"
	}
	if c.Assets == "" {
		c.Assets = "assets"
	}
	if c.BaseURLPath == "" {
		c.BaseURLPath = "/"
	}
	if c.AssetsBaseURLPath == "" {
		c.AssetsBaseURLPath = "/assets/"
	}
	if c.SearchManifest == "" {
		c.SearchManifest = "search.yaml"
	}
}

func siteFromFlags() (*booksite.Site, *siteConfig, error) {
	data, err := os.ReadFile(*configPath)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "reading site config file (from -config flag)")
	}
	var config siteConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, nil, errors.WithMessage(err, "parsing site config")
	}
	return siteFromConfig(config, filepath.Dir(*configPath))
}

func siteFromConfig(config siteConfig, dir string) (*booksite.Site, *siteConfig, error) {
	config.applyDefaults()

	logger := log.With().Str("component", "site").Logger()
	site := booksite.Site{
		Content:    http.Dir(filepath.Join(dir, config.Content)),
		Templates:  http.Dir(filepath.Join(dir, config.Templates)),
		Assets:     http.Dir(filepath.Join(dir, config.Assets)),
		Base:       &url.URL{Path: config.BaseURLPath},
		AssetsBase: &url.URL{Path: config.AssetsBaseURLPath},
		Logger:     &logger,
	}

	if config.Check.IgnoreURLPattern != "" {
		pattern, err := regexp.Compile(config.Check.IgnoreURLPattern)
		if err != nil {
			return nil, nil, errors.WithMessage(err, "compiling check ignore pattern")
		}
		site.CheckIgnoreURLPattern = pattern
	}

	for fromPath, toURLStr := range config.Redirects {
		toURL, err := url.Parse(toURLStr)
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "invalid redirect destination for %q", fromPath)
		}
		if site.Redirects == nil {
			site.Redirects = map[string]*url.URL{}
		}
		site.Redirects[fromPath] = toURL
	}

	manifestData, err := os.ReadFile(filepath.Join(dir, config.SearchManifest))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, errors.WithMessage(err, "reading search manifest")
		}
		// A missing manifest is not fatal: the site serves without search
		// results until one is generated.
	} else {
		idx, err := index.ParseManifest(manifestData)
		if err != nil {
			return nil, nil, err
		}
		site.Index = idx
	}

	return &site, &config, nil
}
