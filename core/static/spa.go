package static

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

type spaConfig struct {
	indexFile    string
	excludePaths []string
	basePath     string
}

// SPAOption configures SPA serving behavior.
type SPAOption func(*spaConfig)

// WithSPAIndex sets the index file (default "index.html").
func WithSPAIndex(indexFile string) SPAOption {
	return func(c *spaConfig) {
		c.indexFile = strings.TrimPrefix(indexFile, "/")
	}
}

// WithExcludePaths sets path prefixes that return 404 instead of the index,
// such as API routes. Defaults to /api and /ws.
func WithExcludePaths(paths ...string) SPAOption {
	return func(c *spaConfig) {
		c.excludePaths = paths
	}
}

// WithBasePath serves the app under base, matching the client router's base path.
// Requests outside base get 404.
func WithBasePath(base string) SPAOption {
	return func(c *spaConfig) {
		c.basePath = strings.TrimRight(base, "/")
	}
}

// SPA serves files from fsys and falls back to the index for every other
// path, so deep links reach the client-side router.
func SPA(fsys fs.FS, opts ...SPAOption) (http.Handler, error) {
	cfg := &spaConfig{
		indexFile:    "index.html",
		excludePaths: []string{"/api", "/ws"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	info, err := fs.Stat(fsys, cfg.indexFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIndexNotFound, cfg.indexFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIndexNotFound, cfg.indexFile)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		urlPath := path.Clean("/" + r.URL.Path)

		if cfg.basePath != "" {
			rest, ok := strings.CutPrefix(urlPath, cfg.basePath)
			if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
				http.NotFound(w, r)
				return
			}
			urlPath = path.Clean("/" + rest)
		}

		for _, exclude := range cfg.excludePaths {
			if urlPath == exclude || strings.HasPrefix(urlPath, exclude+"/") {
				http.NotFound(w, r)
				return
			}
		}

		name := strings.TrimPrefix(urlPath, "/")
		if name != "" {
			if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() {
				http.ServeFileFS(w, r, fsys, name)
				return
			}
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, fsys, cfg.indexFile)
	}), nil
}
