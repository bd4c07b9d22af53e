package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// StaticHandler serves the dashboard single-page UI and falls back to
// index.html for client-side routes.
type StaticHandler struct {
	fileSystem http.FileSystem
}

// NewStaticHandler creates a static file handler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		fileSystem: http.Dir(dir),
	}
}

// ServeHTTP serves static files and handles SPA routing
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/" {
		path = "/index.html"
	}

	file, err := h.fileSystem.Open(path)
	if err != nil {
		// If file doesn't exist and it's not an API route, serve index.html for SPA routing
		if !strings.HasPrefix(path, "/api/") {
			indexFile, indexErr := h.fileSystem.Open("/index.html")
			if indexErr != nil {
				http.NotFound(w, r)
				return
			}
			defer indexFile.Close()

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			http.ServeContent(w, r, "index.html", time.Time{}, indexFile)
			return
		}

		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Set appropriate content type based on file extension
	switch filepath.Ext(path) {
	case ".html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	case ".css":
		w.Header().Set("Content-Type", "text/css")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	case ".json":
		w.Header().Set("Content-Type", "application/json")
	case ".ico":
		w.Header().Set("Content-Type", "image/x-icon")
	case ".svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
}
