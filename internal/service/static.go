package service

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// staticHandler serves the built frontend. Unknown paths fall back to
// index.html so client-side routes survive a reload.
type staticHandler struct {
	dir string
}

func newStaticHandler(dir string) (*staticHandler, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat static path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static path is not a directory: %s", abs)
	}
	return &staticHandler{dir: abs}, nil
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	// Clean against a rooted path so ".." cannot escape the directory.
	filePath := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+urlPath)))

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}

	http.ServeFile(w, r, filePath)
}
