package server

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zmzehd/markdown2html/internal/cache"
)

// Server serves rendered HTML pages from a directory of markdown
// sources, converting on demand.
type Server struct {
	cfg   *viper.Viper
	store *cache.Store // nil when caching is disabled
}

func New(cfg *viper.Viper, store *cache.Store) *Server {
	return &Server{cfg: cfg, store: store}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", s.handlePage)
	return mux
}

// handlePage maps GET /<name>.html (or /<name>) to <site.dir>/<name>.md.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	name = strings.TrimSuffix(name, ".html")
	if name == "" {
		name = "index"
	}
	// path.Clean on the rooted URL path already collapsed any "..";
	// reject anything that still looks like an escape attempt.
	if strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}

	src, err := os.ReadFile(filepath.Join(s.cfg.GetString("site.dir"), filepath.FromSlash(name)+".md"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	body, hit, err := cache.Render(r.Context(), s.store, src)
	if err != nil {
		log.Printf("serve: render %s.md failed: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if !hit {
		log.Printf("serve: rendered %s.md", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, pageShell, html.EscapeString(name), body)
}

const pageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s</body>
</html>
`
