package site

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docsview/internal/docindex"
	"github.com/ziadkadry99/docsview/internal/markdown"
	"github.com/ziadkadry99/docsview/internal/search"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool // allow all CORS origins (dev mode)
	Style       string
	TokenPrefix string
}

// Server serves rendered documents, index search and live previews.
type Server struct {
	cfg        Config
	index      *docindex.Index
	renderer   markdown.DocumentRenderer
	logger     *slog.Logger
	css        string
	page       *template.Template
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over idx. Pages are rendered from each document's
// content.
func New(cfg Config, idx *docindex.Index, renderer markdown.DocumentRenderer, logger *slog.Logger) (*Server, error) {
	css, err := markdown.StyleSheet(cfg.Style, cfg.TokenPrefix)
	if err != nil {
		return nil, err
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		index:    idx,
		renderer: renderer,
		logger:   logger,
		css:      css + copyCSS,
		page:     page,
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	r.Get("/ws/preview", s.handlePreview)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/api/search", s.handleSearch)
		r.Get("/assets/highlight.css", s.serveAsset("text/css; charset=utf-8", s.css))
		r.Get("/assets/copy.js", s.serveAsset("application/javascript; charset=utf-8", copyJS))
		r.Get("/*", s.handlePage)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("docsview server listening", "addr", addr, "documents", s.index.Len())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

type searchItem struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Folder     string   `json:"folder,omitempty"`
	Path       string   `json:"path"`
	Breadcrumb []string `json:"breadcrumb,omitempty"`
}

type searchResponse struct {
	Query   string       `json:"query"`
	Results []searchItem `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := search.Filter(s.index.Documents(), query)

	items := make([]searchItem, len(results))
	for i, d := range results {
		items[i] = searchItem{
			ID:         d.ID,
			Name:       d.Name,
			Folder:     d.Folder,
			Path:       d.Path,
			Breadcrumb: d.Breadcrumb(),
		}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: items})
}

type pageData struct {
	Title      string
	Breadcrumb []string
	Content    template.HTML
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")

	var (
		data   pageData
		source string
	)
	if strings.Trim(path, "/") == "" {
		data.Title = "Documentation"
		source = s.listing()
	} else {
		doc, ok := s.index.ByPath(path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data.Title = doc.Name
		data.Breadcrumb = doc.Breadcrumb()
		source = doc.Content
	}

	rendered, err := s.renderer.RenderDocument(source)
	if err != nil {
		s.logger.Error("rendering page", "path", path, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	data.Content = template.HTML(rendered.HTML)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("writing page", "path", path, "err", err)
	}
}

// listing builds a markdown list of every document for the root page.
func (s *Server) listing() string {
	var b strings.Builder
	b.WriteString("# Documentation\n\n")
	for _, d := range s.index.Documents() {
		fmt.Fprintf(&b, "- [%s](/%s)\n", escapeLinkText(d.Name), strings.TrimLeft(d.Path, "/"))
	}
	return b.String()
}

func escapeLinkText(s string) string {
	r := strings.NewReplacer(`[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

func (s *Server) serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// BrowserNavigator opens document paths under baseURL in the default
// browser.
func BrowserNavigator(baseURL string) search.Navigator {
	return search.NavigatorFunc(func(path string) {
		OpenBrowser(DocumentURL(baseURL, path))
	})
}

// DocumentURL joins a document path onto baseURL.
func DocumentURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
