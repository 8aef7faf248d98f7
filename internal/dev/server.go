package dev

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sitewinder-dev/sitewinder/internal/config"
	"github.com/sitewinder-dev/sitewinder/internal/errors"
	"github.com/sitewinder-dev/sitewinder/pkg/persist"
)

// Server is the development server. It serves the project's static
// directory with the reload client injected into HTML, exposes the
// reload websocket, and optionally metrics and state snapshots.
type Server struct {
	cfg     *config.Config
	reload  *ReloadServer
	watcher *Watcher
	store   *persist.Store
	httpSrv *http.Server
	logf    func(format string, args ...any)
}

// NewServer creates a dev server for the given project config.
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		reload: NewReloadServer(),
		logf:   log.Printf,
	}

	if cfg.Dev.StateFile != "" {
		path := cfg.Dev.StateFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir(), path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.New("E301").Wrap(err)
		}
		store, err := persist.OpenStore(path)
		if err != nil {
			return nil, errors.New("E301").Wrap(err)
		}
		s.store = store
	}

	s.watcher = NewWatcher(WatcherConfig{
		Paths: CollectWatchPaths(cfg),
	})
	s.watcher.OnChange(s.onFileChange)

	return s, nil
}

// Handler builds the dev server's HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(traceRequests)

	if s.cfg.Dev.HotReload {
		r.Get("/_sitewinder/reload", s.reload.HandleWebSocket)
	}
	if s.cfg.Dev.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.store != nil {
		r.Get("/_sitewinder/state/{name}", s.handleStateGet)
		r.Put("/_sitewinder/state/{name}", s.handleStatePut)
		r.Delete("/_sitewinder/state/{name}", s.handleStateDelete)
	}
	r.Get("/*", s.serveStatic)

	return r
}

// Start runs the HTTP server and the file watcher until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:    s.cfg.DevAddress(),
		Handler: s.Handler(),
	}

	if s.cfg.Dev.HotReload {
		go s.watcher.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()

	s.logf("sitewinder dev server listening on %s", s.cfg.DevURL())

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E301").Wrap(err)
		}
		return nil
	}
}

// Shutdown stops the watcher, closes reload connections and the state
// store, and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.watcher.Stop()
	s.reload.Close()
	if s.store != nil {
		s.store.Close()
	}
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// Reload exposes the reload channel, mainly so the build pipeline can
// push error overlays.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// onFileChange maps watcher events to reload notifications.
func (s *Server) onFileChange(c Change) {
	switch c.Type {
	case ChangeCSS:
		s.logf("css changed: %s", c.Path)
		s.reload.NotifyCSS(filepath.Base(c.Path))
	default:
		s.logf("changed: %s", c.Path)
		s.reload.NotifyReload()
	}
}

// serveStatic serves files from the project's static directory. HTML
// responses get the reload client script injected; directory requests
// fall back to index.html.
func (s *Server) serveStatic(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, s.cfg.Static.Prefix)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "index.html"
	}

	path := filepath.Join(s.cfg.StaticPath(), filepath.FromSlash(name))
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil {
		http.NotFound(w, req)
		return
	}

	if s.cfg.Dev.HotReload && strings.HasSuffix(path, ".html") {
		data, err := os.ReadFile(path)
		if err != nil {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(injectReloadScript(data))
		return
	}

	http.ServeFile(w, req, path)
}

// injectReloadScript places the reload client before </body>, or
// appends it when the page has no body close tag.
func injectReloadScript(html []byte) []byte {
	const closeTag = "</body>"
	idx := strings.LastIndex(strings.ToLower(string(html)), closeTag)
	if idx < 0 {
		return append(html, []byte(ReloadClientScript)...)
	}
	var out []byte
	out = append(out, html[:idx]...)
	out = append(out, []byte(ReloadClientScript)...)
	out = append(out, html[idx:]...)
	return out
}

// traceRequests emits one span per dev-server request.
func traceRequests(next http.Handler) http.Handler {
	tracer := otel.Tracer("sitewinder.dev")
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, span := tracer.Start(req.Context(), "dev."+req.Method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.target", req.URL.Path),
			),
		)
		defer span.End()
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
