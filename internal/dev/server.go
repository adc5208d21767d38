package dev

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/hashnav/internal/config"
	"github.com/vango-dev/hashnav/internal/errors"
)

// reloadScript is injected into served HTML when hot reload is on.
const reloadScript = `<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "/_hashnav/reload");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload") location.reload();
    if (msg.type === "css") {
      document.querySelectorAll("link[rel=stylesheet]").forEach(function (l) {
        l.href = l.href.split("?")[0] + "?t=" + Date.now();
      });
    }
  };
  ws.onclose = function () { setTimeout(function () { location.reload(); }, 1000); };
})();
</script>`

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server: it serves a built wasm app
// directory and reloads connected browsers when files change.
type Server struct {
	config  *config.Config
	options ServerOptions
	logger  *slog.Logger

	reload  *ReloadServer
	watcher *Watcher
	metrics *metrics

	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config

	s := &Server{
		config:  cfg,
		options: options,
		logger:  slog.Default().With("component", "dev"),
	}

	if cfg.HotReload() {
		s.reload = NewReloadServer()
		s.watcher = NewWatcher(WatcherConfig{
			Dir:    cfg.AppDir(),
			Ignore: append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...),
		})
	}
	if cfg.Dev.Metrics {
		s.metrics = initMetrics(defaultMetricsConfig())
	}

	return s
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Dev.Host, s.config.Dev.Port)
}

// Start runs the server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	appDir := s.config.AppDir()
	if info, err := os.Stat(appDir); err != nil || !info.IsDir() {
		return errors.New("H101").WithDetail("looked in %s", appDir)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.routes(appDir),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Unlock()

	if s.watcher != nil {
		s.watcher.OnChange(s.onFileChange)
		go func() {
			_ = s.watcher.Start(ctx)
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("dev server listening", "addr", s.Addr(), "dir", appDir)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.New("H102").Wrap(err)
	}
	return nil
}

// routes builds the chi mux for the app directory.
func (s *Server) routes(appDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(Tracing(""))
	if s.metrics != nil {
		r.Use(s.metrics.middleware)
		r.Handle("/metrics", promhttp.Handler())
	}

	if s.reload != nil {
		r.Get("/_hashnav/reload", s.handleReloadSocket)
	}

	r.Get("/*", s.serveApp(appDir))
	return r
}

func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	s.reload.HandleWebSocket(w, r)
	if s.metrics != nil {
		s.metrics.reloadClients.Set(float64(s.reload.ClientCount()))
	}
}

// serveApp serves static files with an index.html fallback. The app
// routes with the URL fragment, so every page load hits "/" and the
// fallback only matters for direct asset misses.
func (s *Server) serveApp(appDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" {
			name = "index.html"
		}

		path := filepath.Join(appDir, filepath.FromSlash(name))
		if !strings.HasPrefix(path, filepath.Clean(appDir)) {
			http.NotFound(w, r)
			return
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			path = filepath.Join(appDir, "index.html")
		}

		if strings.HasSuffix(path, ".html") && s.reload != nil {
			s.serveHTMLWithReload(w, r, path)
			return
		}
		if strings.HasSuffix(path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		http.ServeFile(w, r, path)
	}
}

// serveHTMLWithReload serves an HTML file with the reload client
// injected before </body>.
func (s *Server) serveHTMLWithReload(w http.ResponseWriter, r *http.Request, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if idx := bytes.LastIndex(data, []byte("</body>")); idx >= 0 {
		injected := make([]byte, 0, len(data)+len(reloadScript))
		injected = append(injected, data[:idx]...)
		injected = append(injected, []byte(reloadScript)...)
		injected = append(injected, data[idx:]...)
		data = injected
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

// onFileChange reacts to a watched file change.
func (s *Server) onFileChange(change Change) {
	s.logger.Info("file changed", "path", change.Path)

	if s.metrics != nil {
		s.metrics.watchedFileEvent.WithLabelValues(changeLabel(change.Type)).Inc()
		s.metrics.reloadsTotal.Inc()
	}

	if change.Type == ChangeCSS {
		s.reload.NotifyCSS(filepath.Base(change.Path))
	} else {
		s.reload.NotifyReload()
	}

	if s.options.OnReload != nil {
		s.options.OnReload(s.reload.ClientCount())
	}
}

func changeLabel(t ChangeType) string {
	switch t {
	case ChangeCSS:
		return "css"
	case ChangeWasm:
		return "wasm"
	default:
		return "asset"
	}
}
