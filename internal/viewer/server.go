package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
	"github.com/cgraph2dot/cgraph2dot/internal/dot"
	"github.com/cgraph2dot/cgraph2dot/internal/viewer/notifier"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// ReloadPath is the server-sent events endpoint pages listen on.
const ReloadPath = "/__reload"

const debounceDelay = 100 * time.Millisecond

// Config holds configuration for the viewer server.
type Config struct {
	// DotFile is the call graph to serve.
	DotFile string
	Title   string
	Port    int
	// Watch re-reads DotFile when it changes and reloads open pages.
	Watch  bool
	Logger *slog.Logger
}

// Server serves a call graph page over HTTP.
type Server struct {
	dotFile  string
	title    string
	port     int
	watch    bool
	logger   *slog.Logger
	notifier *notifier.Notifier

	mu    sync.RWMutex
	graph *callgraph.Graph
}

// NewServer creates a server and loads the initial graph.
func NewServer(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		dotFile:  cfg.DotFile,
		title:    cfg.Title,
		port:     cfg.Port,
		watch:    cfg.Watch,
		logger:   logger,
		notifier: notifier.New(),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the DOT file and notifies connected pages.
// On a parse error the previous graph is kept.
func (s *Server) Reload() error {
	g, err := dot.ParseFile(s.dotFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	gen := s.notifier.Broadcast()
	s.logger.Debug("graph loaded", "file", s.dotFile, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "generation", gen)
	return nil
}

// Graph returns the graph currently being served.
func (s *Server) Graph() *callgraph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/", s.handlePage)
	r.Get("/graph.json", s.handleGraphJSON)
	r.Get("/graph.dot", s.handleGraphDOT)
	r.Get(ReloadPath, s.handleReload)

	return r
}

// Serve starts the server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("serving call graph", "addr", fmt.Sprintf("http://localhost:%d", s.port), "file", s.dotFile)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchFile(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down viewer server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	opts := Options{Title: s.title, LiveReload: s.watch, ReloadPath: ReloadPath}
	if err := Render(w, s.Graph(), opts); err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleGraphJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BuildGraphData(s.Graph())); err != nil {
		s.logger.Error("encode failed", "error", err)
	}
}

func (s *Server) handleGraphDOT(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	if err := dot.Write(w, s.Graph(), ""); err != nil {
		s.logger.Error("write failed", "error", err)
	}
}

// handleReload streams a server-sent event each time the graph is reloaded.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Subscribe before the headers go out so a client never misses a
	// reload that happens right after it connects.
	ch := s.notifier.Subscribe()
	defer s.notifier.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case gen, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %d\n\n", gen); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// watchFile reloads the graph when the DOT file is written or replaced.
// The parent directory is watched so editors that rename-on-save work.
func (s *Server) watchFile(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target, err := filepath.Abs(s.dotFile)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", s.dotFile, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	// The debounce timer fires on this goroutine's select, so reloads
	// stop as soon as ctx is cancelled.
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != target {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			s.logger.Debug("dot file changed, reloading", "file", s.dotFile)
			if err := s.Reload(); err != nil {
				s.logger.Error("reload failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}
