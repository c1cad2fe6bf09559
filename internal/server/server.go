// Package server serves a built site locally and rebuilds it when sources change.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BuildFunc produces the site in the served directory.
type BuildFunc func(ctx context.Context) error

// Config holds configuration for the preview server.
type Config struct {
	Port int
	// Root is the directory served over HTTP.
	Root string
	// WatchDirs are rebuilt on change; missing directories are skipped.
	WatchDirs []string
	Build     BuildFunc
	Logger    *zap.Logger
	Debounce  time.Duration
}

// Server is the local preview server.
type Server struct {
	cfg     Config
	logger  *zap.Logger
	buildMu sync.Mutex
}

// New creates a preview server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	return &Server{cfg: cfg, logger: cfg.Logger}
}

// Handler serves Root without directory listings and with caching disabled.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.Recoverer,
		noCache,
	)

	files := http.FileServer(http.Dir(s.cfg.Root))
	r.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/") && req.URL.Path != "/" {
			index := filepath.Join(s.cfg.Root, filepath.FromSlash(req.URL.Path), "index.html")
			if _, err := os.Stat(index); err != nil {
				http.NotFound(w, req)
				return
			}
		}
		files.ServeHTTP(w, req)
	}))
	return r
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// Rebuild runs the build function, serialized with any other rebuild.
func (s *Server) Rebuild(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.cfg.Build(ctx)
}

// Serve performs an initial build, then serves and watches until ctx is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Rebuild(ctx); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		return s.watch(egctx)
	})

	eg.Go(func() error {
		s.logger.Info("Serving site",
			zap.String("root", s.cfg.Root),
			zap.String("addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("Shutting down preview server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
