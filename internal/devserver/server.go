// Package devserver serves the page for local development and reloads open
// tabs when watched files change.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ingyamilmolinar/reverbfx/internal/config"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
	"github.com/ingyamilmolinar/reverbfx/web"
)

type Server struct {
	cfg    config.Dev
	log    *log.Logger
	files  fs.FS
	hub    *hub
	router chi.Router
}

// New serves cfg.Root from disk, or the embedded page when Root is empty.
func New(cfg config.Dev, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Discard()
	}
	var files fs.FS = web.Files
	if cfg.Root != "" {
		st, err := os.Stat(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("site root: %w", err)
		}
		if !st.IsDir() {
			return nil, fmt.Errorf("site root %s is not a directory", cfg.Root)
		}
		files = os.DirFS(cfg.Root)
	}
	s := &Server{
		cfg:   cfg,
		log:   logger.With("dev"),
		files: files,
	}
	s.hub = newHub(cfg.AllowAllOrigins, s.log)
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogging)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get(reloadScriptPath, serveReloadScript)
	r.Get(reloadSocketPath, s.hub.serveWS)
	r.Get("/*", s.serveStatic)

	return r
}

func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debugf("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}

// Handler is the full router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Reload tells every connected tab that path changed.
func (s *Server) Reload(path string) { s.hub.broadcast(message{Type: "reload", Path: path}) }

// Clients is the number of connected tabs.
func (s *Server) Clients() int { return s.hub.len() }

// Run serves until ctx is cancelled, watching cfg.Root when it is set.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if s.cfg.Root != "" {
		w, err := newWatcher(s.cfg.Root, s.cfg.Watch, s.log)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.run(ctx, s.Reload)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("serving on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.hub.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Infof("stopped")
	return nil
}
