package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ziadkadry99/responsive-toolbar/internal/frontend"
	"github.com/ziadkadry99/responsive-toolbar/internal/page"
	"github.com/ziadkadry99/responsive-toolbar/internal/session"
)

// Config holds server configuration.
type Config struct {
	Port           int
	FrontendDir    string        // directory served under /frontend/; empty disables it
	AllowAll       bool          // allow all CORS origins (dev mode)
	RequestTimeout time.Duration // per-request timeout; zero uses 60s
}

// Server hosts the page router: every registered route renders its view,
// and clicks come back over the event socket.
type Server struct {
	cfg        Config
	pages      *page.Router
	views      *session.Registry
	base       *page.Settings
	metrics    *metrics
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given page router. base holds the page
// settings every view starts from (title, stylesheets).
func New(cfg Config, pages *page.Router, views *session.Registry, base *page.Settings) *Server {
	if base == nil {
		base = page.NewSettings()
	}
	if views == nil {
		views = session.NewRegistry(0)
	}
	s := &Server{
		cfg:     cfg,
		pages:   pages,
		views:   views,
		base:    base,
		metrics: newMetrics(),
	}
	s.metrics.watchViews(views.Len)

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	timeout := s.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	// The event socket is long-lived, so it sits outside the request timeout.
	r.Get(page.DefaultEventsPath, s.handleEvents)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		if s.cfg.FrontendDir != "" {
			fs := http.StripPrefix(frontend.URLPrefix, http.FileServer(http.Dir(s.cfg.FrontendDir)))
			r.Handle(frontend.URLPrefix+"*", fs)
		}

		for _, path := range s.pages.Routes() {
			r.Get(path, s.handlePage(path))
		}
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Views returns the live view registry.
func (s *Server) Views() *session.Registry { return s.views }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("toolbar server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// FrontendAvailable reports whether dir exists and is a directory.
func FrontendAvailable(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
