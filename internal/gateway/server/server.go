package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jub0bs/cors"

	"github.com/prf-platform/prfweb/internal/gateway/config"
	gwmiddleware "github.com/prf-platform/prfweb/internal/gateway/middleware"
	"github.com/prf-platform/prfweb/internal/gateway/proxy"
	"github.com/prf-platform/prfweb/internal/gateway/responses"
	"github.com/prf-platform/prfweb/internal/logger"
	"github.com/prf-platform/prfweb/internal/version"
)

type Server struct {
	router  *chi.Mux
	config  *config.Config
	logger  *slog.Logger
	corsMw  *cors.Middleware
	backend *url.URL
}

// NewServer creates the gateway: /api/* is proxied to the PRF backend, every
// other path serves the SPA build.
func NewServer(cfg *config.Config, log *slog.Logger, corsMw *cors.Middleware) (*Server, error) {
	backend, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  log,
		corsMw:  corsMw,
		backend: backend,
	}

	s.setupMiddleware()
	s.registerRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(60 * time.Second))
	s.router.Use(gwmiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(gwmiddleware.CORS(s.corsMw))
	s.router.Use(gwmiddleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(gwmiddleware.RequestSizeLimit(s.config.MaxRequestSize))
}

func (s *Server) registerRoutes() {
	apiProxy := proxy.New(s.backend)

	s.router.Get("/health/live", s.handleLive)
	s.router.Get("/health/ready", s.handleReady)

	s.router.Handle("/api/*", apiProxy)

	// everything else is the SPA build, with index.html fallback so
	// client-side routes survive a page reload
	s.router.NotFound(spaHandler(s.config.StaticDir))
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Get().Version,
	})
}

// handleReady probes the backend origin so load balancers only route traffic
// when the API is reachable
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), config.ReadinessTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.backend.String(), nil)
	if err != nil {
		responses.RespondWithError(w, r, http.StatusInternalServerError, "failed to build readiness probe")
		return
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		responses.RespondWithError(w, r, http.StatusServiceUnavailable, "backend unreachable")
		return
	}
	res.Body.Close()

	responses.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// spaHandler serves files from dir and falls back to index.html for paths
// that don't exist on disk (client-side routes)
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			// never fall back for asset paths - a missing bundle should 404
			if strings.HasPrefix(r.URL.Path, "/assets/") {
				http.NotFound(w, r)
				return
			}
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}

// Start runs the gateway until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("gateway listening",
			slog.String("address", addr),
			slog.String("backend", s.backend.String()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down gateway...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}

// Router exposes the underlying mux for tests
func (s *Server) Router() http.Handler {
	return s.router
}
