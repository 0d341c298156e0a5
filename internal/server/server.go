package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/sngm3741/park-finder/api/internal/config"
	"github.com/sngm3741/park-finder/api/internal/interfaces/http/common"
	parkshttp "github.com/sngm3741/park-finder/api/internal/interfaces/http/parks"
	"github.com/sngm3741/park-finder/api/internal/logger"
	"github.com/sngm3741/park-finder/api/internal/metrics"
	"github.com/sngm3741/park-finder/api/internal/parks/application"
)

// Server owns the HTTP lifecycle and is the composition root that hands the
// application services to the handlers.
type Server struct {
	logger          zerolog.Logger
	store           Store
	metrics         *metrics.Provider
	router          chi.Router
	addr            string
	shutdownTimeout time.Duration
}

// New builds the router, services and middleware chain on top of store.
func New(cfg config.Config, log zerolog.Logger, store Store, build metrics.BuildInfo) *Server {
	srv := &Server{
		logger:          log,
		store:           store,
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(logger.AccessLog(log))
	if cfg.MetricsEnabled {
		srv.metrics = metrics.Init(metrics.Config{Enabled: true, Path: cfg.MetricsPath, Build: build})
		router.Use(srv.metrics.Middleware)
	}
	router.Use(middleware.Recoverer)
	router.Use(withCORS(cfg.Origins()))

	router.Get("/healthz", srv.healthHandler())
	if srv.metrics != nil {
		router.Method(http.MethodGet, cfg.MetricsPath, srv.metrics.Handler())
	}

	parksHandler := parkshttp.NewHandler(parkshttp.Config{
		Logger:         log,
		ParkQueries:    application.NewParkQueryService(store.Parks),
		ParkCommands:   application.NewParkCommandService(store.Parks, store.Reviews),
		ReviewQueries:  application.NewReviewQueryService(store.Parks, store.Reviews),
		ReviewCommands: application.NewReviewCommandService(store.Parks, store.Reviews),
		RequestTimeout: cfg.RequestTimeout,
	})
	parksHandler.Register(router)

	srv.router = router
	return srv
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until SIGINT/SIGTERM or a listener failure, then shuts down.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("http server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

// withCORS adds CORS headers for allowed origins and answers preflight requests.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	_, ok := allowed[origin]
	return ok
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time,omitempty"`
	Error  string `json:"error,omitempty"`
}

// healthHandler reports store reachability only, not domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if s.store.Ping != nil {
			if err := s.store.Ping(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("health check failed")
				common.WriteJSON(s.logger, w, http.StatusServiceUnavailable, healthResponse{
					Status: "degraded",
					Error:  err.Error(),
				})
				return
			}
		}

		common.WriteJSON(s.logger, w, http.StatusOK, healthResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// shutdown releases the store connection with a bounded wait.
func (s *Server) shutdown(ctx context.Context) {
	if s.store.Close == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.store.Close(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("close store")
	}
}

func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("shutting down")
		timeout := s.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("http shutdown")
		}
	}

	s.shutdown(context.Background())
	return runErr
}
