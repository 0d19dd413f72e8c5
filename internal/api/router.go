package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/wfca-mz/fire-widget/internal/api/handlers/http/public"
	"github.com/wfca-mz/fire-widget/internal/api/handlers/http/system"
	"github.com/wfca-mz/fire-widget/internal/config"
	"github.com/wfca-mz/fire-widget/internal/metrics"
	"github.com/wfca-mz/fire-widget/internal/middleware"
	"github.com/wfca-mz/fire-widget/internal/service"
	"github.com/wfca-mz/fire-widget/internal/widget"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, m *metrics.Provider) *Server {
	publicHandler := public.NewHandler(logger, svc.FireService, cfg.FireMapURL, cfg.Cache.TTL)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, systemHandler, m, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, systemHandler *system.Handler, m *metrics.Provider, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins()))

	// Non-GET on any route short-circuits before cache or query work.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.With(
			middleware.Limit(10, 20, 5*time.Minute, logger),
			m.InstrumentRequests,
		).Get("/active-fires", publicHandler.ActiveFires)

		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Get("/widgets/fire-widget.js", widget.ServeScript)

	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
