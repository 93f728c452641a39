package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"saas-dashboard/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает все маршруты дашборда. Вынесен отдельно от NewServer,
// чтобы тесты могли гонять роутер через httptest без сокета.
func NewRouter(handlers *DashboardHandlers, allowedOrigins []string, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	// HTML-страница и события навигации
	r.Get("/", handlers.HandleDashboardPage)
	r.Get("/filter", handlers.HandleFilterEvent)
	r.Get("/page", handlers.HandlePageEvent)
	r.Get("/clear", handlers.HandleClearEvent)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID"},
			MaxAge:         300, // 5 минут
		}))

		r.Get("/dashboard", handlers.HandleDashboardAPI)
		r.Get("/health", handlers.HandleHealthAPI)
	})

	return r
}

func NewServer(port string, handler http.Handler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер и блокируется до Stop или ошибки
func (s *Server) Start() error {
	s.logger.Info("Starting dashboard HTTP server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping dashboard HTTP server...", nil)
	return s.httpServer.Shutdown(ctx)
}
