package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"saas-dashboard/internal/adapters/backend_api_client"
	logger_adapter "saas-dashboard/internal/adapters/logger"
	"saas-dashboard/internal/adapters/rest"
	"saas-dashboard/internal/configs"
	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/contracts"
	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/port"
	"saas-dashboard/internal/core/usecase"
	fluentlogger "saas-dashboard/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 15 * time.Second

// Options - параметры запуска, которые приходят из командной строки
type Options struct {
	// EnvPath - путь к .env файлу, пусто - .env в рабочей директории
	EnvPath string
	// LogWriter - куда писать stdout-логи. CLI-команды уводят их в stderr.
	LogWriter io.Writer
}

type App struct {
	config    *configs.Config
	apiServer *rest.Server

	renderDashboardUC *usecase.RenderDashboardUseCase
	checkHealthUC     *usecase.CheckHealthUseCase

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
	baseLogger   port.LoggerPort
}

func NewApp(opts Options) (*App, error) {
	appConfig, err := configs.LoadConfig(opts.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer: opts.LogWriter,
		Level:  parseLogLevel(appConfig.StdoutLogger.Level),
		Format: appConfig.StdoutLogger.Format,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // имя приложения как префикс тегов
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. КЛИЕНТ BACKEND ---
	registry, err := contracts.DefaultRegistry()
	if err != nil {
		appLogger.Error("Failed to compile response contracts", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to compile response contracts: %w", err)
	}

	// Таймаут живет на транспорте, сам клиент и ядро его не знают
	httpClient := &http.Client{Timeout: appConfig.Backend.Timeout}

	backendClient := backend_api_client.NewClient(backend_api_client.Config{
		BaseURL:    appConfig.Backend.URL,
		HTTPClient: httpClient,
		Validator:  registry,
		Contracts: backend_api_client.Contracts{
			Companies:  contracts.CompaniesPage,
			Industries: contracts.Industries,
			Locations:  contracts.Locations,
			Health:     contracts.Health,
		},
	})
	appLogger.Info("Backend API client initialized", port.Fields{
		"backend_url": appConfig.Backend.URL,
		"timeout":     appConfig.Backend.Timeout.String(),
	})

	// --- 4. USE CASES ---
	renderDashboardUC := usecase.NewRenderDashboardUseCase(backendClient)
	checkHealthUC := usecase.NewCheckHealthUseCase(backendClient)

	// --- 5. HTTP ---
	apiHandlers, err := rest.NewDashboardHandlers(renderDashboardUC, checkHealthUC)
	if err != nil {
		appLogger.Error("Failed to create dashboard handlers", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to create dashboard handlers: %w", err)
	}
	router := rest.NewRouter(apiHandlers, appConfig.HTTP.AllowedOrigins, baseLogger)
	apiServer := rest.NewServer(appConfig.Port, router, baseLogger)
	appLogger.Info("HTTP server configured.", nil)

	return &App{
		config:    appConfig,
		apiServer: apiServer,

		renderDashboardUC: renderDashboardUC,
		checkHealthUC:     checkHealthUC,

		fluentClient: fluentClient,
		logger:       appLogger,
		baseLogger:   baseLogger,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала ОС или ошибки сервера.
func (a *App) Run() error {
	defer a.Close()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Port})
		if err := a.apiServer.Start(); err != nil {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("Error during HTTP server shutdown", err, nil)
	}

	return runErr
}

// RenderDashboard - один проход рендера вне HTTP (CLI)
func (a *App) RenderDashboard(ctx context.Context, rawQuery string) (*domain.DashboardView, error) {
	return a.renderDashboardUC.Execute(a.withLogger(ctx, "cli"), rawQuery)
}

// CheckHealth - проверка backend вне HTTP (CLI)
func (a *App) CheckHealth(ctx context.Context) (*domain.HealthStatus, error) {
	return a.checkHealthUC.Execute(a.withLogger(ctx, "cli"))
}

func (a *App) withLogger(ctx context.Context, component string) context.Context {
	return contextkeys.ContextWithLogger(ctx, a.baseLogger.WithFields(port.Fields{"component": component}))
}

// Close освобождает ресурсы. Fluent закрывается последним.
func (a *App) Close() {
	a.logger.Info("Application shut down gracefully.", nil)
	closeFluent(a.fluentClient)
	a.fluentClient = nil
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent уже может быть недоступен, пишем напрямую
		fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
