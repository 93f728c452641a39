package usecase

import (
	"context"

	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/port"
)

type CheckHealthUseCase struct {
	backend port.BackendAPIPort
}

func NewCheckHealthUseCase(backend port.BackendAPIPort) *CheckHealthUseCase {
	return &CheckHealthUseCase{backend: backend}
}

func (uc *CheckHealthUseCase) Execute(ctx context.Context) (*domain.HealthStatus, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CheckHealth",
	})

	health, err := uc.backend.FetchHealth(ctx)
	if err != nil {
		ucLogger.Error("Backend health check failed", err, nil)
		return nil, err
	}

	if !health.IsHealthy() {
		ucLogger.Warn("Backend reports unhealthy status", port.Fields{"status": health.Status})
	} else {
		ucLogger.Debug("Backend is healthy", port.Fields{"version": health.Version, "environment": health.Environment})
	}

	return health, nil
}
