package usecases_port

import (
	"context"
	"saas-dashboard/internal/core/domain"
)

type CheckHealthUseCase interface {
	Execute(ctx context.Context) (*domain.HealthStatus, error)
}
