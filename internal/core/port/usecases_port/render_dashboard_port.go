package usecases_port

import (
	"context"
	"saas-dashboard/internal/core/domain"
)

type RenderDashboardUseCase interface {
	Execute(ctx context.Context, rawQuery string) (*domain.DashboardView, error)
}
