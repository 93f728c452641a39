package port

import (
	"context"
	"saas-dashboard/internal/core/domain"
)

// BackendAPIPort - чтение каталога компаний из backend.
// Все ошибки оборачивают *domain.RequestError.
type BackendAPIPort interface {
	FetchCompanies(ctx context.Context, query domain.CompanyQuery) (*domain.PaginatedResult[domain.Company], error)
	FetchIndustries(ctx context.Context) ([]domain.Industry, error)
	FetchLocations(ctx context.Context) ([]domain.Location, error)
	FetchHealth(ctx context.Context) (*domain.HealthStatus, error)
}
