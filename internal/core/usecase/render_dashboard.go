package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/core/domain"
	"saas-dashboard/internal/core/port"
	"saas-dashboard/internal/core/querystate"

	"golang.org/x/sync/errgroup"
)

// RenderDashboardUseCase собирает один проход рендера из одной навигации:
// decode URL -> три параллельные выборки -> DashboardView.
type RenderDashboardUseCase struct {
	backend port.BackendAPIPort
}

func NewRenderDashboardUseCase(backend port.BackendAPIPort) *RenderDashboardUseCase {
	return &RenderDashboardUseCase{backend: backend}
}

// Execute возвращает либо полный набор данных, либо одну сводную ошибку.
// Частичного дашборда не бывает. Ретраев нет.
func (uc *RenderDashboardUseCase) Execute(ctx context.Context, rawQuery string) (*domain.DashboardView, error) {
	state := querystate.Decode(rawQuery)

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RenderDashboard",
		"state":    querystate.EncodeState(state),
	})
	ucLogger.Info("Use case started", nil)
	startTime := time.Now()

	var (
		companies  *domain.PaginatedResult[domain.Company]
		industries []domain.Industry
		locations  []domain.Location

		// у каждой выборки свой слот, общих изменяемых данных нет
		errs [3]error
	)

	var g errgroup.Group

	g.Go(func() error {
		companies, errs[0] = uc.backend.FetchCompanies(ctx, domain.CompanyQueryFromState(state))
		return errs[0]
	})
	g.Go(func() error {
		industries, errs[1] = uc.backend.FetchIndustries(ctx)
		return errs[1]
	})
	g.Go(func() error {
		locations, errs[2] = uc.backend.FetchLocations(ctx)
		return errs[2]
	})

	// Wait дожидается всех трех, даже если одна уже упала
	if err := g.Wait(); err != nil {
		passErr := fmt.Errorf("dashboard render pass failed: %w", errors.Join(errs[:]...))
		ucLogger.Error("Render pass failed", passErr, port.Fields{
			"duration_ms": time.Since(startTime).Milliseconds(),
		})
		return nil, passErr
	}

	view := &domain.DashboardView{
		State:      state,
		Companies:  *companies,
		Industries: industries,
		Locations:  locations,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   view.Companies.Total,
		"items_on_page": len(view.Companies.Items),
		"industries":    len(industries),
		"locations":     len(locations),
		"duration_ms":   time.Since(startTime).Milliseconds(),
	})

	return view, nil
}
