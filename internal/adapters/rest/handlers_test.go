package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger_adapter "saas-dashboard/internal/adapters/logger"
	"saas-dashboard/internal/core/domain"
)

type fakeRenderUC struct {
	view     *domain.DashboardView
	err      error
	gotQuery string
}

func (f *fakeRenderUC) Execute(_ context.Context, rawQuery string) (*domain.DashboardView, error) {
	f.gotQuery = rawQuery
	return f.view, f.err
}

type fakeHealthUC struct {
	health *domain.HealthStatus
	err    error
}

func (f *fakeHealthUC) Execute(context.Context) (*domain.HealthStatus, error) {
	return f.health, f.err
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testView() *domain.DashboardView {
	return &domain.DashboardView{
		State: domain.FilterState{IndustryID: intPtr(3), Page: 2},
		Companies: domain.PaginatedResult[domain.Company]{
			Items: []domain.Company{{
				ID:           1,
				Name:         "Acme",
				Industry:     "Fintech",
				Location:     "Austin, USA",
				Products:     "Payments",
				FoundingYear: intPtr(2015),
				TotalFunding: floatPtr(1_500_000),
				Valuation:    floatPtr(2_000_000_000),
			}},
			Total:      1_234_567,
			Page:       2,
			Size:       20,
			TotalPages: 61729,
		},
		Industries: []domain.Industry{{ID: 1, Name: "HealthTech"}, {ID: 3, Name: "Fintech"}},
		Locations:  []domain.Location{{ID: 7, City: "Austin", Country: "USA"}},
	}
}

func newTestRouter(t *testing.T, render *fakeRenderUC, health *fakeHealthUC) http.Handler {
	t.Helper()
	handlers, err := NewDashboardHandlers(render, health)
	require.NoError(t, err)

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
	return NewRouter(handlers, []string{"http://localhost:3000"}, logger)
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestFilterEvent(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{}, &fakeHealthUC{})

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantLoc  string
	}{
		{
			name:     "filter change keeps other filters and drops page",
			target:   "/filter?key=location_id&value=7&q=industry_id%3D3%26page%3D2",
			wantCode: http.StatusSeeOther,
			wantLoc:  "/?industry_id=3&location_id=7",
		},
		{
			name:     "empty value removes filter",
			target:   "/filter?key=industry_id&value=&q=industry_id%3D3%26location_id%3D7%26page%3D4",
			wantCode: http.StatusSeeOther,
			wantLoc:  "/?location_id=7",
		},
		{
			name:     "unknown query keys survive",
			target:   "/filter?key=industry_id&value=5&q=utm%3Dmail",
			wantCode: http.StatusSeeOther,
			wantLoc:  "/?industry_id=5&utm=mail",
		},
		{
			name:     "removing last filter goes to root",
			target:   "/filter?key=industry_id&value=&q=industry_id%3D3",
			wantCode: http.StatusSeeOther,
			wantLoc:  "/",
		},
		{
			name:     "page is not a filter key",
			target:   "/filter?key=page&value=3&q=",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestPageEvent(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{}, &fakeHealthUC{})

	tests := []struct {
		target  string
		wantLoc string
	}{
		{"/page?n=3&q=industry_id%3D3", "/?industry_id=3&page=3"},
		{"/page?n=1&q=industry_id%3D3%26page%3D2", "/?industry_id=3"},
		{"/page?n=abc&q=page%3D5", "/"},
		{"/page?n=0", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(router, tt.target)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
		})
	}
}

func TestClearEvent(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{}, &fakeHealthUC{})

	rec := serve(router, "/clear")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestDashboardPage_Renders(t *testing.T) {
	render := &fakeRenderUC{view: testView()}
	router := newTestRouter(t, render, &fakeHealthUC{})

	rec := serve(router, "/?industry_id=3&page=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "industry_id=3&page=2", render.gotQuery)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "$1.5M")
	assert.Contains(t, body, "$2B")
	assert.Contains(t, body, "—", "missing ARR renders placeholder")
	assert.Contains(t, body, "bg-teal-600 text-teal-100")
	assert.Contains(t, body, `<option value="3" selected>Fintech</option>`)
	assert.Contains(t, body, "Austin, USA")
	assert.Contains(t, body, "Limpiar filtros")
	assert.Contains(t, body, "1.234.567")
	assert.Contains(t, body, "registros encontrados")
	assert.Contains(t, body, `href="/?industry_id=3&amp;page=3"`)
	assert.Contains(t, body, `href="/?industry_id=3"`, "previous page 1 drops page param")
}

func TestDashboardPage_EmptyResult(t *testing.T) {
	view := testView()
	view.State = domain.DefaultFilterState()
	view.Companies = domain.PaginatedResult[domain.Company]{Page: 1, Size: 20}
	router := newTestRouter(t, &fakeRenderUC{view: view}, &fakeHealthUC{})

	rec := serve(router, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "No se encontraron empresas")
	assert.NotContains(t, body, "registros encontrados", "no pagination when total_pages is 0")
	assert.NotContains(t, body, "Limpiar filtros")
}

func TestDashboardPage_ErrorBoundary(t *testing.T) {
	renderErr := fmt.Errorf("dashboard render pass failed: %w",
		fmt.Errorf("failed to fetch industries: %w", domain.NewHTTPError("http://backend/api/v1/industries", 500, nil)))
	router := newTestRouter(t, &fakeRenderUC{err: renderErr}, &fakeHealthUC{})

	rec := serve(router, "/?industry_id=3&page=2")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Algo salio mal")
	assert.Contains(t, body, "failed to fetch industries: HTTP error! status: 500")
	assert.Contains(t, body, "Reintentar")
	assert.Contains(t, body, `href="/?industry_id=3&amp;page=2"`, "retry repeats the same navigation")
}

func TestDashboardAPI(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{view: testView()}, &fakeHealthUC{})

	rec := serve(router, "/api/dashboard?industry_id=3&page=2&utm=mail")
	require.Equal(t, http.StatusOK, rec.Code)

	var page DashboardPageDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))

	assert.Equal(t, "industry_id=3&page=2&utm=mail", page.Query)
	require.NotNil(t, page.State.IndustryID)
	assert.Equal(t, 3, *page.State.IndustryID)
	assert.Nil(t, page.State.LocationID)
	assert.True(t, page.HasActiveFilters)

	require.Len(t, page.Companies, 1)
	assert.Equal(t, "$1.5M", page.Companies[0].TotalFunding)
	assert.Equal(t, "—", page.Companies[0].ARR)
	assert.Equal(t, "2015", page.Companies[0].FoundingYear)

	assert.True(t, page.Pagination.Visible)
	assert.True(t, page.Pagination.HasPrev)
	assert.True(t, page.Pagination.HasNext)
	assert.Equal(t, "industry_id=3&utm=mail", page.Pagination.PrevQuery)
	assert.Equal(t, "industry_id=3&page=3&utm=mail", page.Pagination.NextQuery)
}

func TestDashboardAPI_CORS(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{view: testView()}, &fakeHealthUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDashboardAPI_Error(t *testing.T) {
	router := newTestRouter(t, &fakeRenderUC{err: errors.New("dashboard render pass failed: boom")}, &fakeHealthUC{})

	rec := serve(router, "/api/dashboard")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body ErrorResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "dashboard render pass failed: boom", body.Error)
}

func TestHealthAPI(t *testing.T) {
	tests := []struct {
		name     string
		uc       *fakeHealthUC
		wantCode int
	}{
		{"healthy", &fakeHealthUC{health: &domain.HealthStatus{Status: domain.HealthStatusHealthy, Version: "1.0.0"}}, http.StatusOK},
		{"unhealthy", &fakeHealthUC{health: &domain.HealthStatus{Status: domain.HealthStatusUnhealthy}}, http.StatusServiceUnavailable},
		{"backend down", &fakeHealthUC{err: errors.New("failed to fetch health status: transport error")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &fakeRenderUC{}, tt.uc)
			rec := serve(router, "/api/health")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
