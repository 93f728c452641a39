package rest

import (
	"html/template"
	"net/http"
	"strconv"

	"saas-dashboard/internal/contextkeys"
	"saas-dashboard/internal/core/port"
	"saas-dashboard/internal/core/port/usecases_port"
	"saas-dashboard/internal/core/querystate"
)

type DashboardHandlers struct {
	renderDashboardUC usecases_port.RenderDashboardUseCase
	checkHealthUC     usecases_port.CheckHealthUseCase
	templates         *template.Template
}

// NewDashboardHandlers - конструктор для обработчиков дашборда.
func NewDashboardHandlers(renderDashboardUC usecases_port.RenderDashboardUseCase,
	checkHealthUC usecases_port.CheckHealthUseCase) (*DashboardHandlers, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &DashboardHandlers{
		renderDashboardUC: renderDashboardUC,
		checkHealthUC:     checkHealthUC,
		templates:         tmpl,
	}, nil
}

// HandleDashboardPage - обработчик для GET /
func (h *DashboardHandlers) HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDashboardPage"})

	rawQuery := r.URL.RawQuery
	view, err := h.renderDashboardUC.Execute(r.Context(), rawQuery)
	if err != nil {
		logger.Error("Render pass failed", err, nil)

		// Повтор - та же навигация, то есть тот же URL
		errPage := ErrorPageDTO{
			Message:  err.Error(),
			RetryURL: dashboardURL(rawQuery),
		}
		if rErr := renderHTML(w, h.templates, errorTemplate, http.StatusBadGateway, errPage); rErr != nil {
			logger.Error("Failed to render error page", rErr, nil)
		}
		return
	}

	if err := renderHTML(w, h.templates, dashboardTemplate, http.StatusOK, newDashboardPage(view, rawQuery)); err != nil {
		logger.Error("Failed to render dashboard page", err, nil)
	}
}

// HandleFilterEvent - обработчик для GET /filter?key=&value=&q=
// Смена фильтра сбрасывает страницу, это делает querystate.Encode.
func (h *DashboardHandlers) HandleFilterEvent(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	key := params.Get("key")

	if !querystate.IsFilterKey(key) {
		http.Error(w, "Parameter 'key' must be industry_id or location_id", http.StatusBadRequest)
		return
	}

	redirectToQuery(w, r, querystate.Encode(params.Get("q"), key, params.Get("value")))
}

// HandlePageEvent - обработчик для GET /page?n=&q=
func (h *DashboardHandlers) HandlePageEvent(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, err := strconv.Atoi(params.Get("n"))
	if err != nil {
		page = 1
	}

	redirectToQuery(w, r, querystate.EncodePage(params.Get("q"), page))
}

// HandleClearEvent - обработчик для GET /clear
func (h *DashboardHandlers) HandleClearEvent(w http.ResponseWriter, r *http.Request) {
	redirectToQuery(w, r, querystate.Clear())
}

// HandleDashboardAPI - обработчик для GET /api/dashboard
func (h *DashboardHandlers) HandleDashboardAPI(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDashboardAPI"})

	view, err := h.renderDashboardUC.Execute(r.Context(), r.URL.RawQuery)
	if err != nil {
		logger.Error("Render pass failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, newDashboardPage(view, r.URL.RawQuery))
}

// HandleHealthAPI - обработчик для GET /api/health
func (h *DashboardHandlers) HandleHealthAPI(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleHealthAPI"})

	health, err := h.checkHealthUC.Execute(r.Context())
	if err != nil {
		logger.Error("Health check failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	status := http.StatusOK
	if !health.IsHealthy() {
		status = http.StatusServiceUnavailable
	}

	RespondWithJSON(w, status, HealthResponseDTO{
		Status:      health.Status,
		Version:     health.Version,
		Environment: health.Environment,
		Timestamp:   health.Timestamp,
	})
}
