package rest

import (
	"encoding/json"
	"net/http"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponseDTO{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// redirectToQuery - навигация: новый URL дашборда с закодированным состоянием
func redirectToQuery(w http.ResponseWriter, r *http.Request, query string) {
	http.Redirect(w, r, dashboardURL(query), http.StatusSeeOther)
}

func dashboardURL(query string) string {
	if query == "" {
		return "/"
	}
	return "/?" + query
}
