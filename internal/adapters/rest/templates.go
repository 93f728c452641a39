package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	dashboardTemplate = "dashboard.html"
	errorTemplate     = "error.html"
)

// parseTemplates разбирает шаблоны один раз при создании обработчиков
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"dashboardURL": dashboardURL}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// renderHTML сначала пишет в буфер: ошибка шаблона не должна оставить
// клиенту половину страницы со статусом 200
func renderHTML(w http.ResponseWriter, tmpl *template.Template, name string, status int, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
