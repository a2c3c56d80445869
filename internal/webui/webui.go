package webui

import (
	"embed"
	"fmt"
	"html/template"

	"penguins.dashboard/internal/app"
	"penguins.dashboard/internal/summary"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebUI serves the HTML dashboard, the plot image and the debug pages.
type WebUI struct {
	*app.Application
	templates *template.Template
}

func NewWebUI(application *app.Application) (*WebUI, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"noData": func(s string) bool { return s == summary.NoData },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse web UI templates: %w", err)
	}
	return &WebUI{Application: application, templates: tmpl}, nil
}
