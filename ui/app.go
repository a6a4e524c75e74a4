// Package ui serves the dashboard: one HTML page, a small JSON API the
// page's renderer consumes, and the signal endpoint that drives reactive
// re-evaluation.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"healthdash/domain/records"
	"healthdash/internal"
	"healthdash/internal/signals"
	"healthdash/internal/summary"
)

//go:embed templates/* static/* content/*
var embeddedFiles embed.FS

// App is the UI application: router, shared table, signal dispatcher and
// the startup summary
type App struct {
	router     *chi.Mux
	table      *records.Table
	dispatcher *signals.Dispatcher
	stats      summary.Stats
	templates  *template.Template
	logger     *internal.Logger
	debug      bool
}

// Config holds UI application configuration
type Config struct {
	Debug bool
}

// NewApp wires the dashboard over an already-loaded table and dispatcher
func NewApp(table *records.Table, dispatcher *signals.Dispatcher, config Config) (*App, error) {
	funcMap := template.FuncMap{
		"money": formatMoney,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:     chi.NewRouter(),
		table:      table,
		dispatcher: dispatcher,
		stats:      summary.Compute(table),
		templates:  templates,
		logger:     internal.DefaultLogger,
		debug:      config.Debug,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	if a.debug {
		a.router.Use(middleware.Logger)
	}
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/about", a.handleAbout)

	// JSON API consumed by the browser-side renderer
	a.router.Get("/api/dataset/info", a.handleDatasetInfo)
	a.router.Get("/api/views", a.handleViews)
	a.router.Get("/api/views/{name}", a.handleView)
	a.router.Post("/api/signals/{name}", a.handleSetSignal)
}

// Handler exposes the router for the HTTP server and for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("template %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
