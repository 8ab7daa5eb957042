// Package http exposes the application over two surfaces sharing one
// service layer: a JSON API under /api and server-rendered HTML pages.
package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/service"
)

type Handler struct {
	services  *service.Services
	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, templates *template.Template, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		templates: templates,
		logger:    logger,
	}
}

// writeJSON marshals v into the response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding JSON response")
	}
}

// renderPage executes the named template. Rendering failures surface as a
// plain 500 because at that point part of the page may already be written.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
