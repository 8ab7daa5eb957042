package handler

import (
	"html/template"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/handler/http"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, templates *template.Template, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, templates, logger),
	}, nil
}
