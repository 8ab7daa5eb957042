package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/web"
)

func TestNewHandlers_Success(t *testing.T) {
	templates, err := web.Templates()
	require.NoError(t, err)

	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: 30 * time.Second}

	handlers, err := NewHandlers(&service.Services{}, templates, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress_ReturnsError(t *testing.T) {
	templates, err := web.Templates()
	require.NoError(t, err)

	handlers, err := NewHandlers(&service.Services{}, templates, config.Server{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
