package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)

	s, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_UsesConfig(t *testing.T) {
	cfg := config.Server{Host: "127.0.0.1", Port: 8081, ShutdownTimeout: 3 * time.Second}
	h := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:8081", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.shutdownTimeout)
	assert.NotZero(t, h.server.ReadHeaderTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "server did not stop after context cancellation")
	}
}
