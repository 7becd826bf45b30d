package http_test

import (
	"deskbooker/config"
	otelMock "deskbooker/infras/otel/mocks"
	cacheMock "deskbooker/shared/cache/mocks"
	"deskbooker/shared/constant"
	transport "deskbooker/transport/http"
	"deskbooker/transport/http/middleware"
	"deskbooker/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	appMiddleware := middleware.NewAppMiddleware(otelMock.NewOtel(), cfg, cacheMock.NewMockRedisCache(gomock.NewController(t)))

	return transport.New(cfg, router.New(router.DomainHandlers{}), appMiddleware)
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseHealthy)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/desks", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
