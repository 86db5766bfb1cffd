package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental/config"
	jwtMocks "rental/infras/jwt/mocks"
	otelMocks "rental/infras/otel/mocks"
	"rental/permissions"
	cacheMocks "rental/shared/cache/mocks"
	"rental/transport/http/middleware"
	"rental/transport/http/router"
)

func newTestServer(t *testing.T) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Metrics.Enable = true
	cfg.App.Metrics.Path = "/metrics"
	cfg.App.Docs.Enable = true
	cfg.App.Docs.Path = "/swagger"

	app := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), ot, permissions.Get(), cfg)

	h := New(cfg, router.New(router.DomainHandlers{}), app, authRole, ot, nil, nil)
	h.setup()

	return h
}

func get(h *HTTP, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, http.StatusOK, get(h, healthPath).Code)

	h.setState(ServerStateInGracePeriod)

	assert.Equal(t, http.StatusServiceUnavailable, get(h, healthPath).Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestServer(t)

	for _, target := range []string{"/v1/renter/dashboard", "/v1/agent/properties", "/v1/cards"} {
		assert.Equal(t, http.StatusUnauthorized, get(h, target).Code, target)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := get(h, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocsEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := get(h, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/properties/search")

	var doc struct {
		Paths map[string]map[string]struct {
			Description string                     `json:"description"`
			Responses   map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	book := doc.Paths["/v1/properties/{id}/bookings"]["post"]
	assert.Contains(t, book.Responses, "422")
	assert.NotContains(t, book.Responses, "409")
	assert.Contains(t, book.Description, "monthly price")
	assert.NotContains(t, book.Description, "nightly")
}
