package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "rental/infras/otel/mocks"
	"rental/internal/domains/user/model/dto"
	serviceMocks "rental/internal/domains/user/service/mocks"
	"rental/internal/handlers/user"
	"rental/shared/constant"
	"rental/shared/failure"
)

func serve(t *testing.T, email, target string, expect func(svc *serviceMocks.MockUser)) *httptest.ResponseRecorder {
	t.Helper()

	svc := serviceMocks.NewMockUser(gomock.NewController(t))
	expect(svc)

	handler := user.New(svc, otelMocks.NewOtel())

	r := chi.NewRouter()
	handler.Router(r)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if email != "" {
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserEmail, email))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHandler_RenterDashboard(t *testing.T) {
	t.Run("dashboard of the session renter", func(t *testing.T) {
		rec := serve(t, "renter@example.com", "/renter/dashboard", func(svc *serviceMocks.MockUser) {
			svc.EXPECT().RenterDashboard(gomock.Any(), "renter@example.com").
				Return(dto.RenterDashboardResponse{BookingsCount: 2}, nil)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bookings_count":2`)
	})

	t.Run("requires a session", func(t *testing.T) {
		rec := serve(t, "", "/renter/dashboard", func(*serviceMocks.MockUser) {})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_AgentDashboard(t *testing.T) {
	rec := serve(t, "ghost@example.com", "/agent/dashboard", func(svc *serviceMocks.MockUser) {
		svc.EXPECT().AgentDashboard(gomock.Any(), "ghost@example.com").
			Return(dto.AgentDashboardResponse{}, failure.NotFound("user not found"))
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
