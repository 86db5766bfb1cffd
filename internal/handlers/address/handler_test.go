package address_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "rental/infras/otel/mocks"
	"rental/internal/domains/address/model/dto"
	serviceMocks "rental/internal/domains/address/service/mocks"
	"rental/internal/handlers/address"
	"rental/shared/constant"
	"rental/shared/failure"
)

const email = "renter@example.com"

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockAddress) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockAddress(ctrl)
	handler := address.New(svc, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserEmail, email)))
		})
	})
	handler.Router(r)

	return r, svc
}

func TestHandler(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), email, dto.CreateAddressRequest{Street: "1 Main St", City: "Chicago"}).
			Return(dto.CreateAddressResponse{ID: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(`{"street":"1 Main St","city":"Chicago"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		r, svc := newRouter(t)

		svc.EXPECT().List(gomock.Any(), email).Return(dto.GetAddressesResponse{}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/addresses", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete of an address still billing a card", func(t *testing.T) {
		r, svc := newRouter(t)

		svc.EXPECT().Delete(gomock.Any(), int64(4), email).Return(failure.Conflict("address is in use by a payment card"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/addresses/4", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := newRouter(t)

		svc.EXPECT().Delete(gomock.Any(), int64(4), email).Return(nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/addresses/4", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
