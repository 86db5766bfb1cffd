package booking_test

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
	"rental/internal/domains/booking/model/dto"
	serviceMocks "rental/internal/domains/booking/service/mocks"
	"rental/internal/handlers/booking"
	"rental/shared/constant"
	"rental/shared/failure"
)

const renterEmail = "renter@example.com"

func newRouter(t *testing.T, email string) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(svc, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if email != "" {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserEmail, email))
			}

			next.ServeHTTP(w, req)
		})
	})
	handler.Router(r)

	return r, svc
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	body := `{"start_date":"2026-01-10","end_date":"2026-01-13","card_id":4}`

	t.Run("books for the session renter", func(t *testing.T) {
		r, svc := newRouter(t, renterEmail)

		svc.EXPECT().Create(gomock.Any(), renterEmail, int64(9), dto.CreateBookingRequest{
			StartDate: "2026-01-10",
			EndDate:   "2026-01-13",
			CardID:    4,
		}).Return(dto.CreateBookingResponse{ID: 1, TotalCost: "300.00"}, nil)

		rec := serve(r, http.MethodPost, "/properties/9/bookings", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_cost":"300.00"`)
	})

	t.Run("requires a session", func(t *testing.T) {
		r, _ := newRouter(t, "")

		rec := serve(r, http.MethodPost, "/properties/9/bookings", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("booking failure is unprocessable", func(t *testing.T) {
		r, svc := newRouter(t, renterEmail)

		svc.EXPECT().Create(gomock.Any(), renterEmail, int64(9), gomock.Any()).
			Return(dto.CreateBookingResponse{}, failure.UnprocessableEntity("could not create booking"))

		rec := serve(r, http.MethodPost, "/properties/9/bookings", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("invalid property id", func(t *testing.T) {
		r, _ := newRouter(t, renterEmail)

		rec := serve(r, http.MethodPost, "/properties/0/bookings", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ListBookings(t *testing.T) {
	t.Run("renter bookings", func(t *testing.T) {
		r, svc := newRouter(t, renterEmail)

		svc.EXPECT().ListByRenter(gomock.Any(), renterEmail).Return(dto.GetRenterBookingsResponse{}, nil)

		rec := serve(r, http.MethodGet, "/renter/bookings", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("property bookings", func(t *testing.T) {
		r, svc := newRouter(t, "agent@example.com")

		svc.EXPECT().ListByProperty(gomock.Any(), int64(3)).Return(dto.GetPropertyBookingsResponse{}, nil)

		rec := serve(r, http.MethodGet, "/agent/properties/3/bookings", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
