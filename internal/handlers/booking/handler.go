package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	"rental/internal/domains/booking/model/dto"
	"rental/internal/domains/booking/service"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/validator"
	"rental/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/properties/{id}/bookings", handler.CreateBooking)
	r.Get("/renter/bookings", handler.RenterBookings)
	r.Get("/agent/properties/{id}/bookings", handler.PropertyBookings)
}

// CreateBooking books a property for the signed in renter.
// @Summary Book a property
// @Description Books [start_date, end_date) on one of the renter's cards. Stays shorter than 30 days cost the monthly price, longer ones the monthly price times days/30.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/properties/{id}/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err = validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, email, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("propertyID", propertyID).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(w, http.StatusCreated, res)
}

// RenterBookings lists the signed in renter's bookings.
// @Summary My bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetRenterBookingsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/renter/bookings [get]
// @Security BearerAuth
func (handler *Handler) RenterBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RenterBookings")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListByRenter(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list renter bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PropertyBookings lists every booking of a property.
// @Summary Property bookings
// @Tags Booking
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} response.Data[dto.GetPropertyBookingsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/agent/properties/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) PropertyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PropertyBookings")
	defer scope.End()

	propertyID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListByProperty(ctx, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("propertyID", propertyID).Msg("failed to list property bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
