package address

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	"rental/internal/domains/address/model/dto"
	"rental/internal/domains/address/service"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/validator"
	"rental/transport/http/response"
)

type Handler struct {
	service service.Address
	otel    otel.Otel
}

func New(service service.Address, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/addresses", handler.List)
	r.Post("/addresses", handler.Create)
	r.Delete("/addresses/{id}", handler.Delete)
}

// List returns the signed in user's addresses.
// @Summary List addresses
// @Tags Address
// @Produce json
// @Success 200 {object} response.Data[dto.GetAddressesResponse]
// @Failure 401 {object} response.Error
// @Router /v1/addresses [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAddresses")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list addresses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds an address for the signed in user.
// @Summary Create an address
// @Tags Address
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Address"
// @Success 201 {object} response.Data[dto.CreateAddressResponse]
// @Failure 400 {object} response.Error
// @Router /v1/addresses [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddress")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateAddressRequest{}

	if err = validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, email, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create address")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Delete removes one of the signed in user's addresses. Addresses still billing a card are kept.
// @Summary Delete an address
// @Tags Address
// @Param id path int true "Address ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/addresses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAddress")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id, email); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("addressID", id).Msg("failed to delete address")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "address deleted")
}
