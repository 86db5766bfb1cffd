package card

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	"rental/internal/domains/card/model/dto"
	"rental/internal/domains/card/service"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/validator"
	"rental/transport/http/response"
)

type Handler struct {
	service service.Card
	otel    otel.Otel
}

func New(service service.Card, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/cards", handler.List)
	r.Post("/cards", handler.Create)
	r.Delete("/cards/{id}", handler.Delete)
}

// List returns the signed in renter's cards.
// @Summary List cards
// @Tags Card
// @Produce json
// @Success 200 {object} response.Data[dto.GetCardsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/cards [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCards")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cards")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create adds a card for the signed in renter.
// @Summary Create a card
// @Tags Card
// @Accept json
// @Produce json
// @Param request body dto.CreateCardRequest true "Card"
// @Success 201 {object} response.Data[dto.CreateCardResponse]
// @Failure 400 {object} response.Error
// @Router /v1/cards [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCard")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateCardRequest{}

	if err = validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, email, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create card")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Delete removes one of the signed in renter's cards. Cards referenced by a booking are kept.
// @Summary Delete a card
// @Tags Card
// @Param id path int true "Card ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/cards/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCard")
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
		log.Error().Err(err).Int64("cardID", id).Msg("failed to delete card")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "card deleted")
}
