package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	"rental/internal/domains/user/service"
	"rental/shared"
	"rental/shared/constant"
	"rental/transport/http/response"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/renter/dashboard", handler.RenterDashboard)
	r.Get("/agent/dashboard", handler.AgentDashboard)
}

// RenterDashboard returns the renter profile with addresses, cards and reward progress.
// @Summary Renter dashboard
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.RenterDashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/renter/dashboard [get]
// @Security BearerAuth
func (handler *Handler) RenterDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RenterDashboard")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RenterDashboard(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load renter dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AgentDashboard returns the agent profile with marketplace totals.
// @Summary Agent dashboard
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.AgentDashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/agent/dashboard [get]
// @Security BearerAuth
func (handler *Handler) AgentDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AgentDashboard")
	defer scope.End()

	email, err := shared.SessionEmail(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.AgentDashboard(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load agent dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
