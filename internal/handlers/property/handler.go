package property

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"rental/infras/otel"
	"rental/internal/domains/property/model/dto"
	"rental/internal/domains/property/service"
	"rental/shared"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
	"rental/shared/validator"
	"rental/transport/http/response"
)

const (
	queryCity          = "city"
	queryState         = "state"
	queryType          = "type"
	queryMaxPrice      = "max_price"
	queryOnlyAvailable = "only_available"
	formImage          = "image"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/properties/latest", handler.Latest)
	r.Get("/properties/search", handler.Search)
	r.Get("/properties/{id}", handler.GetProperty)

	r.Get("/agent/properties", handler.List)
	r.Post("/agent/properties", handler.CreateProperty)
	r.Put("/agent/properties/{id}", handler.UpdateProperty)
	r.Post("/agent/properties/{id}/image", handler.UploadImage)
}

// Latest returns the newest available properties.
// @Summary Latest listings
// @Tags Property
// @Produce json
// @Success 200 {object} response.Data[dto.GetPropertiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/properties/latest [get]
func (handler *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Latest")
	defer scope.End()

	res, err := handler.service.Latest(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Search filters properties by sparse criteria.
// @Summary Search properties
// @Description Without any criterion only available properties are returned. Results are ordered by price, cheapest first.
// @Tags Property
// @Produce json
// @Param city query string false "City, case-insensitive substring"
// @Param state query string false "State, case-insensitive substring"
// @Param type query string false "house, apartment or commercial"
// @Param max_price query string false "Inclusive upper price bound"
// @Param only_available query bool false "Only available properties"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetListingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/properties/search [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req, err := searchRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.Search(ctx, req, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func searchRequest(r *http.Request) (dto.SearchRequest, error) {
	query := r.URL.Query()

	req := dto.SearchRequest{
		City:  query.Get(queryCity),
		State: query.Get(queryState),
		Type:  strings.ToLower(strings.TrimSpace(query.Get(queryType))),
	}

	if maxPrice := strings.TrimSpace(query.Get(queryMaxPrice)); maxPrice != "" {
		price, err := decimal.NewFromString(maxPrice)
		if err != nil {
			return req, failure.BadRequestFromString("max_price must be a number")
		}

		req.MaxPrice = &price
	}

	if onlyAvailable := shared.ConvertStringToBool(query.Get(queryOnlyAvailable)); onlyAvailable != nil {
		req.OnlyAvailable = *onlyAvailable
	}

	return req, nil
}

// GetProperty returns a property with its subtype and neighborhood.
// @Summary Get a property
// @Tags Property
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyDetailResponse]
// @Failure 404 {object} response.Error
// @Router /v1/properties/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Load(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("propertyID", id).Msg("failed to load property")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// List returns every property for agents, newest first.
// @Summary List properties
// @Tags Property
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetListingsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/agent/properties [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list properties")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateProperty stores a new property with its subtype and neighborhood.
// @Summary Create a property
// @Tags Property
// @Accept json
// @Produce json
// @Param request body dto.SavePropertyRequest true "Property"
// @Success 201 {object} response.Data[dto.SavePropertyResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/agent/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	handler.save(ctx, w, r, nil, http.StatusCreated)
}

// UpdateProperty overwrites a property and replaces its subtype.
// @Summary Update a property
// @Tags Property
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body dto.SavePropertyRequest true "Property"
// @Success 200 {object} response.Data[dto.SavePropertyResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/agent/properties/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProperty")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.save(ctx, w, r, &id, http.StatusOK)
}

func (handler *Handler) save(ctx context.Context, w http.ResponseWriter, r *http.Request, id *int64, status int) {
	req := dto.SavePropertyRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to decode request body")
		response.WithError(w, err)

		return
	}

	savedID, err := handler.service.Save(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to save property")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, status, dto.SavePropertyResponse{ID: savedID})
}

// UploadImage replaces the property image.
// @Summary Upload a property image
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Property ID"
// @Param image formData file true "Image (png, jpg, webp, up to 5 MB)"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/agent/properties/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(formImage)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	res, err := handler.service.UploadImage(ctx, id, dto.UploadImageRequest{Image: fileHeader, ImageFile: file})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("propertyID", id).Msg("failed to upload property image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
