package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"rental/config"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/infras/s3"
	"rental/internal/domains/property/model"
	"rental/internal/domains/property/model/dto"
	"rental/internal/domains/property/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
	"rental/shared/validator"
)

const (
	cacheGetProperty    = "property:get"
	cacheListProperty   = "property:list"
	cacheLatestProperty = "property:latest"
	cacheSearchProperty = "property:search"

	msgPropertyNotFound = "property not found"
	msgPropertyConflict = "property conflicts with existing data"
)

type Property interface {
	Load(ctx context.Context, id int64) (dto.PropertyDetailResponse, error)
	Save(ctx context.Context, id *int64, req dto.SavePropertyRequest) (int64, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetListingsResponse, error)
	Latest(ctx context.Context) (dto.GetPropertiesResponse, error)
	Search(ctx context.Context, req dto.SearchRequest, params gDto.QueryParams) (dto.GetListingsResponse, error)
	UploadImage(ctx context.Context, id int64, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo       repository.Property
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	s3         s3.S3
}

func New(repo repository.Property, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Property {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		s3:         s3,
	}
}

// Load composes the base row with the subtype row matching its type and the optional neighborhood.
func (s *serviceImpl) Load(ctx context.Context, id int64) (res dto.PropertyDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	prop, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("propertyID", id).Msg("failed to get property")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	if !prop.Exists() {
		return res, failure.NotFound(msgPropertyNotFound) // nolint:wrapcheck
	}

	subtype, err := s.repo.GetSubtype(ctx, id, prop.Type)
	if err != nil {
		log.Error().Err(err).Int64("propertyID", id).Msg("failed to get property subtype")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	hood, err := s.repo.GetNeighborhood(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("propertyID", id).Msg("failed to get neighborhood")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	res.FromModels(prop, subtype, hood)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

// Save creates the property when id is nil and overwrites it otherwise. Every write happens in one
// transaction: the base row, the subtype rows and the neighborhood either all change or none do.
func (s *serviceImpl) Save(ctx context.Context, id *int64, req dto.SavePropertyRequest) (propertyID int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return 0, err //nolint:wrapcheck
	}

	if id != nil {
		exist, existErr := s.repo.Exist(ctx, shared.FilterByID(*id, model.FieldID, model.TableName))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check property existence")

			return 0, failure.FromStore(existErr, msgPropertyConflict)
		}

		if !exist {
			return 0, failure.NotFound(msgPropertyNotFound) // nolint:wrapcheck
		}
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if id == nil {
			newID, insertErr := s.repo.InsertReturningTx(ctx, tx, req.ToModel(0))
			if insertErr != nil {
				return insertErr
			}

			propertyID = newID
		} else {
			propertyID = *id

			if updateErr := s.overwrite(ctx, tx, propertyID, req); updateErr != nil {
				return updateErr
			}
		}

		if subtype := req.Subtype(propertyID); subtype != nil {
			if subErr := s.repo.InsertSubtypeTx(ctx, tx, subtype); subErr != nil {
				return subErr
			}
		}

		return s.replaceNeighborhood(ctx, tx, propertyID, id == nil, req)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save property")

		return 0, failure.FromStore(err, msgPropertyConflict)
	}

	s.invalidate(context.WithoutCancel(ctx), propertyID)

	return propertyID, nil
}

// overwrite replaces every base column and clears all subtype rows, so a type change leaves no stale
// subtype behind. An empty image keeps the stored one.
func (s *serviceImpl) overwrite(ctx context.Context, tx *sqlx.Tx, id int64, req dto.SavePropertyRequest) error {
	fields := shared.ColumnValues(req.ToModel(id))
	if req.Image == constant.Empty {
		delete(fields, model.FieldImage)
	}

	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err //nolint:wrapcheck
	}

	return s.repo.DeleteSubtypesTx(ctx, tx, id) //nolint:wrapcheck
}

// replaceNeighborhood leaves the row alone when the request carries no neighborhood, and otherwise
// replaces it. A neighborhood without any value removes the row.
func (s *serviceImpl) replaceNeighborhood(ctx context.Context, tx *sqlx.Tx, id int64, created bool, req dto.SavePropertyRequest) error {
	if req.Neighborhood == nil {
		return nil
	}

	if !created {
		if err := s.repo.DeleteNeighborhoodTx(ctx, tx, id); err != nil {
			return err //nolint:wrapcheck
		}
	}

	hood := req.NeighborhoodModel(id)
	if hood == nil {
		return nil
	}

	return s.repo.InsertNeighborhoodTx(ctx, tx, *hood) //nolint:wrapcheck
}

// List returns every property with its neighborhood, newest first.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sorts = dto.NewestFirst()

	return s.listings(ctx, cacheListProperty, params, gDto.FilterGroup{})
}

// Search applies the sparse criteria. Results are ordered by price ascending, newest first on ties.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest, params gDto.QueryParams) (res dto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	// search results always come back cheapest first, whatever the caller asked for
	params.SortBy, params.SortDir = "", ""
	params.Sorts = dto.SearchOrder()

	return s.listings(ctx, cacheSearchProperty, params, req.ToFilter())
}

func (s *serviceImpl) listings(ctx context.Context, prefix string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetListingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.repo.CountListings(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	models, err := s.repo.GetListings(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

// Latest returns the newest available properties.
func (s *serviceImpl) Latest(ctx context.Context) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Latest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if cacheErr := s.cache.Get(ctx, cacheLatestProperty, &res); cacheErr == nil {
		return res, nil
	}

	params := gDto.QueryParams{Limit: constant.DefaultLatestLimit, Sorts: dto.NewestFirst()}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldAvailability, Value: true, Operator: gDto.FilterOperatorEq},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest properties")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheLatestProperty, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save latest properties to cache")
		}
	}()

	return res, nil
}

// UploadImage stores the image under property/<id>/ and points the listing at it. The previous image
// is removed only when it was uploaded here.
func (s *serviceImpl) UploadImage(ctx context.Context, id int64, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	prop, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImage)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	if !prop.Exists() {
		return res, failure.NotFound(msgPropertyNotFound) // nolint:wrapcheck
	}

	directory := fmt.Sprintf("%s/%d", model.EntityName, id)
	filename := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, directory, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload property image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldImage: url}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property image")

		if delErr := s.s3.DeleteFile(ctx, directory, filename); delErr != nil {
			log.Error().Err(delErr).Str("file", filename).Msg("failed to remove orphaned image")
		}

		return res, failure.FromStore(err, msgPropertyConflict)
	}

	if prop.Image != constant.Empty {
		if old := s.s3.GetObjectNameFromURL(prop.Image); old != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, constant.Empty, old); delErr != nil {
				log.Error().Err(delErr).Str("object", old).Msg("failed to remove previous image")
			}
		}
	}

	s.invalidate(context.WithoutCancel(ctx), id)

	res.Image = url

	return res, nil
}

// invalidate runs before a write returns, so the writer's next read misses the cache.
func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete property cache")
	}

	if err := s.cache.Delete(ctx, cacheLatestProperty); err != nil {
		log.Error().Err(err).Msg("failed to delete latest properties cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheListProperty)
	shared.InvalidateCaches(ctx, s.cache, cacheSearchProperty)
}
