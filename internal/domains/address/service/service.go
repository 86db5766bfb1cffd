package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	"rental/internal/domains/address/model"
	"rental/internal/domains/address/model/dto"
	"rental/internal/domains/address/repository"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
	"rental/shared/validator"
)

const (
	msgAddressNotFound = "address not found"
	msgAddressInUse    = "unable to delete address (it may be used as a billing address)"
	msgAddressConflict = "unable to add address"
)

type Address interface {
	Create(ctx context.Context, email string, req dto.CreateAddressRequest) (dto.CreateAddressResponse, error)
	List(ctx context.Context, email string) (dto.GetAddressesResponse, error)
	Delete(ctx context.Context, id int64, email string) error
}

type serviceImpl struct {
	repo repository.Address
	otel otel.Otel
}

func New(repo repository.Address, otel otel.Otel) Address {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, email string, req dto.CreateAddressRequest) (res dto.CreateAddressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	id, err := s.repo.InsertReturning(ctx, req.ToModel(email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create address")

		return res, failure.FromStore(err, msgAddressConflict)
	}

	res.ID = id

	return res, nil
}

// List returns the user's addresses in creation order.
func (s *serviceImpl) List(ctx context.Context, email string) (res dto.GetAddressesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		Sorts: []gDto.Sort{{Table: model.TableName, Field: model.FieldID, Dir: gDto.SortDirAsc}},
	}

	models, err := s.repo.GetAll(ctx, params, dto.OwnedBy(email, nil))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to list addresses")

		return res, failure.FromStore(err, msgAddressConflict)
	}

	res.FromModels(models)

	return res, nil
}

// Delete removes an address owned by email. An address still referenced by a card is kept.
func (s *serviceImpl) Delete(ctx context.Context, id int64, email string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".address.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, dto.OwnedBy(email, &id))
	if err != nil {
		log.Error().Err(err).Int64("addressID", id).Msg("failed to delete address")

		return failure.FromStore(err, msgAddressInUse)
	}

	if affected == 0 {
		return failure.NotFound(msgAddressNotFound) // nolint:wrapcheck
	}

	return nil
}
