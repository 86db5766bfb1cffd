package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	addressDto "rental/internal/domains/address/model/dto"
	addressRepo "rental/internal/domains/address/repository"
	"rental/internal/domains/card/model"
	"rental/internal/domains/card/model/dto"
	"rental/internal/domains/card/repository"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
	"rental/shared/validator"
)

const (
	msgCardNotFound       = "card not found"
	msgCardInUse          = "unable to delete card (it may be used in a booking)"
	msgCardConflict       = "unable to add card"
	msgInvalidBillingAddr = "billing address not found"
)

type Card interface {
	Create(ctx context.Context, email string, req dto.CreateCardRequest) (dto.CreateCardResponse, error)
	List(ctx context.Context, email string) (dto.GetCardsResponse, error)
	Delete(ctx context.Context, id int64, email string) error
}

type serviceImpl struct {
	repo        repository.Card
	addressRepo addressRepo.Address
	otel        otel.Otel
}

func New(repo repository.Card, addressRepo addressRepo.Address, otel otel.Otel) Card {
	return &serviceImpl{
		repo:        repo,
		addressRepo: addressRepo,
		otel:        otel,
	}
}

// Create stores the card with only the last four digits of its number. The billing address must
// belong to the same renter.
func (s *serviceImpl) Create(ctx context.Context, email string, req dto.CreateCardRequest) (res dto.CreateCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".card.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	owned, err := s.addressRepo.Exist(ctx, addressDto.OwnedBy(email, &req.BillingAddressID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check billing address")

		return res, failure.FromStore(err, msgCardConflict)
	}

	if !owned {
		return res, failure.BadRequestFromString(msgInvalidBillingAddr) // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturning(ctx, req.ToModel(email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create card")

		return res, failure.FromStore(err, msgCardConflict)
	}

	res.ID = id

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, email string) (res dto.GetCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".card.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		Sorts: []gDto.Sort{{Table: model.TableName, Field: model.FieldID, Dir: gDto.SortDirAsc}},
	}

	models, err := s.repo.GetAll(ctx, params, dto.OwnedBy(email, nil))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to list cards")

		return res, failure.FromStore(err, msgCardConflict)
	}

	res.FromModels(models)

	return res, nil
}

// Delete removes a card owned by email. A card referenced by a booking is kept.
func (s *serviceImpl) Delete(ctx context.Context, id int64, email string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".card.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, dto.OwnedBy(email, &id))
	if err != nil {
		log.Error().Err(err).Int64("cardID", id).Msg("failed to delete card")

		return failure.FromStore(err, msgCardInUse)
	}

	if affected == 0 {
		return failure.NotFound(msgCardNotFound) // nolint:wrapcheck
	}

	return nil
}
