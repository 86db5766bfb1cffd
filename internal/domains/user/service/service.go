package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"rental/infras/otel"
	addressModel "rental/internal/domains/address/model"
	addressDto "rental/internal/domains/address/model/dto"
	addressRepo "rental/internal/domains/address/repository"
	bookingRepo "rental/internal/domains/booking/repository"
	cardModel "rental/internal/domains/card/model"
	cardDto "rental/internal/domains/card/model/dto"
	cardRepo "rental/internal/domains/card/repository"
	propertyRepo "rental/internal/domains/property/repository"
	"rental/internal/domains/user/model"
	"rental/internal/domains/user/model/dto"
	"rental/internal/domains/user/repository"
	"rental/shared"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
)

const (
	msgUserNotFound   = "user not found"
	msgDashboardError = "unable to load dashboard"
)

type User interface {
	RenterDashboard(ctx context.Context, email string) (dto.RenterDashboardResponse, error)
	AgentDashboard(ctx context.Context, email string) (dto.AgentDashboardResponse, error)
}

type serviceImpl struct {
	repo         repository.User
	addressRepo  addressRepo.Address
	cardRepo     cardRepo.Card
	propertyRepo propertyRepo.Property
	bookingRepo  bookingRepo.Booking
	otel         otel.Otel
}

func New(
	repo repository.User,
	addressRepo addressRepo.Address,
	cardRepo cardRepo.Card,
	propertyRepo propertyRepo.Property,
	bookingRepo bookingRepo.Booking,
	otel otel.Otel,
) User {
	return &serviceImpl{
		repo:         repo,
		addressRepo:  addressRepo,
		cardRepo:     cardRepo,
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) getUser(ctx context.Context, email string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get user")

		return user, failure.FromStore(err, msgDashboardError)
	}

	if !user.Exists() {
		return user, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	return user, nil
}

// RenterDashboard gathers the renter profile with addresses, cards and the rewards count.
func (s *serviceImpl) RenterDashboard(ctx context.Context, email string) (res dto.RenterDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.RenterDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.getUser(ctx, email)
	if err != nil {
		return res, err
	}

	renter, err := s.repo.GetRenter(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get renter profile")

		return res, failure.FromStore(err, msgDashboardError)
	}

	res.Profile.FromModels(user, renter)

	addresses, err := s.addressRepo.GetAll(ctx, gDto.QueryParams{
		Sorts: []gDto.Sort{{Table: addressModel.TableName, Field: addressModel.FieldID, Dir: gDto.SortDirAsc}},
	}, addressDto.OwnedBy(email, nil))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to list addresses")

		return res, failure.FromStore(err, msgDashboardError)
	}

	var addressRes addressDto.GetAddressesResponse
	addressRes.FromModels(addresses)
	res.Addresses = addressRes.Addresses

	cards, err := s.cardRepo.GetAll(ctx, gDto.QueryParams{
		Sorts: []gDto.Sort{{Table: cardModel.TableName, Field: cardModel.FieldID, Dir: gDto.SortDirAsc}},
	}, cardDto.OwnedBy(email, nil))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to list cards")

		return res, failure.FromStore(err, msgDashboardError)
	}

	var cardRes cardDto.GetCardsResponse
	cardRes.FromModels(cards)
	res.Cards = cardRes.Cards

	rewards, err := s.repo.GetRewards(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get rewards")

		return res, failure.FromStore(err, msgDashboardError)
	}

	res.BookingsCount = rewards.BookingsCount

	return res, nil
}

// AgentDashboard returns the agent profile with marketplace wide property and booking totals.
func (s *serviceImpl) AgentDashboard(ctx context.Context, email string) (res dto.AgentDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.AgentDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.getUser(ctx, email)
	if err != nil {
		return res, err
	}

	agent, err := s.repo.GetAgent(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get agent profile")

		return res, failure.FromStore(err, msgDashboardError)
	}

	res.Profile.FromModels(user, agent)

	if res.PropertyCount, err = s.propertyRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, failure.FromStore(err, msgDashboardError)
	}

	if res.BookingCount, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, failure.FromStore(err, msgDashboardError)
	}

	return res, nil
}
