package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"rental/config"
	"rental/infras/kafka"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/booking/model"
	"rental/internal/domains/booking/model/dto"
	"rental/internal/domains/booking/repository"
	cardDto "rental/internal/domains/card/model/dto"
	cardRepo "rental/internal/domains/card/repository"
	propertyModel "rental/internal/domains/property/model"
	propertyRepo "rental/internal/domains/property/repository"
	"rental/shared"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
	"rental/shared/timezone"
	"rental/shared/validator"
)

const (
	msgPropertyNotFound = "property not found"
	msgMissingFields    = "missing fields"
	msgInvalidDateRange = "invalid date range"
	msgInvalidCard      = "invalid card"
	msgBookingFailed    = "could not create booking (dates may overlap or card/property invalid)"
)

type Booking interface {
	Create(ctx context.Context, renterEmail string, propertyID int64, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ListByRenter(ctx context.Context, renterEmail string) (dto.GetRenterBookingsResponse, error)
	ListByProperty(ctx context.Context, propertyID int64) (dto.GetPropertyBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	cardRepo     cardRepo.Card
	transactor   postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	propertyRepo propertyRepo.Property,
	cardRepo cardRepo.Card,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cardRepo:     cardRepo,
		transactor:   transactor,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
	}
}

// Create books a property for the renter. Checks run in a fixed order and stop at the first
// failure. The card check, the price read and the insert share one transaction so the stored cost
// reflects the price at commit time.
func (s *serviceImpl) Create(ctx context.Context, renterEmail string, propertyID int64, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	propertyFilter := shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName)

	exist, err := s.propertyRepo.Exist(ctx, propertyFilter)
	if err != nil {
		log.Error().Err(err).Int64("propertyID", propertyID).Msg("failed to check property existence")

		return res, failure.UnprocessableEntity(msgBookingFailed) // nolint:wrapcheck
	}

	if !exist {
		return res, failure.NotFound(msgPropertyNotFound) // nolint:wrapcheck
	}

	if !req.Complete() {
		return res, failure.BadRequestFromString(msgMissingFields) // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	endDate, err := timezone.ParseDate(req.EndDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !startDate.Before(endDate) {
		return res, failure.BadRequestFromString(msgInvalidDateRange) // nolint:wrapcheck
	}

	booking := model.Booking{
		PropertyID:  propertyID,
		RenterEmail: renterEmail,
		CardID:      req.CardID,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		owned, cardErr := s.cardRepo.ExistTx(ctx, tx, cardDto.OwnedBy(renterEmail, &req.CardID))
		if cardErr != nil {
			return cardErr //nolint:wrapcheck
		}

		if !owned {
			return failure.BadRequestFromString(msgInvalidCard) //nolint:wrapcheck
		}

		prop, propErr := s.propertyRepo.GetTx(ctx, tx, propertyFilter, propertyModel.FieldID, propertyModel.FieldPrice, propertyModel.FieldType)
		if propErr != nil {
			return propErr //nolint:wrapcheck
		}

		if !prop.Exists() {
			return failure.NotFound(msgPropertyNotFound) //nolint:wrapcheck
		}

		booking.TotalCost = model.TotalCost(prop.Price, timezone.DaysBetween(startDate, endDate))
		booking.PropertyType = string(prop.Type)

		id, insertErr := s.repo.InsertReturningTx(ctx, tx, booking)
		if insertErr != nil {
			return insertErr //nolint:wrapcheck
		}

		booking.ID = id

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, fail
		}

		log.Error().Err(err).Int64("propertyID", propertyID).Str("renter", renterEmail).Msg("failed to create booking")

		return res, failure.UnprocessableEntity(msgBookingFailed) // nolint:wrapcheck
	}

	go s.publishCreated(context.WithoutCancel(ctx), booking)

	res.ID = booking.ID
	res.TotalCost = booking.TotalCost.StringFixed(constant.CurrencyPlaces)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	var event dto.BookingCreatedEvent
	event.FromModel(booking)

	msg := kafka.Message{Key: strconv.FormatInt(booking.PropertyID, 10), Value: event}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingCreated, msg); err != nil {
		log.Error().Err(err).Int64("bookingID", booking.ID).Msg("failed to publish booking created event")
	}
}

// ListByRenter returns the renter's bookings with property addresses, latest stay first.
func (s *serviceImpl) ListByRenter(ctx context.Context, renterEmail string) (res dto.GetRenterBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByRenter")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldRenterEmail, Value: renterEmail, Operator: gDto.FilterOperatorEq},
		},
	}

	models, err := s.repo.GetRenterBookings(ctx, latestStayFirst(), filter)
	if err != nil {
		log.Error().Err(err).Str("renter", renterEmail).Msg("failed to list renter bookings")

		return res, failure.FromStore(err, msgBookingFailed)
	}

	res.FromModels(models)

	return res, nil
}

// ListByProperty returns every booking of a property with the renter's name, latest stay first.
func (s *serviceImpl) ListByProperty(ctx context.Context, propertyID int64) (res dto.GetPropertyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.propertyRepo.Exist(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("propertyID", propertyID).Msg("failed to check property existence")

		return res, failure.FromStore(err, msgBookingFailed)
	}

	if !exist {
		return res, failure.NotFound(msgPropertyNotFound) // nolint:wrapcheck
	}

	models, err := s.repo.GetPropertyBookings(ctx, latestStayFirst(), shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("propertyID", propertyID).Msg("failed to list property bookings")

		return res, failure.FromStore(err, msgBookingFailed)
	}

	res.FromModels(models)

	return res, nil
}

func latestStayFirst() gDto.QueryParams {
	return gDto.QueryParams{
		Sorts: []gDto.Sort{
			{Table: model.TableName, Field: model.FieldStartDate, Dir: gDto.SortDirDesc},
			{Table: model.TableName, Field: model.FieldID, Dir: gDto.SortDirDesc},
		},
	}
}
