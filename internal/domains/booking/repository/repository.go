package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/booking/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Booking interface {
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetRenterBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RenterBooking, error)
	GetPropertyBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PropertyBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	renterBookings   gRepo.Repository[model.RenterBooking]
	propertyBookings gRepo.Repository[model.PropertyBooking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:       gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		renterBookings:   gRepo.NewRepository[model.RenterBooking]("renter_booking", model.TableName, model.FieldID, db, otel),
		propertyBookings: gRepo.NewRepository[model.PropertyBooking]("property_booking", model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetRenterBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RenterBooking, error) {
	return r.renterBookings.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPropertyBookings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PropertyBooking, error) {
	return r.propertyBookings.GetAll(ctx, params, filter) //nolint:wrapcheck
}
