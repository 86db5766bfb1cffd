package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/property/model"
	"rental/shared"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Property interface {
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.Property) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error

	GetListings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error)
	CountListings(ctx context.Context, filter gDto.FilterGroup) (int, error)

	GetSubtype(ctx context.Context, propertyID int64, propertyType model.PropertyType) (model.Subtype, error)
	InsertSubtypeTx(ctx context.Context, sqltx *sqlx.Tx, subtype model.Subtype) error
	DeleteSubtypesTx(ctx context.Context, sqltx *sqlx.Tx, propertyID int64) error

	GetNeighborhood(ctx context.Context, propertyID int64) (*model.Neighborhood, error)
	InsertNeighborhoodTx(ctx context.Context, sqltx *sqlx.Tx, neighborhood model.Neighborhood) error
	DeleteNeighborhoodTx(ctx context.Context, sqltx *sqlx.Tx, propertyID int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
	listing      gRepo.Repository[model.Listing]
	house        gRepo.Repository[model.House]
	apartment    gRepo.Repository[model.Apartment]
	commercial   gRepo.Repository[model.Commercial]
	neighborhood gRepo.Repository[model.Neighborhood]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
		listing:      gRepo.NewRepository[model.Listing]("listing", model.TableName, model.FieldID, db, otel),
		house:        gRepo.NewRepository[model.House]("house", model.HouseTableName, model.FieldID, db, otel),
		apartment:    gRepo.NewRepository[model.Apartment]("apartment", model.ApartmentTableName, model.FieldID, db, otel),
		commercial:   gRepo.NewRepository[model.Commercial]("commercial", model.CommercialTableName, model.FieldID, db, otel),
		neighborhood: gRepo.NewRepository[model.Neighborhood]("neighborhood", model.NeighborhoodTableName, model.FieldID, db, otel),
		otel:         otel,
	}
}

func (r *repositoryImpl) GetListings(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error) {
	return r.listing.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountListings(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.listing.Count(ctx, filter) //nolint:wrapcheck
}

// GetSubtype reads only the table matching propertyType. A missing row yields nil.
func (r *repositoryImpl) GetSubtype(ctx context.Context, propertyID int64, propertyType model.PropertyType) (model.Subtype, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.GetSubtype")
	defer scope.End()

	switch propertyType {
	case model.TypeHouse:
		house, err := r.house.Get(ctx, shared.FilterByID(propertyID, model.FieldID, model.HouseTableName))
		if err != nil || house.PropertyID == 0 {
			return nil, err //nolint:wrapcheck
		}

		return house, nil
	case model.TypeApartment:
		apartment, err := r.apartment.Get(ctx, shared.FilterByID(propertyID, model.FieldID, model.ApartmentTableName))
		if err != nil || apartment.PropertyID == 0 {
			return nil, err //nolint:wrapcheck
		}

		return apartment, nil
	case model.TypeCommercial:
		commercial, err := r.commercial.Get(ctx, shared.FilterByID(propertyID, model.FieldID, model.CommercialTableName))
		if err != nil || commercial.PropertyID == 0 {
			return nil, err //nolint:wrapcheck
		}

		return commercial, nil
	default:
		return nil, nil
	}
}

func (r *repositoryImpl) InsertSubtypeTx(ctx context.Context, sqltx *sqlx.Tx, subtype model.Subtype) error {
	switch v := subtype.(type) {
	case model.House:
		return r.house.InsertTx(ctx, sqltx, v) //nolint:wrapcheck
	case model.Apartment:
		return r.apartment.InsertTx(ctx, sqltx, v) //nolint:wrapcheck
	case model.Commercial:
		return r.commercial.InsertTx(ctx, sqltx, v) //nolint:wrapcheck
	default:
		return fmt.Errorf("unknown property subtype %T", subtype)
	}
}

// DeleteSubtypesTx clears all three subtype tables so a type change never leaves a stale row behind.
func (r *repositoryImpl) DeleteSubtypesTx(ctx context.Context, sqltx *sqlx.Tx, propertyID int64) error {
	if _, err := r.house.DeleteTx(ctx, sqltx, shared.FilterByID(propertyID, model.FieldID, model.HouseTableName)); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := r.apartment.DeleteTx(ctx, sqltx, shared.FilterByID(propertyID, model.FieldID, model.ApartmentTableName)); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := r.commercial.DeleteTx(ctx, sqltx, shared.FilterByID(propertyID, model.FieldID, model.CommercialTableName)); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) GetNeighborhood(ctx context.Context, propertyID int64) (*model.Neighborhood, error) {
	hood, err := r.neighborhood.Get(ctx, shared.FilterByID(propertyID, model.FieldID, model.NeighborhoodTableName))
	if err != nil || hood.PropertyID == 0 {
		return nil, err //nolint:wrapcheck
	}

	return &hood, nil
}

func (r *repositoryImpl) InsertNeighborhoodTx(ctx context.Context, sqltx *sqlx.Tx, neighborhood model.Neighborhood) error {
	return r.neighborhood.InsertTx(ctx, sqltx, neighborhood) //nolint:wrapcheck
}

func (r *repositoryImpl) DeleteNeighborhoodTx(ctx context.Context, sqltx *sqlx.Tx, propertyID int64) error {
	_, err := r.neighborhood.DeleteTx(ctx, sqltx, shared.FilterByID(propertyID, model.FieldID, model.NeighborhoodTableName))

	return err //nolint:wrapcheck
}
