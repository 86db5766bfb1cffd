package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "rental/infras/otel/mocks"
	"rental/infras/postgres"
	"rental/internal/domains/property/model"
	"rental/internal/domains/property/model/dto"
	"rental/internal/domains/property/repository"
	gDto "rental/shared/dto"
)

const listingFrom = `FROM "Property Info" LEFT JOIN "Neighborhood" ON "Neighborhood"."property_id" = "Property Info"."property_id"`

var listingColumns = []string{
	"property_id", "type", "street", "city", "state", "zip", "Sq_Footage", "price", "description", "availability", "image",
	"crime_rate", "schools", "vacation_homes", "land",
}

// decimalArg matches a NUMERIC parameter by exact decimal value.
type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	got, err := decimal.NewFromString(s)

	return err == nil && got.Equal(a.want)
}

func newRepository(t *testing.T) (*postgres.Connection, repository.Property, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return conn, repository.New(conn, otelMocks.NewOtel()), mock
}

func TestProperty_ReplaceSubtypeOnTypeChange(t *testing.T) {
	conn, repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "House" WHERE ("House"."property_id" = $1)`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Apartment" WHERE ("Apartment"."property_id" = $1)`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Commercial Building" WHERE ("Commercial Building"."property_id" = $1)`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "Apartment" ("property_id", "No_of_Rooms", "Building_Type") VALUES ($1, $2, $3)`)).
		WithArgs(int64(7), 3, "walk-up").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		if err := repo.DeleteSubtypesTx(context.Background(), tx, 7); err != nil {
			return err
		}

		return repo.InsertSubtypeTx(context.Background(), tx, model.Apartment{PropertyID: 7, Rooms: 3, BuildingType: "walk-up"})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProperty_SaveRollsBackOnSubtypeFailure(t *testing.T) {
	conn, repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Property Info" ("type", "street", "city", "state", "zip", "Sq_Footage", "price", "description", "availability", "image") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING "property_id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "House"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		id, err := repo.InsertReturningTx(context.Background(), tx, model.Property{
			Type:   model.TypeHouse,
			Street: "1 Main St",
			City:   "Chicago",
			Price:  decimal.RequireFromString("1200.00"),
		})
		if err != nil {
			return err
		}

		return repo.InsertSubtypeTx(context.Background(), tx, model.House{PropertyID: id, Rooms: 3})
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProperty_GetSubtype(t *testing.T) {
	t.Run("reads only the table matching the type", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "House"."property_id", "House"."No_of_Rooms" FROM "House" WHERE ("House"."property_id" = $1) LIMIT 1`)).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"property_id", "No_of_Rooms"}).AddRow(3, 4))

		sub, err := repo.GetSubtype(context.Background(), 3, model.TypeHouse)

		require.NoError(t, err)
		assert.Equal(t, model.House{PropertyID: 3, Rooms: 4}, sub)
		assert.Equal(t, model.TypeHouse, sub.PropertyType())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is an empty subtype", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "Commercial Building" WHERE`)).
			WillReturnRows(sqlmock.NewRows([]string{"property_id", "Business_Types", "No_of_Rooms"}))

		sub, err := repo.GetSubtype(context.Background(), 3, model.TypeCommercial)

		require.NoError(t, err)
		assert.Nil(t, sub)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProperty_GetListings(t *testing.T) {
	t.Run("no criteria lists available properties by price then newest", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		req := dto.SearchRequest{}
		params := gDto.QueryParams{Sorts: dto.SearchOrder()}

		mock.ExpectQuery(regexp.QuoteMeta(listingFrom + ` WHERE ("Property Info"."availability" = $1) ORDER BY "Property Info"."price" ASC, "Property Info"."property_id" DESC`)).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(listingColumns).
				AddRow(9, "house", "9 Elm", "Austin", "TX", "", nil, "900.00", "", true, "", nil, nil, nil, nil).
				AddRow(4, "apartment", "4 Oak", "Austin", "TX", "", 700, "900.00", "", true, "", "2.5", "Lamar High", false, true))

		listings, err := repo.GetListings(context.Background(), params, req.ToFilter())

		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Equal(t, int64(9), listings[0].ID)
		assert.False(t, listings[0].CrimeRate.Valid)
		assert.Nil(t, listings[0].Schools)
		assert.True(t, listings[1].CrimeRate.Decimal.Equal(decimal.RequireFromString("2.5")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("max price is bound as an inclusive decimal", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		maxPrice := decimal.RequireFromString("1500.00")
		req := dto.SearchRequest{City: "chi", MaxPrice: &maxPrice}
		params := gDto.QueryParams{Page: 2, Limit: 10, Sorts: dto.SearchOrder()}

		mock.ExpectQuery(regexp.QuoteMeta(listingFrom+` WHERE (LOWER("Property Info"."city") LIKE LOWER($1) AND "Property Info"."price" <= $2) ORDER BY "Property Info"."price" ASC, "Property Info"."property_id" DESC LIMIT $3 OFFSET $4`)).
			WithArgs("%chi%", decimalArg{want: decimal.RequireFromString("1500")}, 10, 10).
			WillReturnRows(sqlmock.NewRows(listingColumns).
				AddRow(2, "house", "2 Lake", "Chicago", "IL", "", nil, "1500.00", "", true, "", nil, nil, nil, nil))

		listings, err := repo.GetListings(context.Background(), params, req.ToFilter())

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "1500.00", listings[0].Price.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a cent above the bound is not rounded away", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		maxPrice := decimal.RequireFromString("1500.01")
		req := dto.SearchRequest{MaxPrice: &maxPrice}
		params := gDto.QueryParams{Page: 1, Limit: 10, Sorts: dto.SearchOrder()}

		mock.ExpectQuery(regexp.QuoteMeta(listingFrom+` WHERE ("Property Info"."price" <= $1) ORDER BY "Property Info"."price" ASC, "Property Info"."property_id" DESC LIMIT $2 OFFSET $3`)).
			WithArgs(decimalArg{want: decimal.RequireFromString("1500.01")}, 10, 0).
			WillReturnRows(sqlmock.NewRows(listingColumns))

		_, err := repo.GetListings(context.Background(), params, req.ToFilter())

		require.NoError(t, err)
		assert.False(t, decimalArg{want: decimal.RequireFromString("1500.01")}.Match("1500.00"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown sort column", func(t *testing.T) {
		_, repo, mock := newRepository(t)

		params := gDto.QueryParams{SortBy: "price; DROP TABLE users"}

		_, err := repo.GetListings(context.Background(), params, gDto.FilterGroup{})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProperty_GetNeighborhood(t *testing.T) {
	_, repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Neighborhood" WHERE ("Neighborhood"."property_id" = $1) LIMIT 1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "crime_rate", "schools", "vacation_homes", "land"}).
			AddRow(5, "0", nil, false, false))

	hood, err := repo.GetNeighborhood(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, hood)
	assert.True(t, hood.CrimeRate.Valid)
	assert.True(t, hood.CrimeRate.Decimal.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
