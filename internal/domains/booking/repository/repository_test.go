package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "rental/infras/otel/mocks"
	"rental/infras/postgres"
	"rental/internal/domains/booking/model"
	"rental/internal/domains/booking/repository"
	"rental/shared"
	gDto "rental/shared/dto"
)

func newRepository(t *testing.T) (*postgres.Connection, repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return conn, repository.New(conn, otelMocks.NewOtel()), mock
}

func TestBooking_InsertReturningTx(t *testing.T) {
	conn, repo, mock := newRepository(t)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Bookings" ("property_id", "renter_email", "card_id", "start_date", "end_date", "total_cost", "Property_Type") VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING "booking_id"`)).
		WithArgs(int64(7), "renter@example.com", int64(2), start, end, "1200", "house").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(15))
	mock.ExpectCommit()

	var id int64

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) (err error) {
		id, err = repo.InsertReturningTx(context.Background(), tx, model.Booking{
			PropertyID:   7,
			RenterEmail:  "renter@example.com",
			CardID:       2,
			StartDate:    start,
			EndDate:      end,
			TotalCost:    decimal.RequireFromString("1200.00"),
			PropertyType: "house",
		})

		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBooking_GetRenterBookings(t *testing.T) {
	_, repo, mock := newRepository(t)

	params := gDto.QueryParams{
		Sorts: []gDto.Sort{{Table: model.TableName, Field: model.FieldStartDate, Dir: gDto.SortDirDesc}},
	}
	filter := shared.FilterByID("renter@example.com", model.FieldRenterEmail, model.TableName)

	mock.ExpectQuery(regexp.QuoteMeta(`"Property Info"."street", "Property Info"."city", "Property Info"."state", "Property Info"."zip" FROM "Bookings" JOIN "Property Info" ON "Property Info"."property_id" = "Bookings"."property_id" WHERE ("Bookings"."renter_email" = $1) ORDER BY "Bookings"."start_date" DESC`)).
		WithArgs("renter@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"booking_id", "property_id", "renter_email", "card_id", "start_date", "end_date", "total_cost", "Property_Type",
			"street", "city", "state", "zip",
		}).AddRow(1, 7, "renter@example.com", 2, time.Now(), time.Now(), "1033.33", "house", "1 Main St", "Chicago", "IL", "60601"))

	bookings, err := repo.GetRenterBookings(context.Background(), params, filter)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "1 Main St", bookings[0].Street)
	assert.Equal(t, "1033.33", bookings[0].TotalCost.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
