package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "rental/infras/otel/mocks"
	addressMocks "rental/internal/domains/address/mocks"
	addressModel "rental/internal/domains/address/model"
	bookingMocks "rental/internal/domains/booking/mocks"
	cardMocks "rental/internal/domains/card/mocks"
	cardModel "rental/internal/domains/card/model"
	propertyMocks "rental/internal/domains/property/mocks"
	userMocks "rental/internal/domains/user/mocks"
	"rental/internal/domains/user/model"
	"rental/internal/domains/user/service"
	"rental/shared/failure"
)

type fixture struct {
	users      *userMocks.MockUser
	addresses  *addressMocks.MockAddress
	cards      *cardMocks.MockCard
	properties *propertyMocks.MockProperty
	bookings   *bookingMocks.MockBooking
	svc        service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		users:      userMocks.NewMockUser(ctrl),
		addresses:  addressMocks.NewMockAddress(ctrl),
		cards:      cardMocks.NewMockCard(ctrl),
		properties: propertyMocks.NewMockProperty(ctrl),
		bookings:   bookingMocks.NewMockBooking(ctrl),
	}

	f.svc = service.New(f.users, f.addresses, f.cards, f.properties, f.bookings, otelMocks.NewOtel())

	return f
}

func TestUserService_RenterDashboard(t *testing.T) {
	const email = "renter@example.com"

	t.Run("profile with addresses cards and rewards", func(t *testing.T) {
		f := newFixture(t)

		moveIn := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
		location := "Chicago"

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.User{Email: email, FirstName: "Ada", UserType: "renter"}, nil)
		f.users.EXPECT().GetRenter(gomock.Any(), email).Return(model.Renter{
			Email:             email,
			DesiredMoveInDate: &moveIn,
			PreferredLocation: &location,
			MonthlyBudget:     decimal.NewNullDecimal(decimal.RequireFromString("1500")),
		}, nil)
		f.addresses.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]addressModel.Address{{ID: 1, Street: "1 Main St"}}, nil)
		f.cards.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]cardModel.PaymentCard{{ID: 4, CardLast4: "4242"}}, nil)
		f.users.EXPECT().GetRewards(gomock.Any(), email).
			Return(model.Reward{RenterEmail: email, BookingsCount: 3}, nil)

		res, err := f.svc.RenterDashboard(context.Background(), email)

		require.NoError(t, err)
		assert.Equal(t, "Ada", res.Profile.FirstName)
		assert.Equal(t, "2024-09-01", *res.Profile.DesiredMoveInDate)
		assert.Equal(t, "1500.00", *res.Profile.MonthlyBudget)
		require.Len(t, res.Addresses, 1)
		require.Len(t, res.Cards, 1)
		assert.Equal(t, "4242", res.Cards[0].CardLast4)
		assert.Equal(t, 3, res.BookingsCount)
	})

	t.Run("no rewards row counts as zero", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{Email: email}, nil)
		f.users.EXPECT().GetRenter(gomock.Any(), email).Return(model.Renter{Email: email}, nil)
		f.addresses.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]addressModel.Address{}, nil)
		f.cards.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]cardModel.PaymentCard{}, nil)
		f.users.EXPECT().GetRewards(gomock.Any(), email).Return(model.Reward{}, nil)

		res, err := f.svc.RenterDashboard(context.Background(), email)

		require.NoError(t, err)
		assert.Zero(t, res.BookingsCount)
		assert.Nil(t, res.Profile.MonthlyBudget)
		assert.NotNil(t, res.Addresses)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.RenterDashboard(context.Background(), email)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_AgentDashboard(t *testing.T) {
	const email = "agent@example.com"

	t.Run("profile with totals", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.User{Email: email, UserType: "agent"}, nil)
		f.users.EXPECT().GetAgent(gomock.Any(), email).
			Return(model.Agent{Email: email, JobTitle: "Broker", AgencyName: "Acme"}, nil)
		f.properties.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(40, nil)

		res, err := f.svc.AgentDashboard(context.Background(), email)

		require.NoError(t, err)
		assert.Equal(t, "Acme", res.Profile.AgencyName)
		assert.Equal(t, 12, res.PropertyCount)
		assert.Equal(t, 40, res.BookingCount)
	})

	t.Run("store failure is not leaked", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{Email: email}, nil)
		f.users.EXPECT().GetAgent(gomock.Any(), email).Return(model.Agent{}, nil)
		f.properties.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

		_, err := f.svc.AgentDashboard(context.Background(), email)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.NotContains(t, err.Error(), "connection refused")
	})
}
