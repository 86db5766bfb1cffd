package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental/infras/jwt"
	"rental/internal/domains/auth/model/dto"
	"rental/shared/validator"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, "agent")

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, "agent", response.Role)
}

func TestRegisterRequest_Normalize(t *testing.T) {
	req := dto.RegisterRequest{Email: "  Ada@Example.COM ", FirstName: " Ada ", UserType: " Renter"}
	req.Normalize()

	assert.Equal(t, "ada@example.com", req.Email)
	assert.Equal(t, "Ada", req.FirstName)
	assert.Equal(t, "renter", req.UserType)
}

func TestRegisterRequest_Validation(t *testing.T) {
	base := func() dto.RegisterRequest {
		return dto.RegisterRequest{Email: "a@example.com", FirstName: "Ada", LastName: "Lovelace", UserType: "renter"}
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterRequest)
		message string
	}{
		{name: "renter without profile fields", mutate: func(*dto.RegisterRequest) {}},
		{name: "unknown user type", mutate: func(r *dto.RegisterRequest) { r.UserType = "admin" }, message: "user_type must be one of agent renter"},
		{name: "agent without job title", mutate: func(r *dto.RegisterRequest) {
			r.UserType = "agent"
			r.AgencyName = "Acme"
		}, message: "job_title is required"},
		{name: "agent complete", mutate: func(r *dto.RegisterRequest) {
			r.UserType = "agent"
			r.JobTitle = "Broker"
			r.AgencyName = "Acme"
		}},
		{name: "bad move in date", mutate: func(r *dto.RegisterRequest) { r.DesiredMoveInDate = "09/01/2024" }, message: "desired_move_in_date must be a date formatted as YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestRegisterRequest_ToRenterModel(t *testing.T) {
	budget := decimal.RequireFromString("1250.50")
	req := dto.RegisterRequest{
		Email:             "a@example.com",
		DesiredMoveInDate: "2024-09-01",
		MonthlyBudget:     &budget,
	}

	renter, err := req.ToRenterModel()

	require.NoError(t, err)
	require.NotNil(t, renter.DesiredMoveInDate)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), *renter.DesiredMoveInDate)
	assert.Nil(t, renter.PreferredLocation)
	assert.True(t, renter.MonthlyBudget.Valid)
	assert.Equal(t, "1250.5", renter.MonthlyBudget.Decimal.String())
}
