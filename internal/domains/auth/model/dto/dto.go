package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"rental/infras/jwt"
	userModel "rental/internal/domains/user/model"
	"rental/shared/timezone"
)

// RegisterRequest creates a user and its profile row. Agent fields are ignored for renters and the
// other way around.
type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"max=30"`
	UserType  string `json:"user_type"  validate:"required,oneof=agent renter"`

	JobTitle          string `json:"job_title"           validate:"required_if=UserType agent,max=100"`
	AgencyName        string `json:"agency_name"         validate:"required_if=UserType agent,max=100"`
	AgencyContactInfo string `json:"agency_contact_info" validate:"max=255"`

	DesiredMoveInDate string           `json:"desired_move_in_date" validate:"omitempty,date"`
	PreferredLocation string           `json:"preferred_location"   validate:"max=255"`
	MonthlyBudget     *decimal.Decimal `json:"monthly_budget"       validate:"omitempty,dgte=0"`
}

// Normalize trims every text field and lower-cases the email so lookups are case-insensitive.
func (r *RegisterRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.UserType = strings.ToLower(strings.TrimSpace(r.UserType))
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.AgencyName = strings.TrimSpace(r.AgencyName)
	r.AgencyContactInfo = strings.TrimSpace(r.AgencyContactInfo)
	r.DesiredMoveInDate = strings.TrimSpace(r.DesiredMoveInDate)
	r.PreferredLocation = strings.TrimSpace(r.PreferredLocation)
}

func (r *RegisterRequest) ToUserModel() userModel.User {
	return userModel.User{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		UserType:  r.UserType,
	}
}

func (r *RegisterRequest) ToAgentModel() userModel.Agent {
	return userModel.Agent{
		Email:             r.Email,
		JobTitle:          r.JobTitle,
		AgencyName:        r.AgencyName,
		AgencyContactInfo: r.AgencyContactInfo,
	}
}

// ToRenterModel expects DesiredMoveInDate to have passed validation.
func (r *RegisterRequest) ToRenterModel() (userModel.Renter, error) {
	renter := userModel.Renter{Email: r.Email}

	if r.DesiredMoveInDate != "" {
		moveIn, err := timezone.ParseDate(r.DesiredMoveInDate)
		if err != nil {
			return renter, err //nolint:wrapcheck
		}

		renter.DesiredMoveInDate = &moveIn
	}

	if r.PreferredLocation != "" {
		location := r.PreferredLocation
		renter.PreferredLocation = &location
	}

	if r.MonthlyBudget != nil {
		renter.MonthlyBudget = decimal.NewNullDecimal(*r.MonthlyBudget)
	}

	return renter, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, role string) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
	l.Role = role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}
