package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "User"
	EntityName = "user"

	FieldEmail     = "email"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldUserType  = "user_type"
)

const (
	AgentTableName   = "Agent"
	RenterTableName  = "ProspectiveRenter"
	RewardsTableName = "renter_rewards"

	FieldRenterEmail   = "renter_email"
	FieldBookingsCount = "bookings_count"
)

// User is written once at registration. UserType decides which profile table holds the rest.
type User struct {
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	UserType  string `db:"user_type"`
}

func (u User) Exists() bool {
	return u.Email != ""
}

type Agent struct {
	Email             string `db:"email"`
	JobTitle          string `db:"job_title"`
	AgencyName        string `db:"agency_name"`
	AgencyContactInfo string `db:"agency_contact_info"`
}

type Renter struct {
	Email             string              `db:"email"`
	DesiredMoveInDate *time.Time          `db:"desired_move_in_date"`
	PreferredLocation *string             `db:"preferred_location"`
	MonthlyBudget     decimal.NullDecimal `db:"monthly_budget"`
}

// Reward is a row of the renter_rewards view.
type Reward struct {
	RenterEmail   string `db:"renter_email"`
	BookingsCount int    `db:"bookings_count"`
}
