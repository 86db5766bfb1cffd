package model

import (
	"time"

	"github.com/shopspring/decimal"

	"rental/shared/constant"
)

const (
	TableName  = "Bookings"
	EntityName = "booking"

	FieldID           = "booking_id"
	FieldPropertyID   = "property_id"
	FieldRenterEmail  = "renter_email"
	FieldCardID       = "card_id"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldTotalCost    = "total_cost"
	FieldPropertyType = "Property_Type"
)

// Booking is immutable once stored. TotalCost and PropertyType are frozen at creation.
type Booking struct {
	ID           int64           `db:"booking_id" generated:"true"`
	PropertyID   int64           `db:"property_id"`
	RenterEmail  string          `db:"renter_email"`
	CardID       int64           `db:"card_id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalCost    decimal.Decimal `db:"total_cost"`
	PropertyType string          `db:"Property_Type"`
}

// RenterBooking is a booking with the address of the booked property.
type RenterBooking struct {
	Booking
	Street string `db:"street" table:"Property Info"`
	City   string `db:"city"   table:"Property Info"`
	State  string `db:"state"  table:"Property Info"`
	Zip    string `db:"zip"    table:"Property Info"`
}

func (RenterBooking) GetJoinQuery() string {
	return ` JOIN "Property Info" ON "Property Info"."property_id" = "Bookings"."property_id"`
}

// PropertyBooking is a booking with the renter's name, as listed to agents.
type PropertyBooking struct {
	Booking
	FirstName string `db:"first_name" table:"User"`
	LastName  string `db:"last_name"  table:"User"`
}

func (PropertyBooking) GetJoinQuery() string {
	return ` JOIN "User" ON "User"."email" = "Bookings"."renter_email"`
}

// TotalCost charges the monthly price for stays shorter than a month and a pro rata share of it
// otherwise. The result is rounded to cents once, at the end.
func TotalCost(monthlyPrice decimal.Decimal, days int) decimal.Decimal {
	if days < constant.DaysPerMonth {
		return monthlyPrice.Round(constant.CurrencyPlaces)
	}

	return monthlyPrice.
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(constant.DaysPerMonth)).
		Round(constant.CurrencyPlaces)
}
