package dto

import (
	"rental/internal/domains/booking/model"
	"rental/shared/constant"
)

// CreateBookingRequest carries dates as YYYY-MM-DD. Presence and ordering are checked by the
// service so the failures surface in a fixed order.
type CreateBookingRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,date"`
	EndDate   string `json:"end_date"   validate:"omitempty,date"`
	CardID    int64  `json:"card_id"`
}

// Complete reports whether every field needed to book was supplied.
func (c *CreateBookingRequest) Complete() bool {
	return c.StartDate != constant.Empty && c.EndDate != constant.Empty && c.CardID != 0
}

type CreateBookingResponse struct {
	ID        int64  `json:"booking_id"`
	TotalCost string `json:"total_cost"`
}

type BookingResponse struct {
	ID           int64  `json:"booking_id"`
	PropertyID   int64  `json:"property_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalCost    string `json:"total_cost"`
	PropertyType string `json:"property_type"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.PropertyID = m.PropertyID
	r.StartDate = m.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = m.EndDate.Format(constant.DateOnlyFormat)
	r.TotalCost = m.TotalCost.StringFixed(constant.CurrencyPlaces)
	r.PropertyType = m.PropertyType
}

type RenterBookingResponse struct {
	BookingResponse
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (r *RenterBookingResponse) FromModel(m model.RenterBooking) {
	r.BookingResponse.FromModel(m.Booking)
	r.Street = m.Street
	r.City = m.City
	r.State = m.State
	r.Zip = m.Zip
}

type GetRenterBookingsResponse struct {
	Bookings []RenterBookingResponse `json:"bookings"`
}

func (r *GetRenterBookingsResponse) FromModels(models []model.RenterBooking) {
	r.Bookings = make([]RenterBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type PropertyBookingResponse struct {
	BookingResponse
	RenterEmail string `json:"renter_email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

func (r *PropertyBookingResponse) FromModel(m model.PropertyBooking) {
	r.BookingResponse.FromModel(m.Booking)
	r.RenterEmail = m.RenterEmail
	r.FirstName = m.FirstName
	r.LastName = m.LastName
}

type GetPropertyBookingsResponse struct {
	Bookings []PropertyBookingResponse `json:"bookings"`
}

func (r *GetPropertyBookingsResponse) FromModels(models []model.PropertyBooking) {
	r.Bookings = make([]PropertyBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is published once a booking is committed.
type BookingCreatedEvent struct {
	BookingID    int64  `json:"booking_id"`
	PropertyID   int64  `json:"property_id"`
	RenterEmail  string `json:"renter_email"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalCost    string `json:"total_cost"`
	PropertyType string `json:"property_type"`
}

func (e *BookingCreatedEvent) FromModel(m model.Booking) {
	e.BookingID = m.ID
	e.PropertyID = m.PropertyID
	e.RenterEmail = m.RenterEmail
	e.StartDate = m.StartDate.Format(constant.DateOnlyFormat)
	e.EndDate = m.EndDate.Format(constant.DateOnlyFormat)
	e.TotalCost = m.TotalCost.StringFixed(constant.CurrencyPlaces)
	e.PropertyType = m.PropertyType
}
