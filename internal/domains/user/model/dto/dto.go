package dto

import (
	addressDto "rental/internal/domains/address/model/dto"
	cardDto "rental/internal/domains/card/model/dto"
	"rental/internal/domains/user/model"
	"rental/shared/constant"
)

type UserResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	UserType  string `json:"user_type"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.Email = m.Email
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Phone = m.Phone
	r.UserType = m.UserType
}

type AgentProfileResponse struct {
	UserResponse
	JobTitle          string `json:"job_title"`
	AgencyName        string `json:"agency_name"`
	AgencyContactInfo string `json:"agency_contact_info"`
}

func (r *AgentProfileResponse) FromModels(user model.User, agent model.Agent) {
	r.UserResponse.FromModel(user)
	r.JobTitle = agent.JobTitle
	r.AgencyName = agent.AgencyName
	r.AgencyContactInfo = agent.AgencyContactInfo
}

type RenterProfileResponse struct {
	UserResponse
	DesiredMoveInDate *string `json:"desired_move_in_date"`
	PreferredLocation *string `json:"preferred_location"`
	MonthlyBudget     *string `json:"monthly_budget"`
}

func (r *RenterProfileResponse) FromModels(user model.User, renter model.Renter) {
	r.UserResponse.FromModel(user)
	r.PreferredLocation = renter.PreferredLocation

	if renter.DesiredMoveInDate != nil {
		date := renter.DesiredMoveInDate.Format(constant.DateOnlyFormat)
		r.DesiredMoveInDate = &date
	}

	if renter.MonthlyBudget.Valid {
		budget := renter.MonthlyBudget.Decimal.StringFixed(constant.CurrencyPlaces)
		r.MonthlyBudget = &budget
	}
}

type RenterDashboardResponse struct {
	Profile       RenterProfileResponse        `json:"profile"`
	Addresses     []addressDto.AddressResponse `json:"addresses"`
	Cards         []cardDto.CardResponse       `json:"cards"`
	BookingsCount int                          `json:"bookings_count"`
}

type AgentDashboardResponse struct {
	Profile       AgentProfileResponse `json:"profile"`
	PropertyCount int                  `json:"property_count"`
	BookingCount  int                  `json:"booking_count"`
}
