package dto

import (
	"strings"

	"rental/internal/domains/address/model"
	gDto "rental/shared/dto"
)

type CreateAddressRequest struct {
	Label  string `json:"label"  validate:"omitempty,max=50"`
	Street string `json:"street" validate:"required,max=255"`
	City   string `json:"city"   validate:"required,max=100"`
	State  string `json:"state"  validate:"omitempty,max=50"`
	Zip    string `json:"zip"    validate:"omitempty,max=20"`
}

func (c *CreateAddressRequest) ToModel(email string) model.Address {
	return model.Address{
		Email:  email,
		Label:  strings.TrimSpace(c.Label),
		Street: strings.TrimSpace(c.Street),
		City:   strings.TrimSpace(c.City),
		State:  strings.TrimSpace(c.State),
		Zip:    strings.TrimSpace(c.Zip),
	}
}

// OwnedBy matches the addresses of one user, optionally narrowed to a single id.
func OwnedBy(email string, id *int64) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Table: model.TableName, Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq},
	}

	if id != nil {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldID, Value: *id, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type AddressResponse struct {
	ID     int64  `json:"address_id"`
	Label  string `json:"label"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (r *AddressResponse) FromModel(m model.Address) {
	r.ID = m.ID
	r.Label = m.Label
	r.Street = m.Street
	r.City = m.City
	r.State = m.State
	r.Zip = m.Zip
}

type GetAddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

func (r *GetAddressesResponse) FromModels(models []model.Address) {
	r.Addresses = make([]AddressResponse, len(models))
	for i, mod := range models {
		r.Addresses[i].FromModel(mod)
	}
}

type CreateAddressResponse struct {
	ID int64 `json:"address_id"`
}
