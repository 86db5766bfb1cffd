package dto

import (
	"strings"

	"rental/internal/domains/card/model"
	gDto "rental/shared/dto"
)

// CreateCardRequest accepts either the full number or only its last digits; only the last four are stored.
type CreateCardRequest struct {
	CardBrand        string `json:"card_brand"         validate:"required,max=30"`
	CardNumber       string `json:"card_number"        validate:"required,max=19"`
	ExpMonth         int    `json:"exp_month"          validate:"required,min=1,max=12"`
	ExpYear          int    `json:"exp_year"           validate:"required,min=2000,max=9999"`
	BillingAddressID int64  `json:"billing_address_id" validate:"required"`
}

func (c *CreateCardRequest) ToModel(email string) model.PaymentCard {
	return model.PaymentCard{
		RenterEmail:      email,
		CardBrand:        strings.TrimSpace(c.CardBrand),
		CardLast4:        model.Last4(strings.TrimSpace(c.CardNumber)),
		ExpMonth:         c.ExpMonth,
		ExpYear:          c.ExpYear,
		BillingAddressID: c.BillingAddressID,
	}
}

// OwnedBy matches the cards of one renter, optionally narrowed to a single id.
func OwnedBy(email string, id *int64) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Table: model.TableName, Field: model.FieldRenterEmail, Value: email, Operator: gDto.FilterOperatorEq},
	}

	if id != nil {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldID, Value: *id, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

type CardResponse struct {
	ID               int64  `json:"card_id"`
	CardBrand        string `json:"card_brand"`
	CardLast4        string `json:"card_last4"`
	ExpMonth         int    `json:"exp_month"`
	ExpYear          int    `json:"exp_year"`
	BillingAddressID int64  `json:"billing_address_id"`
}

func (r *CardResponse) FromModel(m model.PaymentCard) {
	r.ID = m.ID
	r.CardBrand = m.CardBrand
	r.CardLast4 = m.CardLast4
	r.ExpMonth = m.ExpMonth
	r.ExpYear = m.ExpYear
	r.BillingAddressID = m.BillingAddressID
}

type GetCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}

func (r *GetCardsResponse) FromModels(models []model.PaymentCard) {
	r.Cards = make([]CardResponse, len(models))
	for i, mod := range models {
		r.Cards[i].FromModel(mod)
	}
}

type CreateCardResponse struct {
	ID int64 `json:"card_id"`
}
