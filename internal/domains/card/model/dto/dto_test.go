package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental/internal/domains/card/model/dto"
)

func TestCreateCardRequest_ToModel(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "full number", number: "4111111111111111", want: "1111"},
		{name: "already four digits", number: "4242", want: "4242"},
		{name: "shorter than four", number: "42", want: "42"},
		{name: "surrounding spaces", number: " 5500005555555559 ", want: "5559"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateCardRequest{
				CardBrand:        "visa",
				CardNumber:       tt.number,
				ExpMonth:         4,
				ExpYear:          2030,
				BillingAddressID: 2,
			}

			card := req.ToModel("renter@example.com")

			assert.Equal(t, tt.want, card.CardLast4)
			assert.Equal(t, "renter@example.com", card.RenterEmail)
			assert.Equal(t, int64(2), card.BillingAddressID)
		})
	}
}

func TestCardResponse_FromModel(t *testing.T) {
	req := dto.CreateCardRequest{CardBrand: "amex", CardNumber: "378282246310005", ExpMonth: 12, ExpYear: 2031, BillingAddressID: 9}

	var res dto.CardResponse
	res.FromModel(req.ToModel("renter@example.com"))

	assert.Equal(t, "0005", res.CardLast4)
	assert.Equal(t, "amex", res.CardBrand)
	assert.Equal(t, 12, res.ExpMonth)
}
