package model

const (
	TableName  = "PaymentCard"
	EntityName = "card"

	FieldID               = "card_id"
	FieldRenterEmail      = "renter_email"
	FieldCardBrand        = "card_brand"
	FieldCardLast4        = "card_last4"
	FieldExpMonth         = "exp_month"
	FieldExpYear          = "exp_year"
	FieldBillingAddressID = "billing_address_id"

	last4Length = 4
)

type PaymentCard struct {
	ID               int64  `db:"card_id" generated:"true"`
	RenterEmail      string `db:"renter_email"`
	CardBrand        string `db:"card_brand"`
	CardLast4        string `db:"card_last4"`
	ExpMonth         int    `db:"exp_month"`
	ExpYear          int    `db:"exp_year"`
	BillingAddressID int64  `db:"billing_address_id"`
}

// Last4 keeps the trailing four characters of a submitted card number. Shorter input is kept whole.
func Last4(number string) string {
	runes := []rune(number)
	if len(runes) <= last4Length {
		return number
	}

	return string(runes[len(runes)-last4Length:])
}
