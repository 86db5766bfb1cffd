package model

const (
	TableName  = "Address"
	EntityName = "address"

	FieldID     = "address_id"
	FieldEmail  = "email"
	FieldLabel  = "label"
	FieldStreet = "street"
	FieldCity   = "city"
	FieldState  = "state"
	FieldZip    = "zip"
)

type Address struct {
	ID     int64  `db:"address_id" generated:"true"`
	Email  string `db:"email"`
	Label  string `db:"label"`
	Street string `db:"street"`
	City   string `db:"city"`
	State  string `db:"state"`
	Zip    string `db:"zip"`
}
