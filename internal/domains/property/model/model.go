package model

import (
	"github.com/shopspring/decimal"
)

const (
	TableName  = "Property Info"
	EntityName = "property"

	FieldID           = "property_id"
	FieldType         = "type"
	FieldStreet       = "street"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZip          = "zip"
	FieldSqFootage    = "Sq_Footage"
	FieldPrice        = "price"
	FieldDescription  = "description"
	FieldAvailability = "availability"
	FieldImage        = "image"
)

// PropertyType selects which subtype table, if any, holds the type specific attributes.
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeCommercial PropertyType = "commercial"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCommercial:
		return true
	default:
		return false
	}
}

type Property struct {
	ID           int64           `db:"property_id" generated:"true"`
	Type         PropertyType    `db:"type"`
	Street       string          `db:"street"`
	City         string          `db:"city"`
	State        string          `db:"state"`
	Zip          string          `db:"zip"`
	SqFootage    *int            `db:"Sq_Footage"`
	Price        decimal.Decimal `db:"price"`
	Description  string          `db:"description"`
	Availability bool            `db:"availability"`
	Image        string          `db:"image"`
}

// Exists reports whether the row was found; Repository.Get returns the zero value otherwise.
func (p Property) Exists() bool {
	return p.ID != 0
}

// Listing is a property joined with its optional neighborhood, as shown in search results and the
// agent's property list. Neighborhood columns are null for properties without one.
type Listing struct {
	Property
	CrimeRate     decimal.NullDecimal `db:"crime_rate"     table:"Neighborhood"`
	Schools       *string             `db:"schools"        table:"Neighborhood"`
	VacationHomes *bool               `db:"vacation_homes" table:"Neighborhood"`
	Land          *bool               `db:"land"           table:"Neighborhood"`
}

func (Listing) GetJoinQuery() string {
	return ` LEFT JOIN "Neighborhood" ON "Neighborhood"."property_id" = "Property Info"."property_id"`
}
