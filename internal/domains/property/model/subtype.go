package model

import (
	"github.com/shopspring/decimal"
)

const (
	HouseTableName        = "House"
	ApartmentTableName    = "Apartment"
	CommercialTableName   = "Commercial Building"
	NeighborhoodTableName = "Neighborhood"

	FieldRooms         = "No_of_Rooms"
	FieldBuildingType  = "Building_Type"
	FieldBusinessTypes = "Business_Types"
)

// Subtype is the closed set of type specific rows: House, Apartment or Commercial.
// A property has at most one, and only the one matching its type.
type Subtype interface {
	PropertyType() PropertyType
	GetPropertyID() int64
	sealed()
}

type House struct {
	PropertyID int64 `db:"property_id"`
	Rooms      int   `db:"No_of_Rooms"`
}

type Apartment struct {
	PropertyID   int64  `db:"property_id"`
	Rooms        int    `db:"No_of_Rooms"`
	BuildingType string `db:"Building_Type"`
}

type Commercial struct {
	PropertyID    int64  `db:"property_id"`
	BusinessTypes string `db:"Business_Types"`
	Rooms         *int   `db:"No_of_Rooms"`
}

func (House) PropertyType() PropertyType      { return TypeHouse }
func (Apartment) PropertyType() PropertyType  { return TypeApartment }
func (Commercial) PropertyType() PropertyType { return TypeCommercial }

func (h House) GetPropertyID() int64      { return h.PropertyID }
func (a Apartment) GetPropertyID() int64  { return a.PropertyID }
func (c Commercial) GetPropertyID() int64 { return c.PropertyID }

func (House) sealed()      {}
func (Apartment) sealed()  {}
func (Commercial) sealed() {}

// SubtypeTable returns the table backing a property type.
func SubtypeTable(t PropertyType) string {
	switch t {
	case TypeHouse:
		return HouseTableName
	case TypeApartment:
		return ApartmentTableName
	case TypeCommercial:
		return CommercialTableName
	default:
		return ""
	}
}

type Neighborhood struct {
	PropertyID    int64               `db:"property_id"`
	CrimeRate     decimal.NullDecimal `db:"crime_rate"`
	Schools       *string             `db:"schools"`
	VacationHomes bool                `db:"vacation_homes"`
	Land          bool                `db:"land"`
}

// Empty reports whether no attribute carries a value, in which case no row should be stored.
func (n Neighborhood) Empty() bool {
	return !n.CrimeRate.Valid && (n.Schools == nil || *n.Schools == "") && !n.VacationHomes && !n.Land
}
