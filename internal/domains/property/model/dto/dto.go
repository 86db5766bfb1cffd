package dto

import (
	"mime/multipart"
	"strings"

	"github.com/shopspring/decimal"

	"rental/internal/domains/property/model"
	"rental/shared"
	gDto "rental/shared/dto"
)

type NeighborhoodRequest struct {
	CrimeRate     *decimal.Decimal `json:"crime_rate"     validate:"omitempty,dgte=0"`
	Schools       string           `json:"schools"        validate:"omitempty,max=255"`
	VacationHomes bool             `json:"vacation_homes"`
	Land          bool             `json:"land"`
}

// SavePropertyRequest creates a property when no id is given, or overwrites an existing one.
// Rooms is required for a house or apartment subtype row; a commercial row is always written.
// Neighborhood: absent keeps the stored row, present replaces it, present but empty removes it.
type SavePropertyRequest struct {
	Type          string               `json:"type"           validate:"required,oneof=house apartment commercial"`
	Street        string               `json:"street"         validate:"required,max=255"`
	City          string               `json:"city"           validate:"required,max=100"`
	State         string               `json:"state"          validate:"omitempty,max=50"`
	Zip           string               `json:"zip"            validate:"omitempty,max=20"`
	SqFootage     *int                 `json:"sq_ft"          validate:"omitempty,min=0"`
	Price         *decimal.Decimal     `json:"price"          validate:"required,dgte=0"`
	Description   string               `json:"description"`
	Availability  bool                 `json:"availability"`
	Image         string               `json:"image"          validate:"omitempty,url"`
	Rooms         *int                 `json:"rooms"          validate:"omitempty,min=0"`
	BuildingType  string               `json:"building_type"  validate:"omitempty,max=100"`
	BusinessTypes string               `json:"business_types" validate:"omitempty,max=255"`
	Neighborhood  *NeighborhoodRequest `json:"neighborhood"`
}

func (r *SavePropertyRequest) ToModel(id int64) model.Property {
	price := decimal.Zero
	if r.Price != nil {
		price = *r.Price
	}

	return model.Property{
		ID:           id,
		Type:         model.PropertyType(r.Type),
		Street:       strings.TrimSpace(r.Street),
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		Zip:          strings.TrimSpace(r.Zip),
		SqFootage:    r.SqFootage,
		Price:        price,
		Description:  r.Description,
		Availability: r.Availability,
		Image:        r.Image,
	}
}

// Subtype returns the subtype row to store for the submitted type, or nil when the fields it
// needs were not supplied.
func (r *SavePropertyRequest) Subtype(id int64) model.Subtype {
	switch model.PropertyType(r.Type) {
	case model.TypeHouse:
		if r.Rooms != nil {
			return model.House{PropertyID: id, Rooms: *r.Rooms}
		}
	case model.TypeApartment:
		if r.Rooms != nil {
			return model.Apartment{PropertyID: id, Rooms: *r.Rooms, BuildingType: r.BuildingType}
		}
	case model.TypeCommercial:
		return model.Commercial{PropertyID: id, BusinessTypes: r.BusinessTypes, Rooms: r.Rooms}
	}

	return nil
}

// NeighborhoodModel returns the row to store, or nil when the submitted neighborhood is empty.
func (r *SavePropertyRequest) NeighborhoodModel(id int64) *model.Neighborhood {
	if r.Neighborhood == nil {
		return nil
	}

	n := model.Neighborhood{
		PropertyID:    id,
		VacationHomes: r.Neighborhood.VacationHomes,
		Land:          r.Neighborhood.Land,
	}

	if r.Neighborhood.CrimeRate != nil {
		n.CrimeRate = decimal.NewNullDecimal(*r.Neighborhood.CrimeRate)
	}

	if schools := strings.TrimSpace(r.Neighborhood.Schools); schools != "" {
		n.Schools = &schools
	}

	if n.Empty() {
		return nil
	}

	return &n
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `validate:"-"`
}

type SearchRequest struct {
	City          string           `json:"city"`
	State         string           `json:"state"`
	Type          string           `json:"type"           validate:"omitempty,oneof=house apartment commercial"`
	MaxPrice      *decimal.Decimal `json:"max_price"      validate:"omitempty,dgte=0"`
	OnlyAvailable bool             `json:"only_available"`
}

// Empty reports whether no criterion was supplied.
func (s *SearchRequest) Empty() bool {
	return strings.TrimSpace(s.City) == "" && strings.TrimSpace(s.State) == "" && s.Type == "" && s.MaxPrice == nil && !s.OnlyAvailable
}

// ToFilter translates the criteria into a filter over the listing query. Empty criteria are
// omitted, and no criteria at all narrows the result to available properties.
func (s *SearchRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if city := strings.TrimSpace(s.City); city != "" {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldCity, Value: city, Operator: gDto.FilterOperatorLike})
	}

	if state := strings.TrimSpace(s.State); state != "" {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldState, Value: state, Operator: gDto.FilterOperatorLike})
	}

	if s.Type != "" {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldType, Value: s.Type, Operator: gDto.FilterOperatorEq})
	}

	if s.MaxPrice != nil {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldPrice, Value: *s.MaxPrice, Operator: gDto.FilterOperatorLessEq, ArgName: "max_price"})
	}

	if s.OnlyAvailable || s.Empty() {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldAvailability, Value: true, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

// SearchOrder is price ascending with the newest property first among equal prices.
func SearchOrder() []gDto.Sort {
	return []gDto.Sort{
		{Table: model.TableName, Field: model.FieldPrice, Dir: gDto.SortDirAsc},
		{Table: model.TableName, Field: model.FieldID, Dir: gDto.SortDirDesc},
	}
}

// NewestFirst orders by property id descending.
func NewestFirst() []gDto.Sort {
	return []gDto.Sort{{Table: model.TableName, Field: model.FieldID, Dir: gDto.SortDirDesc}}
}

type PropertyResponse struct {
	ID           int64  `json:"property_id"`
	Type         string `json:"type"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	SqFootage    *int   `json:"sq_ft"`
	Price        string `json:"price"`
	Description  string `json:"description"`
	Availability bool   `json:"availability"`
	Image        string `json:"image"`
}

func (p *PropertyResponse) FromModel(m model.Property) {
	p.ID = m.ID
	p.Type = string(m.Type)
	p.Street = m.Street
	p.City = m.City
	p.State = m.State
	p.Zip = m.Zip
	p.SqFootage = m.SqFootage
	p.Price = m.Price.StringFixed(2)
	p.Description = m.Description
	p.Availability = m.Availability
	p.Image = m.Image
}

// SubtypeResponse is empty when the property has no subtype row.
type SubtypeResponse struct {
	Type          string  `json:"type,omitempty"`
	Rooms         *int    `json:"rooms,omitempty"`
	BuildingType  *string `json:"building_type,omitempty"`
	BusinessTypes *string `json:"business_types,omitempty"`
}

func (s *SubtypeResponse) FromModel(sub model.Subtype) {
	switch v := sub.(type) {
	case model.House:
		s.Type = string(v.PropertyType())
		s.Rooms = &v.Rooms
	case model.Apartment:
		s.Type = string(v.PropertyType())
		s.Rooms = &v.Rooms
		s.BuildingType = &v.BuildingType
	case model.Commercial:
		s.Type = string(v.PropertyType())
		s.Rooms = v.Rooms
		s.BusinessTypes = &v.BusinessTypes
	}
}

type NeighborhoodResponse struct {
	CrimeRate     *string `json:"crime_rate"`
	Schools       *string `json:"schools"`
	VacationHomes bool    `json:"vacation_homes"`
	Land          bool    `json:"land"`
}

func (n *NeighborhoodResponse) FromModel(m model.Neighborhood) {
	if m.CrimeRate.Valid {
		rate := m.CrimeRate.Decimal.String()
		n.CrimeRate = &rate
	}

	n.Schools = m.Schools
	n.VacationHomes = m.VacationHomes
	n.Land = m.Land
}

// PropertyDetailResponse is the composed view of a property.
type PropertyDetailResponse struct {
	Property     PropertyResponse      `json:"property"`
	Subtype      SubtypeResponse       `json:"subtype"`
	Neighborhood *NeighborhoodResponse `json:"neighborhood"`
}

func (d *PropertyDetailResponse) FromModels(prop model.Property, sub model.Subtype, hood *model.Neighborhood) {
	d.Property.FromModel(prop)
	d.Subtype.FromModel(sub)

	if hood != nil {
		d.Neighborhood = &NeighborhoodResponse{}
		d.Neighborhood.FromModel(*hood)
	}
}

type ListingResponse struct {
	PropertyResponse
	CrimeRate     *string `json:"crime_rate"`
	Schools       *string `json:"schools"`
	VacationHomes *bool   `json:"vacation_homes"`
	Land          *bool   `json:"land"`
}

func (l *ListingResponse) FromModel(m model.Listing) {
	l.PropertyResponse.FromModel(m.Property)

	if m.CrimeRate.Valid {
		rate := m.CrimeRate.Decimal.String()
		l.CrimeRate = &rate
	}

	l.Schools = m.Schools
	l.VacationHomes = m.VacationHomes
	l.Land = m.Land
}

type GetListingsResponse struct {
	Properties []ListingResponse `json:"properties"`
	TotalPage  int               `json:"total_page"`
	TotalData  int               `json:"total_data"`
}

func (r *GetListingsResponse) FromModels(models []model.Listing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]ListingResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property) {
	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

type SavePropertyResponse struct {
	ID int64 `json:"property_id"`
}

type UploadImageResponse struct {
	Image string `json:"image"`
}
