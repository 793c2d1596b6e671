package domain

import "time"

// UnitType classifies a building unit.
type UnitType string

const (
	UnitApartment UnitType = "APARTMENT"
	UnitOffice    UnitType = "OFFICE"
	UnitShop      UnitType = "SHOP"
	UnitMixed     UnitType = "MIXED"
)

// ParseUnitType converts a raw string into a UnitType.
func ParseUnitType(s string) (UnitType, error) {
	switch UnitType(s) {
	case UnitApartment, UnitOffice, UnitShop, UnitMixed:
		return UnitType(s), nil
	}
	return "", ErrInvalidUnitType
}

// UnitStatus tracks the commercial state of a building unit.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "AVAILABLE"
	UnitReserved  UnitStatus = "RESERVED"
	UnitLeased    UnitStatus = "LEASED"
	UnitSold      UnitStatus = "SOLD"
)

// ParseUnitStatus converts a raw string into a UnitStatus.
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch UnitStatus(s) {
	case UnitAvailable, UnitReserved, UnitLeased, UnitSold:
		return UnitStatus(s), nil
	}
	return "", ErrInvalidUnitStatus
}

// Site is a physical location holding one or more buildings.
type Site struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Name             string    `json:"name" bson:"name"`
	AddressLine1     string    `json:"address_line1" bson:"address_line1"`
	AddressLine2     string    `json:"address_line2,omitempty" bson:"address_line2,omitempty"`
	City             string    `json:"city" bson:"city"`
	State            string    `json:"state,omitempty" bson:"state,omitempty"`
	Country          string    `json:"country" bson:"country"`
	PostalCode       string    `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	ParkingAvailable bool      `json:"parking_available" bson:"parking_available"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Building belongs to a site and contains units.
type Building struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	FloorCount   int       `json:"floor_count" bson:"floor_count"`
	TotalAreaSqm float64   `json:"total_area_sqm" bson:"total_area_sqm"`
	SiteID       string    `json:"site_id" bson:"site_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// BuildingUnit is the sellable/leasable unit inside a building.
// OwnerID is empty until an owner is assigned.
type BuildingUnit struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	UnitNumber   string     `json:"unit_number" bson:"unit_number"`
	Type         UnitType   `json:"type" bson:"type"`
	Floor        int        `json:"floor" bson:"floor"`
	AreaSqm      float64    `json:"area_sqm" bson:"area_sqm"`
	ParkingSlots int        `json:"parking_slots" bson:"parking_slots"`
	Price        float64    `json:"price" bson:"price"`
	Status       UnitStatus `json:"status" bson:"status"`
	BuildingID   string     `json:"building_id" bson:"building_id"`
	OwnerID      string     `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// Owner is a landlord or property holder linked to building units.
type Owner struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	ContactPerson string    `json:"contact_person,omitempty" bson:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	TaxNumber     string    `json:"tax_number,omitempty" bson:"tax_number,omitempty"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
