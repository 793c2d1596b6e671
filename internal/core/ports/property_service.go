package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// SiteInput carries the writable site fields for create and update.
type SiteInput struct {
	Name             string
	AddressLine1     string
	AddressLine2     string
	City             string
	State            string
	Country          string
	PostalCode       string
	ParkingAvailable bool
	Description      string
}

// BuildingInput carries the writable building fields for create and update.
type BuildingInput struct {
	Name         string
	FloorCount   int
	TotalAreaSqm float64
	SiteID       string
}

// UnitInput carries the writable building-unit fields for create and update.
type UnitInput struct {
	UnitNumber   string
	Type         string
	Floor        int
	AreaSqm      float64
	ParkingSlots int
	Price        float64
	BuildingID   string
}

// OwnerInput carries the writable owner fields for create and update.
type OwnerInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	TaxNumber     string
	Notes         string
}

// PropertyService manages the property portfolio: sites, buildings, units and
// their owners.
type PropertyService interface {
	ListSites(ctx context.Context) ([]domain.Site, error)
	GetSite(ctx context.Context, id string) (*domain.Site, error)
	CreateSite(ctx context.Context, in SiteInput) (*domain.Site, error)
	UpdateSite(ctx context.Context, id string, in SiteInput) (*domain.Site, error)
	DeleteSite(ctx context.Context, id string) error

	ListBuildings(ctx context.Context) ([]domain.Building, error)
	ListBuildingsBySite(ctx context.Context, siteID string) ([]domain.Building, error)
	CreateBuilding(ctx context.Context, in BuildingInput) (*domain.Building, error)
	UpdateBuilding(ctx context.Context, id string, in BuildingInput) (*domain.Building, error)
	DeleteBuilding(ctx context.Context, id string) error

	ListUnits(ctx context.Context, filter UnitFilter) ([]domain.BuildingUnit, error)
	GetUnit(ctx context.Context, id string) (*domain.BuildingUnit, error)
	CreateUnit(ctx context.Context, in UnitInput) (*domain.BuildingUnit, error)
	UpdateUnit(ctx context.Context, id string, in UnitInput) (*domain.BuildingUnit, error)
	UpdateUnitStatus(ctx context.Context, id, status string) (*domain.BuildingUnit, error)
	AssignUnitOwner(ctx context.Context, unitID, ownerID string) (*domain.BuildingUnit, error)
	DeleteUnit(ctx context.Context, id string) error

	ListOwners(ctx context.Context) ([]domain.Owner, error)
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	CreateOwner(ctx context.Context, in OwnerInput) (*domain.Owner, error)
	UpdateOwner(ctx context.Context, id string, in OwnerInput) (*domain.Owner, error)
	DeleteOwner(ctx context.Context, id string) error
}
