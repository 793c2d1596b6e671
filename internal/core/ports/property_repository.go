package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// UnitFilter narrows unit listings. Zero values mean "no filter".
type UnitFilter struct {
	Status     domain.UnitStatus
	Type       domain.UnitType
	BuildingID string
}

// SiteRepository is the persistence interface for sites.
type SiteRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Site, error)
	List(ctx context.Context) ([]domain.Site, error)
	Create(ctx context.Context, site *domain.Site) error
	Update(ctx context.Context, site *domain.Site) error
	Delete(ctx context.Context, id string) error
}

// BuildingRepository is the persistence interface for buildings.
type BuildingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Building, error)
	List(ctx context.Context) ([]domain.Building, error)
	ListBySite(ctx context.Context, siteID string) ([]domain.Building, error)
	Create(ctx context.Context, building *domain.Building) error
	Update(ctx context.Context, building *domain.Building) error
	Delete(ctx context.Context, id string) error
}

// UnitRepository is the persistence interface for building units.
type UnitRepository interface {
	FindByID(ctx context.Context, id string) (*domain.BuildingUnit, error)
	List(ctx context.Context, filter UnitFilter) ([]domain.BuildingUnit, error)
	Create(ctx context.Context, unit *domain.BuildingUnit) error
	Update(ctx context.Context, unit *domain.BuildingUnit) error
	Delete(ctx context.Context, id string) error
}

// OwnerRepository is the persistence interface for owners.
type OwnerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.Owner, error)
	Create(ctx context.Context, owner *domain.Owner) error
	Update(ctx context.Context, owner *domain.Owner) error
	Delete(ctx context.Context, id string) error
}
