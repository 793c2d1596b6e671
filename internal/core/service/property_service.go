package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

// PropertyService manages sites, buildings, units and owners. Cross-entity
// references (building→site, unit→building, unit→owner) are checked before
// writes.
type PropertyService struct {
	sites     ports.SiteRepository
	buildings ports.BuildingRepository
	units     ports.UnitRepository
	owners    ports.OwnerRepository
	log       zerolog.Logger
}

func NewPropertyService(
	sites ports.SiteRepository,
	buildings ports.BuildingRepository,
	units ports.UnitRepository,
	owners ports.OwnerRepository,
	log zerolog.Logger,
) *PropertyService {
	return &PropertyService{
		sites:     sites,
		buildings: buildings,
		units:     units,
		owners:    owners,
		log:       log,
	}
}

// --- Sites ---

func (s *PropertyService) ListSites(ctx context.Context) ([]domain.Site, error) {
	return s.sites.List(ctx)
}

func (s *PropertyService) GetSite(ctx context.Context, id string) (*domain.Site, error) {
	return s.sites.FindByID(ctx, id)
}

func (s *PropertyService) CreateSite(ctx context.Context, in ports.SiteInput) (*domain.Site, error) {
	site := &domain.Site{
		ID:               uuid.NewString(),
		Name:             in.Name,
		AddressLine1:     in.AddressLine1,
		AddressLine2:     in.AddressLine2,
		City:             in.City,
		State:            in.State,
		Country:          in.Country,
		PostalCode:       in.PostalCode,
		ParkingAvailable: in.ParkingAvailable,
		Description:      in.Description,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.sites.Create(ctx, site); err != nil {
		return nil, err
	}
	s.log.Info().Str("site_id", site.ID).Str("name", site.Name).Msg("site created")
	return site, nil
}

func (s *PropertyService) UpdateSite(ctx context.Context, id string, in ports.SiteInput) (*domain.Site, error) {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	site.Name = in.Name
	site.AddressLine1 = in.AddressLine1
	site.AddressLine2 = in.AddressLine2
	site.City = in.City
	site.State = in.State
	site.Country = in.Country
	site.PostalCode = in.PostalCode
	site.ParkingAvailable = in.ParkingAvailable
	site.Description = in.Description

	if err := s.sites.Update(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *PropertyService) DeleteSite(ctx context.Context, id string) error {
	return s.sites.Delete(ctx, id)
}

// --- Buildings ---

func (s *PropertyService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return s.buildings.List(ctx)
}

func (s *PropertyService) ListBuildingsBySite(ctx context.Context, siteID string) ([]domain.Building, error) {
	if _, err := s.sites.FindByID(ctx, siteID); err != nil {
		return nil, err
	}
	return s.buildings.ListBySite(ctx, siteID)
}

func (s *PropertyService) CreateBuilding(ctx context.Context, in ports.BuildingInput) (*domain.Building, error) {
	if _, err := s.sites.FindByID(ctx, in.SiteID); err != nil {
		return nil, err
	}

	building := &domain.Building{
		ID:           uuid.NewString(),
		Name:         in.Name,
		FloorCount:   in.FloorCount,
		TotalAreaSqm: in.TotalAreaSqm,
		SiteID:       in.SiteID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.buildings.Create(ctx, building); err != nil {
		return nil, err
	}
	s.log.Info().Str("building_id", building.ID).Str("site_id", building.SiteID).Msg("building created")
	return building, nil
}

func (s *PropertyService) UpdateBuilding(ctx context.Context, id string, in ports.BuildingInput) (*domain.Building, error) {
	building, err := s.buildings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.SiteID != "" && in.SiteID != building.SiteID {
		if _, err := s.sites.FindByID(ctx, in.SiteID); err != nil {
			return nil, err
		}
		building.SiteID = in.SiteID
	}
	building.Name = in.Name
	building.FloorCount = in.FloorCount
	building.TotalAreaSqm = in.TotalAreaSqm

	if err := s.buildings.Update(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *PropertyService) DeleteBuilding(ctx context.Context, id string) error {
	return s.buildings.Delete(ctx, id)
}

// --- Units ---

func (s *PropertyService) ListUnits(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
	return s.units.List(ctx, filter)
}

func (s *PropertyService) GetUnit(ctx context.Context, id string) (*domain.BuildingUnit, error) {
	return s.units.FindByID(ctx, id)
}

func (s *PropertyService) CreateUnit(ctx context.Context, in ports.UnitInput) (*domain.BuildingUnit, error) {
	unitType, err := domain.ParseUnitType(in.Type)
	if err != nil {
		return nil, err
	}
	if _, err := s.buildings.FindByID(ctx, in.BuildingID); err != nil {
		return nil, err
	}

	unit := &domain.BuildingUnit{
		ID:           uuid.NewString(),
		UnitNumber:   in.UnitNumber,
		Type:         unitType,
		Floor:        in.Floor,
		AreaSqm:      in.AreaSqm,
		ParkingSlots: in.ParkingSlots,
		Price:        in.Price,
		Status:       domain.UnitAvailable,
		BuildingID:   in.BuildingID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, err
	}
	s.log.Info().Str("unit_id", unit.ID).Str("building_id", unit.BuildingID).Msg("unit created")
	return unit, nil
}

func (s *PropertyService) UpdateUnit(ctx context.Context, id string, in ports.UnitInput) (*domain.BuildingUnit, error) {
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != "" {
		unitType, err := domain.ParseUnitType(in.Type)
		if err != nil {
			return nil, err
		}
		unit.Type = unitType
	}
	if in.BuildingID != "" && in.BuildingID != unit.BuildingID {
		if _, err := s.buildings.FindByID(ctx, in.BuildingID); err != nil {
			return nil, err
		}
		unit.BuildingID = in.BuildingID
	}
	unit.UnitNumber = in.UnitNumber
	unit.Floor = in.Floor
	unit.AreaSqm = in.AreaSqm
	unit.ParkingSlots = in.ParkingSlots
	unit.Price = in.Price

	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *PropertyService) UpdateUnitStatus(ctx context.Context, id, status string) (*domain.BuildingUnit, error) {
	parsed, err := domain.ParseUnitStatus(status)
	if err != nil {
		return nil, err
	}
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.Status = parsed
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.log.Info().Str("unit_id", unit.ID).Str("status", string(parsed)).Msg("unit status updated")
	return unit, nil
}

func (s *PropertyService) AssignUnitOwner(ctx context.Context, unitID, ownerID string) (*domain.BuildingUnit, error) {
	unit, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	unit.OwnerID = owner.ID
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.log.Info().Str("unit_id", unit.ID).Str("owner_id", owner.ID).Msg("unit owner assigned")
	return unit, nil
}

func (s *PropertyService) DeleteUnit(ctx context.Context, id string) error {
	return s.units.Delete(ctx, id)
}

// --- Owners ---

func (s *PropertyService) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return s.owners.List(ctx)
}

func (s *PropertyService) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	return s.owners.FindByID(ctx, id)
}

func (s *PropertyService) CreateOwner(ctx context.Context, in ports.OwnerInput) (*domain.Owner, error) {
	owner := &domain.Owner{
		ID:            uuid.NewString(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		TaxNumber:     in.TaxNumber,
		Notes:         in.Notes,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.owners.Create(ctx, owner); err != nil {
		return nil, err
	}
	s.log.Info().Str("owner_id", owner.ID).Str("name", owner.Name).Msg("owner created")
	return owner, nil
}

func (s *PropertyService) UpdateOwner(ctx context.Context, id string, in ports.OwnerInput) (*domain.Owner, error) {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner.Name = in.Name
	owner.ContactPerson = in.ContactPerson
	owner.Email = in.Email
	owner.Phone = in.Phone
	owner.Address = in.Address
	owner.TaxNumber = in.TaxNumber
	owner.Notes = in.Notes

	if err := s.owners.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *PropertyService) DeleteOwner(ctx context.Context, id string) error {
	return s.owners.Delete(ctx, id)
}
