package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

type stubSiteRepo struct{ sites map[string]*domain.Site }

func newStubSiteRepo() *stubSiteRepo { return &stubSiteRepo{sites: make(map[string]*domain.Site)} }

func (r *stubSiteRepo) FindByID(_ context.Context, id string) (*domain.Site, error) {
	s, ok := r.sites[id]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSiteRepo) List(_ context.Context) ([]domain.Site, error) {
	out := make([]domain.Site, 0, len(r.sites))
	for _, s := range r.sites {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSiteRepo) Create(_ context.Context, site *domain.Site) error {
	clone := *site
	r.sites[site.ID] = &clone
	return nil
}

func (r *stubSiteRepo) Update(_ context.Context, site *domain.Site) error {
	if _, ok := r.sites[site.ID]; !ok {
		return domain.ErrSiteNotFound
	}
	clone := *site
	r.sites[site.ID] = &clone
	return nil
}

func (r *stubSiteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sites[id]; !ok {
		return domain.ErrSiteNotFound
	}
	delete(r.sites, id)
	return nil
}

type stubBuildingRepo struct{ buildings map[string]*domain.Building }

func newStubBuildingRepo() *stubBuildingRepo {
	return &stubBuildingRepo{buildings: make(map[string]*domain.Building)}
}

func (r *stubBuildingRepo) FindByID(_ context.Context, id string) (*domain.Building, error) {
	b, ok := r.buildings[id]
	if !ok {
		return nil, domain.ErrBuildingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBuildingRepo) List(_ context.Context) ([]domain.Building, error) {
	out := make([]domain.Building, 0, len(r.buildings))
	for _, b := range r.buildings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBuildingRepo) ListBySite(_ context.Context, siteID string) ([]domain.Building, error) {
	var out []domain.Building
	for _, b := range r.buildings {
		if b.SiteID == siteID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBuildingRepo) Create(_ context.Context, building *domain.Building) error {
	clone := *building
	r.buildings[building.ID] = &clone
	return nil
}

func (r *stubBuildingRepo) Update(_ context.Context, building *domain.Building) error {
	if _, ok := r.buildings[building.ID]; !ok {
		return domain.ErrBuildingNotFound
	}
	clone := *building
	r.buildings[building.ID] = &clone
	return nil
}

func (r *stubBuildingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.buildings[id]; !ok {
		return domain.ErrBuildingNotFound
	}
	delete(r.buildings, id)
	return nil
}

type stubUnitRepo struct{ units map[string]*domain.BuildingUnit }

func newStubUnitRepo() *stubUnitRepo {
	return &stubUnitRepo{units: make(map[string]*domain.BuildingUnit)}
}

func (r *stubUnitRepo) FindByID(_ context.Context, id string) (*domain.BuildingUnit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUnitRepo) List(_ context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
	var out []domain.BuildingUnit
	for _, u := range r.units {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Type != "" && u.Type != filter.Type {
			continue
		}
		if filter.BuildingID != "" && u.BuildingID != filter.BuildingID {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUnitRepo) Create(_ context.Context, unit *domain.BuildingUnit) error {
	clone := *unit
	r.units[unit.ID] = &clone
	return nil
}

func (r *stubUnitRepo) Update(_ context.Context, unit *domain.BuildingUnit) error {
	if _, ok := r.units[unit.ID]; !ok {
		return domain.ErrUnitNotFound
	}
	clone := *unit
	r.units[unit.ID] = &clone
	return nil
}

func (r *stubUnitRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.units[id]; !ok {
		return domain.ErrUnitNotFound
	}
	delete(r.units, id)
	return nil
}

type stubOwnerRepo struct{ owners map[string]*domain.Owner }

func newStubOwnerRepo() *stubOwnerRepo {
	return &stubOwnerRepo{owners: make(map[string]*domain.Owner)}
}

func (r *stubOwnerRepo) FindByID(_ context.Context, id string) (*domain.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, domain.ErrOwnerNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOwnerRepo) List(_ context.Context) ([]domain.Owner, error) {
	out := make([]domain.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOwnerRepo) Create(_ context.Context, owner *domain.Owner) error {
	clone := *owner
	r.owners[owner.ID] = &clone
	return nil
}

func (r *stubOwnerRepo) Update(_ context.Context, owner *domain.Owner) error {
	if _, ok := r.owners[owner.ID]; !ok {
		return domain.ErrOwnerNotFound
	}
	clone := *owner
	r.owners[owner.ID] = &clone
	return nil
}

func (r *stubOwnerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.owners[id]; !ok {
		return domain.ErrOwnerNotFound
	}
	delete(r.owners, id)
	return nil
}

type propertyFixture struct {
	svc       *PropertyService
	sites     *stubSiteRepo
	buildings *stubBuildingRepo
	units     *stubUnitRepo
	owners    *stubOwnerRepo
}

func newPropertyFixture() *propertyFixture {
	f := &propertyFixture{
		sites:     newStubSiteRepo(),
		buildings: newStubBuildingRepo(),
		units:     newStubUnitRepo(),
		owners:    newStubOwnerRepo(),
	}
	f.svc = NewPropertyService(f.sites, f.buildings, f.units, f.owners, zerolog.Nop())
	return f
}

func (f *propertyFixture) createUnit(t *testing.T) *domain.BuildingUnit {
	t.Helper()
	ctx := context.Background()

	site, err := f.svc.CreateSite(ctx, ports.SiteInput{Name: "Riverside", AddressLine1: "1 Main St", City: "Lisbon", Country: "PT"})
	if err != nil {
		t.Fatalf("create site: %v", err)
	}
	building, err := f.svc.CreateBuilding(ctx, ports.BuildingInput{Name: "Tower A", FloorCount: 10, TotalAreaSqm: 5000, SiteID: site.ID})
	if err != nil {
		t.Fatalf("create building: %v", err)
	}
	unit, err := f.svc.CreateUnit(ctx, ports.UnitInput{UnitNumber: "A-101", Type: "APARTMENT", Floor: 1, AreaSqm: 80, Price: 250000, BuildingID: building.ID})
	if err != nil {
		t.Fatalf("create unit: %v", err)
	}
	return unit
}

func TestPropertyService_CreateBuilding_UnknownSite(t *testing.T) {
	f := newPropertyFixture()

	_, err := f.svc.CreateBuilding(context.Background(), ports.BuildingInput{Name: "Orphan", SiteID: "missing"})
	if err != domain.ErrSiteNotFound {
		t.Fatalf("expected ErrSiteNotFound, got %v", err)
	}
}

func TestPropertyService_CreateUnit_Defaults(t *testing.T) {
	f := newPropertyFixture()

	unit := f.createUnit(t)
	if unit.Status != domain.UnitAvailable {
		t.Fatalf("expected new unit AVAILABLE, got %s", unit.Status)
	}
	if unit.OwnerID != "" {
		t.Fatalf("new unit must have no owner")
	}
}

func TestPropertyService_CreateUnit_InvalidType(t *testing.T) {
	f := newPropertyFixture()

	_, err := f.svc.CreateUnit(context.Background(), ports.UnitInput{UnitNumber: "X", Type: "CASTLE", BuildingID: "irrelevant"})
	if err != domain.ErrInvalidUnitType {
		t.Fatalf("expected ErrInvalidUnitType, got %v", err)
	}
}

func TestPropertyService_UpdateUnitStatus(t *testing.T) {
	f := newPropertyFixture()
	unit := f.createUnit(t)

	updated, err := f.svc.UpdateUnitStatus(context.Background(), unit.ID, "RESERVED")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != domain.UnitReserved {
		t.Fatalf("expected RESERVED, got %s", updated.Status)
	}

	if _, err := f.svc.UpdateUnitStatus(context.Background(), unit.ID, "HAUNTED"); err != domain.ErrInvalidUnitStatus {
		t.Fatalf("expected ErrInvalidUnitStatus, got %v", err)
	}
}

func TestPropertyService_AssignUnitOwner(t *testing.T) {
	f := newPropertyFixture()
	unit := f.createUnit(t)

	owner, err := f.svc.CreateOwner(context.Background(), ports.OwnerInput{Name: "Acme Holdings"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}

	updated, err := f.svc.AssignUnitOwner(context.Background(), unit.ID, owner.ID)
	if err != nil {
		t.Fatalf("assign owner failed: %v", err)
	}
	if updated.OwnerID != owner.ID {
		t.Fatalf("expected owner %s, got %q", owner.ID, updated.OwnerID)
	}

	if _, err := f.svc.AssignUnitOwner(context.Background(), unit.ID, "missing"); err != domain.ErrOwnerNotFound {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestPropertyService_ListUnits_Filters(t *testing.T) {
	f := newPropertyFixture()
	unit := f.createUnit(t)

	units, err := f.svc.ListUnits(context.Background(), ports.UnitFilter{Status: domain.UnitAvailable})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(units) != 1 || units[0].ID != unit.ID {
		t.Fatalf("expected the available unit, got %+v", units)
	}

	units, err = f.svc.ListUnits(context.Background(), ports.UnitFilter{Status: domain.UnitSold})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(units) != 0 {
		t.Fatalf("expected no sold units, got %d", len(units))
	}
}

func TestPropertyService_ListBuildingsBySite_UnknownSite(t *testing.T) {
	f := newPropertyFixture()

	if _, err := f.svc.ListBuildingsBySite(context.Background(), "missing"); err != domain.ErrSiteNotFound {
		t.Fatalf("expected ErrSiteNotFound, got %v", err)
	}
}
