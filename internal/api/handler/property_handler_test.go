package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

// stubPropertyService implements ports.PropertyService; only the methods a
// test injects are callable.
type stubPropertyService struct {
	listUnitsFn  func(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error)
	createUnitFn func(ctx context.Context, in ports.UnitInput) (*domain.BuildingUnit, error)
}

func (s *stubPropertyService) ListSites(ctx context.Context) ([]domain.Site, error) {
	return nil, nil
}

func (s *stubPropertyService) GetSite(ctx context.Context, id string) (*domain.Site, error) {
	return nil, nil
}

func (s *stubPropertyService) CreateSite(ctx context.Context, in ports.SiteInput) (*domain.Site, error) {
	return nil, nil
}

func (s *stubPropertyService) UpdateSite(ctx context.Context, id string, in ports.SiteInput) (*domain.Site, error) {
	return nil, nil
}

func (s *stubPropertyService) DeleteSite(ctx context.Context, id string) error {
	return nil
}

func (s *stubPropertyService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return nil, nil
}

func (s *stubPropertyService) ListBuildingsBySite(ctx context.Context, siteID string) ([]domain.Building, error) {
	return nil, nil
}

func (s *stubPropertyService) CreateBuilding(ctx context.Context, in ports.BuildingInput) (*domain.Building, error) {
	return nil, nil
}

func (s *stubPropertyService) UpdateBuilding(ctx context.Context, id string, in ports.BuildingInput) (*domain.Building, error) {
	return nil, nil
}

func (s *stubPropertyService) DeleteBuilding(ctx context.Context, id string) error {
	return nil
}

func (s *stubPropertyService) ListUnits(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
	return s.listUnitsFn(ctx, filter)
}

func (s *stubPropertyService) GetUnit(ctx context.Context, id string) (*domain.BuildingUnit, error) {
	return nil, nil
}

func (s *stubPropertyService) CreateUnit(ctx context.Context, in ports.UnitInput) (*domain.BuildingUnit, error) {
	return s.createUnitFn(ctx, in)
}

func (s *stubPropertyService) UpdateUnit(ctx context.Context, id string, in ports.UnitInput) (*domain.BuildingUnit, error) {
	return nil, nil
}

func (s *stubPropertyService) UpdateUnitStatus(ctx context.Context, id, status string) (*domain.BuildingUnit, error) {
	return nil, nil
}

func (s *stubPropertyService) AssignUnitOwner(ctx context.Context, unitID, ownerID string) (*domain.BuildingUnit, error) {
	return nil, nil
}

func (s *stubPropertyService) DeleteUnit(ctx context.Context, id string) error {
	return nil
}

func (s *stubPropertyService) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	return nil, nil
}

func (s *stubPropertyService) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	return nil, nil
}

func (s *stubPropertyService) CreateOwner(ctx context.Context, in ports.OwnerInput) (*domain.Owner, error) {
	return nil, nil
}

func (s *stubPropertyService) UpdateOwner(ctx context.Context, id string, in ports.OwnerInput) (*domain.Owner, error) {
	return nil, nil
}

func (s *stubPropertyService) DeleteOwner(ctx context.Context, id string) error {
	return nil
}

func newUnitListContext(t *testing.T, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/units"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPropertyHandler_ListUnits_Filters(t *testing.T) {
	stub := &stubPropertyService{
		listUnitsFn: func(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
			if filter.Status != domain.UnitAvailable {
				t.Fatalf("expected status AVAILABLE, got %q", filter.Status)
			}
			if filter.Type != domain.UnitOffice {
				t.Fatalf("expected type OFFICE, got %q", filter.Type)
			}
			if filter.BuildingID != "bld-1" {
				t.Fatalf("expected building bld-1, got %q", filter.BuildingID)
			}
			return []domain.BuildingUnit{{ID: "unit-1"}}, nil
		},
	}
	h := NewPropertyHandler(stub)

	c, rec := newUnitListContext(t, "?status=AVAILABLE&type=OFFICE&buildingId=bld-1")
	if err := h.ListUnits(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPropertyHandler_ListUnits_NoFilters(t *testing.T) {
	stub := &stubPropertyService{
		listUnitsFn: func(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
			if filter != (ports.UnitFilter{}) {
				t.Fatalf("expected empty filter, got %+v", filter)
			}
			return nil, nil
		},
	}
	h := NewPropertyHandler(stub)

	c, rec := newUnitListContext(t, "")
	if err := h.ListUnits(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPropertyHandler_ListUnits_InvalidStatus(t *testing.T) {
	stub := &stubPropertyService{
		listUnitsFn: func(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPropertyHandler(stub)

	c, _ := newUnitListContext(t, "?status=HAUNTED")
	if err := h.ListUnits(c); err != domain.ErrInvalidUnitStatus {
		t.Fatalf("expected ErrInvalidUnitStatus, got %v", err)
	}
}

func TestPropertyHandler_ListUnits_InvalidType(t *testing.T) {
	stub := &stubPropertyService{
		listUnitsFn: func(ctx context.Context, filter ports.UnitFilter) ([]domain.BuildingUnit, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPropertyHandler(stub)

	c, _ := newUnitListContext(t, "?type=CASTLE")
	if err := h.ListUnits(c); err != domain.ErrInvalidUnitType {
		t.Fatalf("expected ErrInvalidUnitType, got %v", err)
	}
}

func TestPropertyHandler_CreateUnit(t *testing.T) {
	stub := &stubPropertyService{
		createUnitFn: func(ctx context.Context, in ports.UnitInput) (*domain.BuildingUnit, error) {
			if in.UnitNumber != "12B" || in.Type != "APARTMENT" || in.BuildingID != "bld-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.BuildingUnit{ID: "unit-1", Status: domain.UnitAvailable}, nil
		},
	}
	h := NewPropertyHandler(stub)

	c, rec := newLeadContext(t, http.MethodPost, "/units",
		`{"unitNumber":"12B","type":"APARTMENT","buildingId":"bld-1","areaSqm":80,"price":250000}`)
	if err := h.CreateUnit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
