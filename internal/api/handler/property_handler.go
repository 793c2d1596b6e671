package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

// PropertyHandler exposes the portfolio endpoints: sites, buildings, building
// units and owners.
type PropertyHandler struct {
	propertyService ports.PropertyService
}

func NewPropertyHandler(propertyService ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type siteRequest struct {
	Name             string `json:"name" validate:"required"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	City             string `json:"city"`
	State            string `json:"state"`
	Country          string `json:"country"`
	PostalCode       string `json:"postalCode"`
	ParkingAvailable bool   `json:"parkingAvailable"`
	Description      string `json:"description"`
}

type buildingRequest struct {
	Name         string  `json:"name" validate:"required"`
	FloorCount   int     `json:"floorCount" validate:"gte=0"`
	TotalAreaSqm float64 `json:"totalAreaSqm" validate:"gte=0"`
	SiteID       string  `json:"siteId" validate:"required"`
}

type unitRequest struct {
	UnitNumber   string  `json:"unitNumber" validate:"required"`
	Type         string  `json:"type" validate:"required"`
	Floor        int     `json:"floor"`
	AreaSqm      float64 `json:"areaSqm" validate:"gte=0"`
	ParkingSlots int     `json:"parkingSlots" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	BuildingID   string  `json:"buildingId" validate:"required"`
}

type unitStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type unitOwnerRequest struct {
	OwnerID string `json:"ownerId" validate:"required"`
}

type ownerRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TaxNumber     string `json:"taxNumber"`
	Notes         string `json:"notes"`
}

func (r siteRequest) toInput() ports.SiteInput {
	return ports.SiteInput{
		Name:             r.Name,
		AddressLine1:     r.AddressLine1,
		AddressLine2:     r.AddressLine2,
		City:             r.City,
		State:            r.State,
		Country:          r.Country,
		PostalCode:       r.PostalCode,
		ParkingAvailable: r.ParkingAvailable,
		Description:      r.Description,
	}
}

func (r buildingRequest) toInput() ports.BuildingInput {
	return ports.BuildingInput{
		Name:         r.Name,
		FloorCount:   r.FloorCount,
		TotalAreaSqm: r.TotalAreaSqm,
		SiteID:       r.SiteID,
	}
}

func (r unitRequest) toInput() ports.UnitInput {
	return ports.UnitInput{
		UnitNumber:   r.UnitNumber,
		Type:         r.Type,
		Floor:        r.Floor,
		AreaSqm:      r.AreaSqm,
		ParkingSlots: r.ParkingSlots,
		Price:        r.Price,
		BuildingID:   r.BuildingID,
	}
}

func (r ownerRequest) toInput() ports.OwnerInput {
	return ports.OwnerInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		TaxNumber:     r.TaxNumber,
		Notes:         r.Notes,
	}
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// ---- Sites ----

// ListSites returns all sites.
//
// @Summary      List sites
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Site
// @Router       /sites [get]
func (h *PropertyHandler) ListSites(c echo.Context) error {
	sites, err := h.propertyService.ListSites(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

// GetSite returns a single site.
//
// @Summary      Get site
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Site ID"
// @Success      200  {object}  domain.Site
// @Failure      404  {object}  map[string]string
// @Router       /sites/{id} [get]
func (h *PropertyHandler) GetSite(c echo.Context) error {
	site, err := h.propertyService.GetSite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// CreateSite registers a new site.
//
// @Summary      Create site
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      siteRequest  true  "Site"
// @Success      201   {object}  domain.Site
// @Router       /sites [post]
func (h *PropertyHandler) CreateSite(c echo.Context) error {
	var req siteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	site, err := h.propertyService.CreateSite(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, site)
}

// UpdateSite modifies a site.
//
// @Summary      Update site
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Site ID"
// @Param        body  body      siteRequest  true  "Site"
// @Success      200   {object}  domain.Site
// @Failure      404   {object}  map[string]string
// @Router       /sites/{id} [put]
func (h *PropertyHandler) UpdateSite(c echo.Context) error {
	var req siteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	site, err := h.propertyService.UpdateSite(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// DeleteSite removes a site.
//
// @Summary      Delete site
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Site ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sites/{id} [delete]
func (h *PropertyHandler) DeleteSite(c echo.Context) error {
	if err := h.propertyService.DeleteSite(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSiteBuildings returns the buildings on a site.
//
// @Summary      List buildings on a site
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Site ID"
// @Success      200  {array}  domain.Building
// @Failure      404  {object}  map[string]string
// @Router       /sites/{id}/buildings [get]
func (h *PropertyHandler) ListSiteBuildings(c echo.Context) error {
	buildings, err := h.propertyService.ListBuildingsBySite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buildings)
}

// ---- Buildings ----

// ListBuildings returns all buildings.
//
// @Summary      List buildings
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Building
// @Router       /buildings [get]
func (h *PropertyHandler) ListBuildings(c echo.Context) error {
	buildings, err := h.propertyService.ListBuildings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buildings)
}

// CreateBuilding registers a new building on an existing site.
//
// @Summary      Create building
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      buildingRequest  true  "Building"
// @Success      201   {object}  domain.Building
// @Failure      404   {object}  map[string]string
// @Router       /buildings [post]
func (h *PropertyHandler) CreateBuilding(c echo.Context) error {
	var req buildingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	building, err := h.propertyService.CreateBuilding(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, building)
}

// UpdateBuilding modifies a building.
//
// @Summary      Update building
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Building ID"
// @Param        body  body      buildingRequest  true  "Building"
// @Success      200   {object}  domain.Building
// @Failure      404   {object}  map[string]string
// @Router       /buildings/{id} [put]
func (h *PropertyHandler) UpdateBuilding(c echo.Context) error {
	var req buildingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	building, err := h.propertyService.UpdateBuilding(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, building)
}

// DeleteBuilding removes a building.
//
// @Summary      Delete building
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Building ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /buildings/{id} [delete]
func (h *PropertyHandler) DeleteBuilding(c echo.Context) error {
	if err := h.propertyService.DeleteBuilding(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- Building units ----

// ListUnits returns building units, optionally filtered by status, type or
// building via query parameters.
//
// @Summary      List building units
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        status      query    string  false  "Unit status"
// @Param        type        query    string  false  "Unit type"
// @Param        buildingId  query    string  false  "Building ID"
// @Success      200  {array}  domain.BuildingUnit
// @Router       /units [get]
func (h *PropertyHandler) ListUnits(c echo.Context) error {
	filter := ports.UnitFilter{BuildingID: c.QueryParam("buildingId")}
	if raw := c.QueryParam("status"); raw != "" {
		status, err := domain.ParseUnitStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = status
	}
	if raw := c.QueryParam("type"); raw != "" {
		unitType, err := domain.ParseUnitType(raw)
		if err != nil {
			return err
		}
		filter.Type = unitType
	}
	units, err := h.propertyService.ListUnits(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// GetUnit returns a single building unit.
//
// @Summary      Get building unit
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Unit ID"
// @Success      200  {object}  domain.BuildingUnit
// @Failure      404  {object}  map[string]string
// @Router       /units/{id} [get]
func (h *PropertyHandler) GetUnit(c echo.Context) error {
	unit, err := h.propertyService.GetUnit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// CreateUnit registers a new unit in an existing building. New units always
// start AVAILABLE.
//
// @Summary      Create building unit
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      unitRequest  true  "Unit"
// @Success      201   {object}  domain.BuildingUnit
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /units [post]
func (h *PropertyHandler) CreateUnit(c echo.Context) error {
	var req unitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	unit, err := h.propertyService.CreateUnit(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, unit)
}

// UpdateUnit modifies a building unit.
//
// @Summary      Update building unit
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Unit ID"
// @Param        body  body      unitRequest  true  "Unit"
// @Success      200   {object}  domain.BuildingUnit
// @Failure      404   {object}  map[string]string
// @Router       /units/{id} [put]
func (h *PropertyHandler) UpdateUnit(c echo.Context) error {
	var req unitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	unit, err := h.propertyService.UpdateUnit(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// UpdateUnitStatus moves a unit through its lifecycle.
//
// @Summary      Update unit status
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Unit ID"
// @Param        body  body      unitStatusRequest  true  "New status"
// @Success      200   {object}  domain.BuildingUnit
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /units/{id}/status [patch]
func (h *PropertyHandler) UpdateUnitStatus(c echo.Context) error {
	var req unitStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	unit, err := h.propertyService.UpdateUnitStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// AssignUnitOwner records which owner holds a unit.
//
// @Summary      Assign unit owner
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Unit ID"
// @Param        body  body      unitOwnerRequest  true  "Owner"
// @Success      200   {object}  domain.BuildingUnit
// @Failure      404   {object}  map[string]string
// @Router       /units/{id}/owner [patch]
func (h *PropertyHandler) AssignUnitOwner(c echo.Context) error {
	var req unitOwnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	unit, err := h.propertyService.AssignUnitOwner(c.Request().Context(), c.Param("id"), req.OwnerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// DeleteUnit removes a building unit.
//
// @Summary      Delete building unit
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Unit ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /units/{id} [delete]
func (h *PropertyHandler) DeleteUnit(c echo.Context) error {
	if err := h.propertyService.DeleteUnit(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ---- Owners ----

// ListOwners returns all owners.
//
// @Summary      List owners
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Owner
// @Router       /owners [get]
func (h *PropertyHandler) ListOwners(c echo.Context) error {
	owners, err := h.propertyService.ListOwners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owners)
}

// GetOwner returns a single owner.
//
// @Summary      Get owner
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Owner ID"
// @Success      200  {object}  domain.Owner
// @Failure      404  {object}  map[string]string
// @Router       /owners/{id} [get]
func (h *PropertyHandler) GetOwner(c echo.Context) error {
	owner, err := h.propertyService.GetOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

// CreateOwner registers a new owner.
//
// @Summary      Create owner
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ownerRequest  true  "Owner"
// @Success      201   {object}  domain.Owner
// @Router       /owners [post]
func (h *PropertyHandler) CreateOwner(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := h.propertyService.CreateOwner(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, owner)
}

// UpdateOwner modifies an owner.
//
// @Summary      Update owner
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Owner ID"
// @Param        body  body      ownerRequest  true  "Owner"
// @Success      200   {object}  domain.Owner
// @Failure      404   {object}  map[string]string
// @Router       /owners/{id} [put]
func (h *PropertyHandler) UpdateOwner(c echo.Context) error {
	var req ownerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := h.propertyService.UpdateOwner(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, owner)
}

// DeleteOwner removes an owner.
//
// @Summary      Delete owner
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Owner ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /owners/{id} [delete]
func (h *PropertyHandler) DeleteOwner(c echo.Context) error {
	if err := h.propertyService.DeleteOwner(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
