package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatedesk/crm-api/internal/core/ports"
)

// LeadHandler exposes the sales-lead endpoints. All authenticated roles may
// use them.
type LeadHandler struct {
	leadService ports.LeadService
}

func NewLeadHandler(leadService ports.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type leadRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
}

type assignLeadRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type leadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r leadRequest) toInput() ports.LeadInput {
	return ports.LeadInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Source:    r.Source,
	}
}

// List returns all leads, newest first.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Lead
// @Failure      401  {object}  map[string]string
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.leadService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// Get returns a single lead.
//
// @Summary      Get lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  domain.Lead
// @Failure      404  {object}  map[string]string
// @Router       /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	lead, err := h.leadService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// Create registers a new lead. New leads always start in status NEW.
//
// @Summary      Create lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leadRequest  true  "Lead"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.leadService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lead)
}

// Update modifies a lead's contact fields.
//
// @Summary      Update lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Lead ID"
// @Param        body  body      leadRequest  true  "Lead"
// @Success      200   {object}  domain.Lead
// @Failure      404   {object}  map[string]string
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.leadService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// Delete removes a lead.
//
// @Summary      Delete lead
// @Tags         leads
// @Security     BearerAuth
// @Param        id  path  string  true  "Lead ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	if err := h.leadService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign hands a lead to a sales user.
//
// @Summary      Assign lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead ID"
// @Param        body  body      assignLeadRequest  true  "Assignee"
// @Success      200   {object}  domain.Lead
// @Failure      404   {object}  map[string]string
// @Router       /leads/{id}/assign [patch]
func (h *LeadHandler) Assign(c echo.Context) error {
	var req assignLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.leadService.Assign(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateStatus advances a lead through the pipeline.
//
// @Summary      Update lead status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead ID"
// @Param        body  body      leadStatusRequest  true  "New status"
// @Success      200   {object}  domain.Lead
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req leadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.leadService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}
