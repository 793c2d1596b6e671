package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
)

// LeadService manages the lead funnel. New leads always start in status NEW.
type LeadService struct {
	leads ports.LeadRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewLeadService(leads ports.LeadRepository, users ports.UserRepository, log zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, users: users, log: log}
}

func (s *LeadService) Create(ctx context.Context, in ports.LeadInput) (*domain.Lead, error) {
	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Source:    in.Source,
		Status:    domain.LeadNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.log.Info().Str("lead_id", lead.ID).Str("source", lead.Source).Msg("lead created")
	return lead, nil
}

func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.FindByID(ctx, id)
}

func (s *LeadService) Update(ctx context.Context, id string, in ports.LeadInput) (*domain.Lead, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.FirstName = in.FirstName
	lead.LastName = in.LastName
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Source = in.Source
	lead.UpdatedAt = time.Now().UTC()

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.leads.Delete(ctx, id)
}

// Assign hands the lead to a user. The assignee must exist.
func (s *LeadService) Assign(ctx context.Context, leadID, userID string) (*domain.Lead, error) {
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lead.AssignedTo = user.ID
	lead.UpdatedAt = time.Now().UTC()

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.log.Info().Str("lead_id", lead.ID).Str("assigned_to", user.ID).Msg("lead assigned")
	return lead, nil
}

// UpdateStatus moves the lead to a new funnel status. The status string must
// parse into the closed LeadStatus enumeration.
func (s *LeadService) UpdateStatus(ctx context.Context, leadID, status string) (*domain.Lead, error) {
	parsed, err := domain.ParseLeadStatus(status)
	if err != nil {
		return nil, err
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Status = parsed
	lead.UpdatedAt = time.Now().UTC()

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.log.Info().Str("lead_id", lead.ID).Str("status", string(parsed)).Msg("lead status updated")
	return lead, nil
}
