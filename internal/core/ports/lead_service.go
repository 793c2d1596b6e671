package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// LeadInput carries the writable lead fields for create and update.
type LeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Source    string
}

// LeadService manages the sales-lead lifecycle.
type LeadService interface {
	Create(ctx context.Context, in LeadInput) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Get(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, id string, in LeadInput) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, leadID, userID string) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, leadID, status string) (*domain.Lead, error)
}
