package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// LeadRepository is the persistence interface for leads.
type LeadRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Create(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id string) error
}
