package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// UserRepository is the persistence interface for user accounts. FindByUsername
// matches exactly and case-sensitively; it is the credential store lookup the
// auth service depends on.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
