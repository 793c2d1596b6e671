package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when provisioning an account.
// Password arrives in plaintext and is hashed before it reaches storage.
type CreateUserInput struct {
	Username         string
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Role             string
	CompensationType string
	BaseSalary       float64
	CommissionRate   float64
}

// UpdateUserInput carries the mutable account fields. Empty strings leave the
// corresponding field unchanged; Password, when set, is re-hashed.
type UpdateUserInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Role             string
	CompensationType string
	BaseSalary       *float64
	CommissionRate   *float64
}

// UserService manages user accounts.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
