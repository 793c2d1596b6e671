package ports

import (
	"context"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

// LoginResult is what a successful authentication hands back to the transport
// layer. ExpiresInMs is the token lifetime in milliseconds.
type LoginResult struct {
	AccessToken string
	ExpiresInMs int64
	Role        domain.Role
}

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
