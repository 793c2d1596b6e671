package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
	"github.com/estatedesk/crm-api/internal/pkg/password"
)

// UserService manages account provisioning and maintenance. Only the incoming
// plaintext password is hashed here; it is never stored or logged.
type UserService struct {
	users  ports.UserRepository
	hasher *password.Hasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *password.Hasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	var compensation domain.CompensationType
	if in.CompensationType != "" {
		compensation, err = domain.ParseCompensationType(in.CompensationType)
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if in.Email != "" {
		if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if err != domain.ErrUserNotFound {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:               uuid.NewString(),
		Username:         in.Username,
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		PasswordHash:     hash,
		Role:             role,
		CompensationType: compensation,
		BaseSalary:       in.BaseSalary,
		CommissionRate:   in.CommissionRate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != "" {
		role, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	if in.CompensationType != "" {
		compensation, err := domain.ParseCompensationType(in.CompensationType)
		if err != nil {
			return nil, err
		}
		user.CompensationType = compensation
	}
	if in.Email != "" && in.Email != user.Email {
		if existing, err := s.users.FindByEmail(ctx, in.Email); err == nil && existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		} else if err != nil && err != domain.ErrUserNotFound {
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.BaseSalary != nil {
		user.BaseSalary = *in.BaseSalary
	}
	if in.CommissionRate != nil {
		user.CommissionRate = *in.CommissionRate
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
