package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
	"github.com/estatedesk/crm-api/internal/pkg/password"
	"github.com/estatedesk/crm-api/internal/pkg/token"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A nil throttle
// disables throttling.
type LoginThrottle interface {
	// TooManyFailures reports whether the username has exceeded the allowed
	// number of failed attempts within the current window.
	TooManyFailures(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// VerifyRunner executes a CPU-bound job, typically on a bounded worker pool so
// bcrypt verifications cannot saturate the request-handling goroutines. A nil
// runner executes inline.
type VerifyRunner interface {
	Do(ctx context.Context, job func()) error
}

// AuthService is the login orchestrator: credential lookup, password
// verification, token issuance. It holds no per-request state.
type AuthService struct {
	users    ports.UserRepository
	hasher   *password.Hasher
	issuer   *token.Issuer
	throttle LoginThrottle
	runner   VerifyRunner
	log      zerolog.Logger
}

// NewAuthService wires the orchestrator. throttle and runner may be nil.
func NewAuthService(
	users ports.UserRepository,
	hasher *password.Hasher,
	issuer *token.Issuer,
	throttle LoginThrottle,
	runner VerifyRunner,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		throttle: throttle,
		runner:   runner,
		log:      log,
	}
}

// Login authenticates username/password and returns a signed bearer token.
// Unknown username and wrong password are indistinguishable to the caller:
// both come back as domain.ErrInvalidCredentials. The two cases are logged
// with different detail server-side only. Store failures surface as wrapped
// internal errors, never as credential failures.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (*ports.LoginResult, error) {
	if username == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			// Throttle store trouble must not lock everyone out.
			s.log.Warn().Err(err).Msg("login throttle unavailable, continuing")
		} else if blocked {
			s.log.Warn().Str("username", username).Msg("login blocked by throttle")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.log.Debug().Str("username", username).Msg("login failed: unknown username")
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: find user: %w", err)
	}

	ok, err := s.verify(ctx, plaintext, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth: verify password: %w", err)
	}
	if !ok {
		s.log.Debug().Str("username", username).Msg("login failed: password mismatch")
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	tok, expiresIn, err := s.issuer.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken: tok,
		ExpiresInMs: expiresIn.Milliseconds(),
		Role:        user.Role,
	}, nil
}

// verify runs the bcrypt comparison, through the worker pool when configured.
func (s *AuthService) verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if s.runner == nil {
		return s.hasher.Verify(plaintext, hash), nil
	}
	var ok bool
	if err := s.runner.Do(ctx, func() {
		ok = s.hasher.Verify(plaintext, hash)
	}); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
