package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/ports"
	"github.com/estatedesk/crm-api/internal/pkg/password"
)

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, password.NewHasher(bcrypt.MinCost), zerolog.Nop())
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "MANAGER",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatalf("plaintext must not be stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "bob",
		Password: "pass",
		Role:     "SUPERUSER",
	})
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	in := ports.CreateUserInput{Username: "bob", Password: "pass", Role: "SALES"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "bob", Email: "bob@example.com", Password: "pass", Role: "SALES",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "robert", Email: "bob@example.com", Password: "pass", Role: "SALES",
	}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_RoleAndPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "carol", Password: "oldpass", Role: "SALES",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldHash := user.PasswordHash

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{
		Role:     "MANAGER",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("expected role MANAGER, got %s", updated.Role)
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("expected password hash to change")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "dave", Password: "pass", Role: "ADMIN",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
