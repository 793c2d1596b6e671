package token

import (
	"strings"
	"testing"
	"time"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	tok, expiresIn, err := iss.Issue("alice", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}
	if expiresIn != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", expiresIn)
	}

	claims, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("expected role MANAGER, got %q", claims.Role)
	}
}

func TestIssuer_ExpiryBoundary(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)

	issuedAt := time.Now().UTC()
	iss.now = func() time.Time { return issuedAt }

	tok, _, err := iss.Issue("bob", domain.RoleSales)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// One second before expiry the token is accepted.
	iss.now = func() time.Time { return issuedAt.Add(time.Minute - time.Second) }
	if _, err := iss.Verify(tok); err != nil {
		t.Fatalf("expected token valid just before expiry: %v", err)
	}

	// One second after expiry it is rejected with the expiry sentinel.
	iss.now = func() time.Time { return issuedAt.Add(time.Minute + time.Second) }
	if _, err := iss.Verify(tok); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestIssuer_TamperedToken(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	tok, _, err := iss.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one byte inside the payload segment.
	raw := []byte(tok)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}

	if _, err := iss.Verify(string(raw)); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	tok, _, err := NewIssuer("secret-a", time.Hour).Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(tok); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestIssuer_MalformedToken(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := iss.Verify(tok); err != ErrTokenInvalid {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}

func TestIssuer_UnknownRoleRejected(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	tok, _, err := iss.Issue("mallory", domain.Role("SUPERUSER"))
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := iss.Verify(tok); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}

func TestIssuer_DefaultTTL(t *testing.T) {
	iss := NewIssuer("secret", 0)
	if iss.TTL() != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %v", iss.TTL())
	}

	tok, expiresIn, err := iss.Issue("alice", domain.RoleAdmin)
	if err != nil || tok == "" {
		t.Fatalf("issue failed: %v", err)
	}
	if expiresIn != 24*time.Hour {
		t.Fatalf("expected 24h lifetime, got %v", expiresIn)
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("expected three JWT segments, got %d", len(parts))
	}
}
