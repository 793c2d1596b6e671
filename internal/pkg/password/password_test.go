package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" || hash == "" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if !h.Verify("secret123", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("secret124", hash) {
		t.Fatalf("expected mismatching password to fail")
	}
	if h.Verify("", hash) {
		t.Fatalf("expected empty password to fail")
	}
}

func TestHasher_HashesAreSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if !h.Verify("same-password", h1) || !h.Verify("same-password", h2) {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestNewHasher_CostBounds(t *testing.T) {
	if got := NewHasher(0).Cost(); got != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", got)
	}
	if got := NewHasher(99).Cost(); got != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", got)
	}
	if got := NewHasher(bcrypt.MinCost).Cost(); got != bcrypt.MinCost {
		t.Fatalf("expected configured cost to stick, got %d", got)
	}
}
