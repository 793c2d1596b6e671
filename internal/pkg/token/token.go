// Package token issues and verifies the signed bearer tokens used for
// stateless authentication. Tokens are HS256 JWTs carrying the username as
// subject plus a role claim; expiry is a fixed duration from issuance.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/estatedesk/crm-api/internal/core/domain"
)

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its expiry. Externally indistinguishable from ErrTokenInvalid; kept
	// separate for logging.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers malformed, tampered, or wrongly signed tokens.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the token payload. Subject (RegisteredClaims) holds the username.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide secret. The secret is
// constructor state; rotating it invalidates every previously issued token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

const defaultTTL = 24 * time.Hour

// NewIssuer returns an Issuer signing with secret and expiring tokens ttl
// after issuance. A non-positive ttl falls back to 24h.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for subject with the given role and returns it together
// with its lifetime.
func (i *Issuer) Issue(subject string, role domain.Role) (string, time.Duration, error) {
	now := i.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, i.ttl, nil
}

// Verify parses and validates a token, returning its claims. Expired tokens
// yield ErrTokenExpired; any other failure (bad signature, wrong algorithm,
// malformed structure, unknown role) yields ErrTokenInvalid.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	if _, err := domain.ParseRole(string(claims.Role)); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
