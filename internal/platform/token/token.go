// Package token signs and verifies the bearer tokens used for
// authentication. Tokens are HS256 JWTs carrying the user ID and role.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret is returned by NewManager when no signing secret is
	// configured.
	ErrMissingSecret = errors.New("token secret is not configured")

	// ErrInvalidPayload is returned by Sign when the user ID or role is
	// missing.
	ErrInvalidPayload = errors.New("token payload requires a user id and role")

	// ErrTokenExpired indicates a well-formed token whose expiry has
	// elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a signature mismatch, malformed structure
	// or missing required claims.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID    uint
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SignOption overrides signing defaults for a single call.
type SignOption func(*signConfig)

type signConfig struct {
	expiry time.Duration
}

// WithExpiry overrides the manager's default expiry for one token.
func WithExpiry(d time.Duration) SignOption {
	return func(sc *signConfig) { sc.expiry = d }
}

// Manager signs and verifies tokens with a process-wide secret.
type Manager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates a Manager. The secret is required; expiry is the
// default token lifetime.
func NewManager(secret string, expiry time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Manager{secret: []byte(secret), expiry: expiry}, nil
}

// Sign creates a signed token for the given user and role.
func (m *Manager) Sign(userID uint, role string, opts ...SignOption) (string, error) {
	if userID == 0 || role == "" {
		return "", ErrInvalidPayload
	}

	sc := signConfig{expiry: m.expiry}
	for _, opt := range opts {
		opt(&sc)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(sc.expiry).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims. Failures are
// distinguishable: errors.Is(err, ErrTokenExpired) for elapsed expiry,
// ErrTokenInvalid for everything else.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok || sub <= 0 {
		return nil, fmt.Errorf("%w: missing sub claim", ErrTokenInvalid)
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrTokenInvalid)
	}

	out := &Claims{UserID: uint(sub), Role: role}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// IsExpired reports whether a token can no longer be used. Any verification
// failure, including a malformed or tampered token, reads as expired;
// callers needing to distinguish use Verify directly.
func (m *Manager) IsExpired(tokenStr string) bool {
	_, err := m.Verify(tokenStr)
	return err != nil
}
