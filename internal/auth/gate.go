package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrDenied is returned when a submitted secret does not match the
	// configured admin secret.
	ErrDenied = errors.New("invalid admin secret")
)

// Gate controls access to catalog mutations. A successful Login issues an
// opaque bearer token standing for the logged-in state; Logout revokes it.
//
// The shipped implementation is a plain shared-secret check with no server
// verification behind it. It is an access-control placeholder, not a
// security boundary; callers must not treat the check as cryptographically
// meaningful. Keeping it behind this interface lets a real credential flow
// replace it without touching the rest of the app.
type Gate interface {
	Login(secret string) (string, error)
	Logout(token string)
	Authenticated(token string) bool
}

type staticSecretGate struct {
	secret string

	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewStaticSecretGate creates a Gate that compares submitted secrets
// byte-exact against the given value. There is no expiry, no rate limiting
// and no hashing.
func NewStaticSecretGate(secret string) Gate {
	return &staticSecretGate{
		secret: secret,
		tokens: make(map[string]struct{}),
	}
}

// Login validates the secret and returns a fresh session token. A mismatch
// returns ErrDenied and leaves the gate state unchanged.
func (g *staticSecretGate) Login(secret string) (string, error) {
	if secret != g.secret {
		return "", ErrDenied
	}

	token := uuid.New().String()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.tokens[token] = struct{}{}

	return token, nil
}

// Logout revokes the given token. Revoking an unknown token is a no-op;
// Logout always succeeds.
func (g *staticSecretGate) Logout(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.tokens, token)
}

// Authenticated reports whether the token belongs to an active session.
func (g *staticSecretGate) Authenticated(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.tokens[token]
	return ok
}
