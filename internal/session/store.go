package session

import (
	"context"
	"time"
)

// Session represents per-client server-side state. A session starts
// anonymous (empty AccountID); a successful login binds the account
// identifier, which is the only transition out of the anonymous state.
type Session struct {
	SessionID string    // unique session identifier
	AccountID string    // references accounts.id; empty while anonymous
	CreatedAt time.Time
	ExpiresAt time.Time // absolute expiry time
}

// Authenticated reports whether an account has been bound to the session.
func (s *Session) Authenticated() bool {
	return s.AccountID != ""
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
// Get returns (nil, nil) for an unknown session ID.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
