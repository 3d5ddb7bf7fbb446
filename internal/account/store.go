package account

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups that match no account. Callers must
// check it explicitly; stores never signal absence with a nil result.
var ErrNotFound = errors.New("account: not found")

// Store defines how accounts are persisted and retrieved.
type Store interface {
	Insert(ctx context.Context, username, passwordHash string) (Account, error)
	FindByUsername(ctx context.Context, username string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
}
