package article

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups that match no article.
var ErrNotFound = errors.New("article: not found")

// Store defines how articles are persisted and retrieved.
type Store interface {
	Insert(ctx context.Context, ownerID, title, content string) (Article, error)
	FindByID(ctx context.Context, id string) (Article, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Article, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}
