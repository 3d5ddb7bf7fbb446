package article

import (
	"context"
	"fmt"
)

// Service scopes every article operation to the owning account. Update
// and delete re-check ownership before touching the store; a mismatch is
// reported as ErrNotFound so non-owners cannot probe for record
// existence.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListOwned returns the articles owned by ownerID, oldest first. An
// account with no articles gets an empty slice, not an error.
func (s *Service) ListOwned(ctx context.Context, ownerID string) ([]Article, error) {
	articles, err := s.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("article: list owned: %w", err)
	}
	return articles, nil
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	title string,
	content string,
) (Article, error) {
	a, err := s.store.Insert(ctx, ownerID, title, content)
	if err != nil {
		return Article{}, fmt.Errorf("article: create: %w", err)
	}
	return a, nil
}

// GetForEdit fetches an article for its owner. Articles owned by anyone
// else are indistinguishable from missing ones.
func (s *Service) GetForEdit(
	ctx context.Context,
	ownerID string,
	articleID string,
) (Article, error) {
	a, err := s.store.FindByID(ctx, articleID)
	if err != nil {
		return Article{}, err
	}

	if a.OwnerID != ownerID {
		return Article{}, ErrNotFound
	}

	return a, nil
}

func (s *Service) Update(
	ctx context.Context,
	ownerID string,
	articleID string,
	title string,
	content string,
) error {
	if _, err := s.GetForEdit(ctx, ownerID, articleID); err != nil {
		return err
	}

	return s.store.Update(ctx, articleID, title, content)
}

func (s *Service) Delete(
	ctx context.Context,
	ownerID string,
	articleID string,
) error {
	if _, err := s.GetForEdit(ctx, ownerID, articleID); err != nil {
		return err
	}

	return s.store.Delete(ctx, articleID)
}
