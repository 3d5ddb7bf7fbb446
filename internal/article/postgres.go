package article

import (
	"context"
	"database/sql"

	"news-service/internal/db"

	"github.com/google/uuid"
)

// PostgresStore is the canonical article store.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(
	ctx context.Context,
	ownerID string,
	title string,
	content string,
) (Article, error) {

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return Article{}, err
	}

	var a Article
	var id uuid.UUID

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO articles (owner_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at, updated_at
	`, owner, title, content).Scan(&id, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return Article{}, err
	}

	a.ID = id.String()
	a.OwnerID = ownerID
	return a, nil
}

func (s *PostgresStore) FindByID(
	ctx context.Context,
	id string,
) (Article, error) {

	articleID, err := uuid.Parse(id)
	if err != nil {
		return Article{}, ErrNotFound
	}

	var a Article
	var aID, owner uuid.UUID

	err = s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, articleID).Scan(&aID, &owner, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return Article{}, ErrNotFound
	}
	if err != nil {
		return Article{}, err
	}

	a.ID = aID.String()
	a.OwnerID = owner.String()
	return a, nil
}

func (s *PostgresStore) FindByOwner(
	ctx context.Context,
	ownerID string,
) ([]Article, error) {

	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM articles
		WHERE owner_id = $1
		ORDER BY created_at
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		var a Article
		var aID, oID uuid.UUID

		if err := rows.Scan(&aID, &oID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}

		a.ID = aID.String()
		a.OwnerID = oID.String()
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func (s *PostgresStore) Update(
	ctx context.Context,
	id string,
	title string,
	content string,
) error {

	articleID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE articles
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
	`, articleID, title, content)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	articleID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM articles
		WHERE id = $1
	`, articleID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
