package account

import (
	"context"
	"database/sql"

	"news-service/internal/db"

	"github.com/google/uuid"
)

// PostgresStore is the canonical account store.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(
	ctx context.Context,
	username string,
	passwordHash string,
) (Account, error) {

	var a Account
	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`, username, passwordHash).Scan(&id, &a.Username, &a.PasswordHash, &a.CreatedAt)

	if err != nil {
		return Account{}, err
	}

	a.ID = id.String()
	return a, nil
}

func (s *PostgresStore) FindByUsername(
	ctx context.Context,
	username string,
) (Account, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM accounts
		WHERE username = $1
	`, username))
}

func (s *PostgresStore) FindByID(
	ctx context.Context,
	id string,
) (Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}

	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM accounts
		WHERE id = $1
	`, accountID))
}

func (s *PostgresStore) scanOne(row *sql.Row) (Account, error) {
	var a Account
	var id uuid.UUID

	err := row.Scan(&id, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}

	a.ID = id.String()
	return a, nil
}
