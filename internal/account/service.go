package account

import (
	"context"
	"errors"
	"fmt"

	"news-service/internal/db"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("account: invalid credentials")

	ErrUsernameTaken = errors.New("account: username taken")

	ErrEmptyUsername = errors.New("account: username must not be empty")
	ErrEmptyPassword = errors.New("account: password must not be empty")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a new account with a bcrypt-hashed credential. The
// username existence check and the insert are separate statements; the
// unique index on accounts.username backstops the race between them.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (Account, error) {

	if username == "" {
		return Account{}, ErrEmptyUsername
	}
	if password == "" {
		return Account{}, ErrEmptyPassword
	}

	// 1. Reject usernames that are already taken
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return Account{}, ErrUsernameTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return Account{}, fmt.Errorf("account: register lookup: %w", err)
	}

	// 2. Hash password
	hash, err := HashPassword(password)
	if err != nil {
		return Account{}, fmt.Errorf("account: hash password: %w", err)
	}

	// 3. Insert account
	created, err := s.store.Insert(ctx, username, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			// lost the race against a concurrent signup
			return Account{}, ErrUsernameTaken
		}
		return Account{}, fmt.Errorf("account: insert: %w", err)
	}

	return created, nil
}

// Authenticate verifies a username/password pair. Registration does not
// log the account in; callers bind the returned account into a session.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (Account, error) {

	a, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		// hide whether the user exists or not
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("account: authenticate lookup: %w", err)
	}

	if err := VerifyPassword(a.PasswordHash, password); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return a, nil
}
