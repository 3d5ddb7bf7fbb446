package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// ---- fake store ----

type fakeStore struct {
	byUsername map[string]Account

	inserts   int
	insertErr error
	lookupErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byUsername: map[string]Account{}}
}

func (f *fakeStore) Insert(ctx context.Context, username, passwordHash string) (Account, error) {
	if f.insertErr != nil {
		return Account{}, f.insertErr
	}
	a := Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	f.byUsername[username] = a
	f.inserts++
	return a, nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string) (Account, error) {
	if f.lookupErr != nil {
		return Account{}, f.lookupErr
	}
	a, ok := f.byUsername[username]
	if !ok {
		return Account{}, ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (Account, error) {
	for _, a := range f.byUsername {
		if a.ID == id {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

// ---- tests ----

func TestRegisterThenAuthenticate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "alice", created.Username)

	authed, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, created.ID, authed.ID)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	stored := store.byUsername["alice"]
	require.NotEqual(t, "pw1", stored.PasswordHash)
	require.NoError(t, VerifyPassword(stored.PasswordHash, "pw1"))
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw1")
	require.ErrorIs(t, err, ErrEmptyUsername)

	_, err = svc.Register(ctx, "alice", "")
	require.ErrorIs(t, err, ErrEmptyPassword)

	require.Zero(t, store.inserts)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, ErrUsernameTaken)

	// the conflict left the collection untouched
	require.Equal(t, 1, store.inserts)
	require.NoError(t, VerifyPassword(store.byUsername["alice"].PasswordHash, "pw1"))
	require.Error(t, VerifyPassword(store.byUsername["alice"].PasswordHash, "pw2"))
}

func TestRegisterMapsUniqueViolationToConflict(t *testing.T) {
	// a concurrent signup can slip past the existence check; the unique
	// index rejects the second insert
	store := newFakeStore()
	store.insertErr = &pq.Error{Code: "23505"}
	svc := NewService(store)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterPropagatesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.lookupErr = errors.New("connection reset")
	svc := NewService(store)

	_, err := svc.Register(context.Background(), "alice", "pw1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUsernameTaken)
	require.Zero(t, store.inserts)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "alice", "pw2")
	_, unknownUser := svc.Authenticate(ctx, "bob", "pw2")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthenticateIsRepeatable(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		a, err := svc.Authenticate(ctx, "alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, created.ID, a.ID)
	}
}
