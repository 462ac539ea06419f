package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

// newTestStore connects to TEST_DATABASE_URL, which must point at a migrated database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := NewPool(context.Background(), dsn, PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewStore(pool)
}

func uniqueEmail() string { return uuid.NewString() + "@example.test" }

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &entity.User{Name: "Ann", Email: uniqueEmail(), Password: "hash"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	err := s.Users().Create(ctx, &entity.User{Name: "Dup", Email: u.Email, Password: "hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	codes := []string{uuid.NewString()[:8], uuid.NewString()[:8]}
	for i, code := range codes {
		require.NoError(t, s.Children().Create(ctx, &entity.Child{UserID: u.ID, Name: []string{"Bo", "Cy"}[i], AgeRange: "5-7", Code: code}))
	}
	exists, err := s.Children().ExistsByCode(ctx, codes[0])
	require.NoError(t, err)
	assert.True(t, exists)

	children, err := s.Children().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Bo", children[0].Name)
	assert.Equal(t, "Cy", children[1].Name)

	tok := &entity.AccessToken{ID: uuid.NewString(), UserID: u.ID, Name: "API Token", TokenHash: "h"}
	require.NoError(t, s.Tokens().Create(ctx, tok))
	require.NoError(t, s.Tokens().TouchLastUsed(ctx, tok.ID))
	got, err := s.Tokens().GetByID(ctx, tok.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastUsedAt)

	n, err := s.Tokens().DeleteByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = s.Tokens().GetByID(ctx, tok.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreWithinTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	email := uniqueEmail()

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(tx repository.Store) error {
		u := &entity.User{Name: "Ann", Email: email, Password: "hash"}
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.Users().ExistsByEmail(ctx, email)
	require.NoError(t, err)
	assert.False(t, exists)
}
