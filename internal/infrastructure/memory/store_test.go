package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/kidprofile-api/internal/domain/entity"
	"github.com/oksasatya/kidprofile-api/internal/domain/repository"
)

func TestUsers(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u := &entity.User{Name: "Ann", Email: "ann@x.com", Password: "hash"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.NotZero(t, u.CreatedAt)

	got, err := s.Users().GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", byID.Name)

	// email match is exact
	_, err = s.Users().GetByEmail(ctx, "ANN@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := s.Users().ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Users().ExistsByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	err = s.Users().Create(ctx, &entity.User{Name: "Other", Email: "ann@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestChildren(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u := &entity.User{Name: "Ann", Email: "ann@x.com"}
	require.NoError(t, s.Users().Create(ctx, u))

	for _, c := range []*entity.Child{
		{UserID: u.ID, Name: "Bo", AgeRange: "5-7", Code: "AAAAAA"},
		{UserID: u.ID, Name: "Cy", AgeRange: "8-10", Code: "BBBBBB"},
	} {
		require.NoError(t, s.Children().Create(ctx, c))
		assert.NotEmpty(t, c.ID)
	}

	err := s.Children().Create(ctx, &entity.Child{UserID: u.ID, Name: "Dup", Code: "AAAAAA"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = s.Children().Create(ctx, &entity.Child{UserID: "missing", Name: "Orphan", Code: "CCCCCC"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := s.Children().ExistsByCode(ctx, "BBBBBB")
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := s.Children().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bo", list[0].Name)
	assert.Equal(t, "Cy", list[1].Name)

	empty, err := s.Children().ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTokens(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	u := &entity.User{Name: "Ann", Email: "ann@x.com"}
	require.NoError(t, s.Users().Create(ctx, u))

	require.NoError(t, s.Tokens().Create(ctx, &entity.AccessToken{ID: "t1", UserID: u.ID, TokenHash: "h1"}))
	require.NoError(t, s.Tokens().Create(ctx, &entity.AccessToken{ID: "t2", UserID: u.ID, TokenHash: "h2"}))
	assert.ErrorIs(t, s.Tokens().Create(ctx, &entity.AccessToken{ID: "t1", UserID: u.ID}), repository.ErrDuplicate)

	require.NoError(t, s.Tokens().TouchLastUsed(ctx, "t1"))
	tok, err := s.Tokens().GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, tok.LastUsedAt)

	n, err := s.Tokens().DeleteByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = s.Tokens().GetByID(ctx, "t2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.Tokens().TouchLastUsed(ctx, "t2"), repository.ErrNotFound)
}

func TestWithinTxRollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(tx repository.Store) error {
		u := &entity.User{Name: "Ann", Email: "ann@x.com"}
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		if err := tx.Children().Create(ctx, &entity.Child{UserID: u.ID, Name: "Bo", Code: "AAAAAA"}); err != nil {
			return err
		}
		// nested calls join the outer transaction
		return tx.WithinTx(ctx, func(repository.Store) error { return boom })
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.Users().ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = s.Children().ExistsByCode(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWithinTxCommits(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var id string
	err := s.WithinTx(ctx, func(tx repository.Store) error {
		u := &entity.User{Name: "Ann", Email: "ann@x.com"}
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		id = u.ID
		// writes are visible inside the transaction
		_, err := tx.Users().GetByID(ctx, u.ID)
		return err
	})
	require.NoError(t, err)

	u, err := s.Users().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
}

func TestWithinTxCanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.WithinTx(ctx, func(repository.Store) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
