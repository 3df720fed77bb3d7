package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "admin", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", saved.Username)

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, saved.ID, user.ID)
		assert.Equal(t, "hash-1", user.PasswordHash)
	})

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "admin", user.Username)
	})

	t.Run("Missing", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByID(ctx, saved.ID+1)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "admin", "hash-2")
		var uv *UniqueViolationError
		require.ErrorAs(t, err, &uv)
		assert.Equal(t, "admin", uv.Fields["username"])
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		user, err := writeRepo.UpdatePassword(ctx, saved.ID, "hash-3")
		require.NoError(t, err)
		assert.Equal(t, "hash-3", user.PasswordHash)

		_, err = writeRepo.UpdatePassword(ctx, saved.ID+1, "hash-4")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
