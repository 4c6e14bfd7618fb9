package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/dmitrijs2005/passlocker/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordSalt: "s1", PasswordHash: "h1"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	_, err = repo.Create(ctx, &models.User{UserName: "alice"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	byLogin, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byLogin.ID)

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "s2", "h2"))
	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "s2", byID.PasswordSalt)
	assert.Equal(t, "h2", byID.PasswordHash)

	// returned values are copies
	byID.PasswordHash = "tampered"
	again, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", again.PasswordHash)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetUserByLogin(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), common.ErrorNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(ctx, u.ID, "s", "h"), common.ErrorNotFound)
}
