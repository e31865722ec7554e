package users_test

import (
	"context"
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/users"
	user_mocks "github.com/hanksha/boardgame-club-backend/users/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = users.User{
	ID:        "u1",
	Username:  "alice",
	Email:     "alice@example.com",
	FirstName: "Alice",
	LastName:  "Martin",
	Role:      users.RoleBasicUser,
}

func TestCachedDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("caches by username and id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user_mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Times(1)
		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

		dir := users.NewCachedDirectory(repo, time.Minute)

		first, err := dir.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		second, err := dir.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		byID, err := dir.FindByID(ctx, "u1")
		require.NoError(t, err)

		require.Equal(t, alice, first)
		require.Equal(t, alice, second)
		require.Equal(t, alice, byID)
	})

	t.Run("misses are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := user_mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByID(ctx, "missing").Return(users.User{}, users.ErrUserNotFound).Times(2)

		dir := users.NewCachedDirectory(repo, time.Minute)

		_, err := dir.FindByID(ctx, "missing")
		require.ErrorIs(t, err, users.ErrUserNotFound)
		_, err = dir.FindByID(ctx, "missing")
		require.ErrorIs(t, err, users.ErrUserNotFound)
	})
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Alice Martin", alice.DisplayName())
	require.Equal(t, "bob", users.User{Username: "bob"}.DisplayName())
	require.Equal(t, "Carol", users.User{Username: "carol", FirstName: "Carol"}.DisplayName())
}
