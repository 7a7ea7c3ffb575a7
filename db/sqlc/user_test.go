package db

import (
	"context"
	"testing"
	"time"

	"github.com/cleancycle/cleancycle/util"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T, role string) User {
	hashedPassword, err := util.HashPassword(util.RandomString(10))
	require.NoError(t, err)

	arg := CreateUserParams{
		Email:          util.RandomEmail(),
		HashedPassword: hashedPassword,
		FullName:       util.RandomName(),
		Phone:          util.RandomPhone(),
		Role:           role,
	}

	user, err := testStore.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.Equal(t, arg.FullName, user.FullName)
	require.Equal(t, arg.Role, user.Role)
	require.NotZero(t, user.ID)
	require.NotZero(t, user.CreatedAt)
	require.True(t, user.PasswordChangedAt.IsZero())

	return user
}

func TestCreateUser(t *testing.T) {
	createRandomUser(t, util.UserRole)
}

func TestGetUser(t *testing.T) {
	user1 := createRandomUser(t, util.UserRole)
	user2, err := testStore.GetUser(context.Background(), user1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, user2)

	require.Equal(t, user1.ID, user2.ID)
	require.Equal(t, user1.Email, user2.Email)
	require.Equal(t, user1.FullName, user2.FullName)
	require.Equal(t, user1.Role, user2.Role)
	require.WithinDuration(t, user1.CreatedAt, user2.CreatedAt, time.Second)
}

func TestGetUserByEmail(t *testing.T) {
	user1 := createRandomUser(t, util.WorkerRole)
	user2, err := testStore.GetUserByEmail(context.Background(), user1.Email)
	require.NoError(t, err)
	require.NotEmpty(t, user2)

	require.Equal(t, user1.ID, user2.ID)
	require.Equal(t, user1.Email, user2.Email)
}

func TestGetUserNotFound(t *testing.T) {
	_, err := testStore.GetUser(context.Background(), -1)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdateUserOnlyFullName(t *testing.T) {
	oldUser := createRandomUser(t, util.UserRole)

	newFullName := util.RandomName()
	updatedUser, err := testStore.UpdateUser(context.Background(), UpdateUserParams{
		ID: oldUser.ID,
		FullName: pgtype.Text{
			String: newFullName,
			Valid:  true,
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, oldUser.FullName, updatedUser.FullName)
	require.Equal(t, newFullName, updatedUser.FullName)
	require.Equal(t, oldUser.Email, updatedUser.Email)
	require.Equal(t, oldUser.HashedPassword, updatedUser.HashedPassword)
}

func TestUpdateUserPassword(t *testing.T) {
	oldUser := createRandomUser(t, util.UserRole)

	newPassword := util.RandomString(10)
	newHashedPassword, err := util.HashPassword(newPassword)
	require.NoError(t, err)

	updatedUser, err := testStore.UpdateUser(context.Background(), UpdateUserParams{
		ID: oldUser.ID,
		HashedPassword: pgtype.Text{
			String: newHashedPassword,
			Valid:  true,
		},
		PasswordChangedAt: pgtype.Timestamptz{
			Time:  time.Now(),
			Valid: true,
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, oldUser.HashedPassword, updatedUser.HashedPassword)
	require.Equal(t, newHashedPassword, updatedUser.HashedPassword)
	require.Equal(t, oldUser.FullName, updatedUser.FullName)
	require.False(t, updatedUser.PasswordChangedAt.IsZero())
}

func TestListUsersByRole(t *testing.T) {
	worker := createRandomUser(t, util.WorkerRole)

	workers, err := testStore.ListUsersByRole(context.Background(), util.WorkerRole)
	require.NoError(t, err)
	require.NotEmpty(t, workers)

	found := false
	for _, w := range workers {
		require.Equal(t, util.WorkerRole, w.Role)
		if w.ID == worker.ID {
			found = true
		}
	}
	require.True(t, found)
}
