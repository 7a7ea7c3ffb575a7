package db

import (
	"context"
	"testing"

	"github.com/cleancycle/cleancycle/util"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListNotifications(t *testing.T) {
	user := createRandomUser(t, util.UserRole)

	n1, err := testStore.CreateNotification(context.Background(), CreateNotificationParams{
		UserID:  user.ID,
		Type:    "pickupAssigned",
		Title:   "Pickup assigned",
		Content: "A worker is on the way",
	})
	require.NoError(t, err)
	require.False(t, n1.IsRead)

	notifications, err := testStore.ListUserNotifications(context.Background(), ListUserNotificationsParams{
		UserID: user.ID,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, n1.ID, notifications[0].ID)

	unread, err := testStore.CountUnreadNotifications(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), unread)

	read, err := testStore.MarkNotificationRead(context.Background(), MarkNotificationReadParams{
		ID:     n1.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)
	require.True(t, read.IsRead)

	unread, err = testStore.CountUnreadNotifications(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), unread)
}

func TestMarkNotificationReadWrongUser(t *testing.T) {
	user := createRandomUser(t, util.UserRole)
	other := createRandomUser(t, util.UserRole)

	n, err := testStore.CreateNotification(context.Background(), CreateNotificationParams{
		UserID:  user.ID,
		Type:    "pickupStatusUpdated",
		Title:   "Pickup update",
		Content: "Your pickup is in progress",
	})
	require.NoError(t, err)

	_, err = testStore.MarkNotificationRead(context.Background(), MarkNotificationReadParams{
		ID:     n.ID,
		UserID: other.ID,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
