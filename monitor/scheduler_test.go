package monitor

import (
	"context"
	"testing"

	mockdb "github.com/cleancycle/cleancycle/db/mock"
	db "github.com/cleancycle/cleancycle/db/sqlc"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, store db.Store) *BinScheduler {
	hub := websocket.NewHub(context.Background())
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	return NewBinScheduler(store, hub, 85)
}

func TestBinSchedulerDefaultThreshold(t *testing.T) {
	s := NewBinScheduler(nil, nil, 0)
	require.Equal(t, int32(defaultAlertFillLevel), s.threshold)

	s = NewBinScheduler(nil, nil, 90)
	require.Equal(t, int32(90), s.threshold)
}

func TestCheckFillLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	s := newTestScheduler(t, store)

	bin := db.Dustbin{
		ID:        1,
		Label:     "BIN-001",
		Area:      "Riverside",
		FillLevel: 92,
	}

	store.EXPECT().
		ListOverfilledDustbins(gomock.Any(), int32(85)).
		Times(1).
		Return([]db.Dustbin{bin}, nil)

	err := s.CheckFillLevels(context.Background())
	require.NoError(t, err)
	require.True(t, s.alerted[bin.ID])
}

func TestCheckFillLevelsDedupes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	s := newTestScheduler(t, store)

	bin := db.Dustbin{ID: 7, Label: "BIN-007", Area: "Old Town", FillLevel: 96}

	store.EXPECT().
		ListOverfilledDustbins(gomock.Any(), int32(85)).
		Times(2).
		Return([]db.Dustbin{bin}, nil)

	require.NoError(t, s.CheckFillLevels(context.Background()))
	require.NoError(t, s.CheckFillLevels(context.Background()))

	// still marked, alerted only once until it recovers
	require.True(t, s.alerted[bin.ID])
	require.Len(t, s.alerted, 1)
}

func TestCheckFillLevelsResetAfterRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	s := newTestScheduler(t, store)

	bin := db.Dustbin{ID: 3, Label: "BIN-003", Area: "Harbor", FillLevel: 88}

	gomock.InOrder(
		store.EXPECT().
			ListOverfilledDustbins(gomock.Any(), int32(85)).
			Return([]db.Dustbin{bin}, nil),
		store.EXPECT().
			ListOverfilledDustbins(gomock.Any(), int32(85)).
			Return([]db.Dustbin{}, nil),
		store.EXPECT().
			ListOverfilledDustbins(gomock.Any(), int32(85)).
			Return([]db.Dustbin{bin}, nil),
	)

	require.NoError(t, s.CheckFillLevels(context.Background()))
	require.True(t, s.alerted[bin.ID])

	// bin was emptied, tracking entry is dropped
	require.NoError(t, s.CheckFillLevels(context.Background()))
	require.Empty(t, s.alerted)

	// overflowing again raises a fresh alert
	require.NoError(t, s.CheckFillLevels(context.Background()))
	require.True(t, s.alerted[bin.ID])
}
