package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID int64, clientType ClientType) *Client {
	return &Client{
		info: ClientInfo{
			UserID:     userID,
			ClientType: clientType,
		},
		hub:  hub,
		send: make(chan Message, 256),
		done: make(chan struct{}),
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub(context.Background())

	require.NotNil(t, hub)
	require.NotNil(t, hub.users)
	require.NotNil(t, hub.workers)
	require.NotNil(t, hub.operators)
	require.NotNil(t, hub.register)
	require.NotNil(t, hub.unregister)
	require.NotNil(t, hub.broadcast)
}

func TestHub_RegisterAndUnregisterWorker(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	client := newTestClient(hub, 100, ClientTypeWorker)

	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsWorkerOnline(100))
	require.Equal(t, []int64{100}, hub.GetOnlineWorkerIDs())

	hub.Unregister(client)
	time.Sleep(50 * time.Millisecond)

	require.False(t, hub.IsWorkerOnline(100))
	require.Empty(t, hub.GetOnlineWorkerIDs())
}

func TestHub_ReplaceOldConnection(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	oldClient := newTestClient(hub, 100, ClientTypeWorker)
	hub.Register(oldClient)
	time.Sleep(50 * time.Millisecond)
	require.True(t, hub.IsWorkerOnline(100))

	// same worker connects again
	newClient := newTestClient(hub, 100, ClientTypeWorker)
	hub.Register(newClient)
	time.Sleep(50 * time.Millisecond)

	select {
	case <-oldClient.done:
	default:
		t.Error("old client's done channel should be closed")
	}

	require.True(t, hub.IsWorkerOnline(100))
	require.Len(t, hub.GetOnlineWorkerIDs(), 1)
}

func TestHub_UnregisterOldConnectionKeepsNew(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	oldClient := newTestClient(hub, 100, ClientTypeWorker)
	hub.Register(oldClient)
	time.Sleep(50 * time.Millisecond)

	newClient := newTestClient(hub, 100, ClientTypeWorker)
	hub.Register(newClient)
	time.Sleep(50 * time.Millisecond)

	// the replaced connection unregisters itself when its read pump
	// exits, which must not evict the new connection
	hub.Unregister(oldClient)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsWorkerOnline(100))
}

func TestHub_SendToWorker(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	worker := newTestClient(hub, 7, ClientTypeWorker)
	other := newTestClient(hub, 8, ClientTypeWorker)
	hub.Register(worker)
	hub.Register(other)
	time.Sleep(50 * time.Millisecond)

	msg, err := NewMessage("taskAssigned", map[string]int64{"task_id": 1})
	require.NoError(t, err)

	hub.SendToWorker(7, msg)
	time.Sleep(50 * time.Millisecond)

	select {
	case got := <-worker.send:
		require.Equal(t, "taskAssigned", got.Type)
	default:
		t.Error("worker 7 should have received the message")
	}

	select {
	case <-other.send:
		t.Error("worker 8 should not have received the message")
	default:
	}
}

func TestHub_BroadcastEventNewPickupRequest(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	user := newTestClient(hub, 1, ClientTypeUser)
	worker := newTestClient(hub, 2, ClientTypeWorker)
	operator := newTestClient(hub, 3, ClientTypeOperator)
	hub.Register(user)
	hub.Register(worker)
	hub.Register(operator)
	time.Sleep(50 * time.Millisecond)

	// new pickup requests only reach the dispatch desk
	hub.BroadcastEvent(EventNewPickupRequest, map[string]int64{"pickup_id": 42})
	time.Sleep(50 * time.Millisecond)

	select {
	case got := <-operator.send:
		require.Equal(t, EventNewPickupRequest, got.Type)
		var data map[string]int64
		require.NoError(t, json.Unmarshal(got.Data, &data))
		require.Equal(t, int64(42), data["pickup_id"])
	default:
		t.Error("operator should have received the event")
	}

	select {
	case <-user.send:
		t.Error("user should not have received the event")
	default:
	}
	select {
	case <-worker.send:
		t.Error("worker should not have received the event")
	default:
	}
}

func TestHub_BroadcastEventStatusUpdateReachesAll(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	user := newTestClient(hub, 1, ClientTypeUser)
	worker := newTestClient(hub, 2, ClientTypeWorker)
	operator := newTestClient(hub, 3, ClientTypeOperator)
	hub.Register(user)
	hub.Register(worker)
	hub.Register(operator)
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastEvent(EventPickupStatusUpdated, map[string]string{"status": "in_progress"})
	time.Sleep(50 * time.Millisecond)

	for _, client := range []*Client{user, worker, operator} {
		select {
		case got := <-client.send:
			require.Equal(t, EventPickupStatusUpdated, got.Type)
		default:
			t.Errorf("client %d should have received the event", client.info.UserID)
		}
	}
}

func TestHub_SendAlert(t *testing.T) {
	hub := NewHub(context.Background())

	go hub.Run()
	defer hub.Shutdown()

	operator := newTestClient(hub, 9, ClientTypeOperator)
	hub.Register(operator)
	time.Sleep(50 * time.Millisecond)

	hub.SendAlert(EventBinAlert, AlertData{
		Level:     AlertLevelWarning,
		Title:     "Bin almost full",
		Message:   "bin-12 reached 95%",
		RelatedID: 12,
	})
	time.Sleep(50 * time.Millisecond)

	select {
	case got := <-operator.send:
		require.Equal(t, EventBinAlert, got.Type)
		var alert AlertData
		require.NoError(t, json.Unmarshal(got.Data, &alert))
		require.Equal(t, AlertLevelWarning, alert.Level)
		require.Equal(t, int64(12), alert.RelatedID)
		require.False(t, alert.Timestamp.IsZero())
	default:
		t.Error("operator should have received the alert")
	}
}

func TestHub_Shutdown(t *testing.T) {
	hub := NewHub(context.Background())

	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	client := newTestClient(hub, 5, ClientTypeUser)
	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	hub.Shutdown()

	// the send channel is closed exactly once
	_, ok := <-client.send
	require.False(t, ok)

	// Run returns once the hub is shut down
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub run loop did not stop")
	}
}
