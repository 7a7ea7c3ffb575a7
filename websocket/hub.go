package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message is the envelope sent over a WebSocket connection
type Message struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// ClientType identifies which audience a connection belongs to
type ClientType string

const (
	ClientTypeUser     ClientType = "user"     // resident requesting pickups
	ClientTypeWorker   ClientType = "worker"   // collection worker
	ClientTypeOperator ClientType = "operator" // dispatch operator dashboard
)

// ClientInfo describes a connected client
type ClientInfo struct {
	UserID     int64
	ClientType ClientType
}

// Client is one WebSocket connection
type Client struct {
	info      ClientInfo
	hub       *Hub
	send      chan Message
	ctx       context.Context
	done      chan struct{}
	conn      *gorilla_websocket.Conn
	closeOnce sync.Once // the send channel is closed at most once
}

// Hub tracks all WebSocket connections indexed by audience and user id
type Hub struct {
	users     map[int64]*Client
	workers   map[int64]*Client
	operators map[int64]*Client

	register   chan *Client
	unregister chan *Client

	broadcast chan BroadcastMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage targets one audience. UserID 0 means every client of
// that audience.
type BroadcastMessage struct {
	ClientType ClientType
	UserID     int64
	Message    Message
}

// NewHub creates a new Hub
func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		users:      make(map[int64]*Client),
		workers:    make(map[int64]*Client),
		operators:  make(map[int64]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan BroadcastMessage, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run processes registrations, unregistrations and broadcasts until the
// hub context is cancelled.
func (h *Hub) Run() {
	log.Info().Msg("WebSocket Hub started")
	defer log.Info().Msg("WebSocket Hub stopped")

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

func (h *Hub) clientMap(clientType ClientType) map[int64]*Client {
	switch clientType {
	case ClientTypeUser:
		return h.users
	case ClientTypeWorker:
		return h.workers
	case ClientTypeOperator:
		return h.operators
	default:
		return nil
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clientMap(client.info.ClientType)
	if clients == nil {
		return
	}

	if old, exists := clients[client.info.UserID]; exists {
		// a newer connection replaces the old one
		close(old.done)
	}
	clients[client.info.UserID] = client

	log.Info().
		Int64("user_id", client.info.UserID).
		Str("client_type", string(client.info.ClientType)).
		Msg("client connected via WebSocket")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clientMap(client.info.ClientType)
	if clients == nil {
		return
	}

	// only remove the entry when it still points at this client, so a
	// replaced connection does not evict its successor
	if existing, exists := clients[client.info.UserID]; exists && existing == client {
		delete(clients, client.info.UserID)
		client.closeOnce.Do(func() {
			close(client.send)
		})
		log.Info().
			Int64("user_id", client.info.UserID).
			Str("client_type", string(client.info.ClientType)).
			Msg("client disconnected from WebSocket")
	}
}

func (h *Hub) broadcastMessage(msg BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := h.clientMap(msg.ClientType)
	if clients == nil {
		return
	}

	deliver := func(client *Client) {
		select {
		case client.send <- msg.Message:
		default:
			log.Warn().
				Int64("user_id", client.info.UserID).
				Str("client_type", string(client.info.ClientType)).
				Msg("send buffer full, dropping message")
		}
	}

	if msg.UserID == 0 {
		for _, client := range clients {
			deliver(client)
		}
		return
	}

	if client, exists := clients[msg.UserID]; exists {
		deliver(client)
	}
}

// Register registers a client with the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a broadcast without blocking the caller
func (h *Hub) Broadcast(msg BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("broadcast channel full, dropping message")
	}
}

// SendToUser sends a message to one resident
func (h *Hub) SendToUser(userID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeUser,
		UserID:     userID,
		Message:    msg,
	})
}

// SendToWorker sends a message to one worker
func (h *Hub) SendToWorker(workerID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeWorker,
		UserID:     workerID,
		Message:    msg,
	})
}

// BroadcastToOperators sends a message to every connected operator
func (h *Hub) BroadcastToOperators(msg Message) {
	h.Broadcast(BroadcastMessage{
		ClientType: ClientTypeOperator,
		UserID:     0,
		Message:    msg,
	})
}

// IsUserOnline reports whether a resident has a live connection
func (h *Hub) IsUserOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.users[userID]
	return exists
}

// IsWorkerOnline reports whether a worker has a live connection
func (h *Hub) IsWorkerOnline(workerID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.workers[workerID]
	return exists
}

// GetOnlineWorkerIDs lists the ids of all connected workers
func (h *Hub) GetOnlineWorkerIDs() []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]int64, 0, len(h.workers))
	for id := range h.workers {
		ids = append(ids, id)
	}
	return ids
}

// GetOnlineOperatorCount counts connected operator dashboards
func (h *Hub) GetOnlineOperatorCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.operators)
}

// GetOnlineClientCount counts all live connections across audiences
func (h *Hub) GetOnlineClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users) + len(h.workers) + len(h.operators)
}

// Shutdown closes every connection and stops the hub
func (h *Hub) Shutdown() {
	log.Info().Msg("shutting down WebSocket Hub")
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range []map[int64]*Client{h.users, h.workers, h.operators} {
		for _, client := range clients {
			client.closeOnce.Do(func() {
				close(client.send)
			})
		}
	}
}
