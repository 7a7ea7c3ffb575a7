package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	// redis channels used to push events across processes
	channelPrefixUser     = "notification:user:"   // notification:user:{user_id}
	channelPrefixWorker   = "notification:worker:" // notification:worker:{worker_id}
	channelOperatorEvents = "notification:operator:events"
)

// PubSubManager bridges redis pub/sub into the hub so workers and other
// processes can push WebSocket events without holding connections.
type PubSubManager struct {
	redisClient *redis.Client
	hub         *Hub
	ctx         context.Context
	cancel      context.CancelFunc
}

// PushMessage is the envelope carried over redis
type PushMessage struct {
	EntityType string  `json:"entity_type"` // user/worker
	EntityID   int64   `json:"entity_id"`
	Message    Message `json:"message"`
}

// NewPubSubManager connects to redis and prepares the bridge
func NewPubSubManager(redisAddr string, redisPassword string, hub *Hub) (*PubSubManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	manager := &PubSubManager{
		redisClient: client,
		hub:         hub,
		ctx:         ctx,
		cancel:      cancel,
	}

	return manager, nil
}

// Start subscribes to all push channels
func (m *PubSubManager) Start() {
	pubsub := m.redisClient.PSubscribe(m.ctx, channelPrefixUser+"*", channelPrefixWorker+"*", channelOperatorEvents)

	go func() {
		defer pubsub.Close()

		log.Info().Msg("WebSocket PubSub started, listening for push requests")

		for {
			select {
			case <-m.ctx.Done():
				log.Info().Msg("WebSocket PubSub stopped")
				return
			default:
				msg, err := pubsub.ReceiveMessage(m.ctx)
				if err != nil {
					if m.ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("receive pubsub message failed")
					time.Sleep(time.Second)
					continue
				}

				m.handlePubSubMessage(msg.Channel, msg.Payload)
			}
		}
	}()
}

// Stop stops the subscription and closes the redis client
func (m *PubSubManager) Stop() {
	m.cancel()
	m.redisClient.Close()
}

func (m *PubSubManager) handlePubSubMessage(channel string, payload string) {
	// operator events go straight to every dashboard
	if channel == channelOperatorEvents {
		m.handleOperatorMessage(payload)
		return
	}

	var pushMsg PushMessage
	if err := json.Unmarshal([]byte(payload), &pushMsg); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal pubsub message failed")
		return
	}

	switch pushMsg.EntityType {
	case "user":
		if m.hub.IsUserOnline(pushMsg.EntityID) {
			m.hub.SendToUser(pushMsg.EntityID, pushMsg.Message)
			log.Debug().
				Int64("user_id", pushMsg.EntityID).
				Str("type", pushMsg.Message.Type).
				Msg("pushed notification to user via WebSocket")
		} else {
			log.Debug().
				Int64("user_id", pushMsg.EntityID).
				Msg("user offline, skip WebSocket push")
		}

	case "worker":
		if m.hub.IsWorkerOnline(pushMsg.EntityID) {
			m.hub.SendToWorker(pushMsg.EntityID, pushMsg.Message)
			log.Debug().
				Int64("worker_id", pushMsg.EntityID).
				Str("type", pushMsg.Message.Type).
				Msg("pushed notification to worker via WebSocket")
		} else {
			log.Debug().
				Int64("worker_id", pushMsg.EntityID).
				Msg("worker offline, skip WebSocket push")
		}

	default:
		log.Warn().Str("entity_type", pushMsg.EntityType).Msg("unknown entity type in pubsub message")
	}
}

func (m *PubSubManager) handleOperatorMessage(payload string) {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal operator message failed")
		return
	}

	m.hub.BroadcastToOperators(msg)

	log.Info().
		Str("type", msg.Type).
		Int("operator_clients", m.hub.GetOnlineOperatorCount()).
		Msg("event broadcasted to operators")
}

// PublishNotificationPush publishes a targeted push request. Called by
// the task processor so delivery works regardless of which process owns
// the connection.
func PublishNotificationPush(ctx context.Context, redisClient *redis.Client, entityType string, entityID int64, message Message) error {
	pushMsg := PushMessage{
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
	}

	payload, err := json.Marshal(pushMsg)
	if err != nil {
		return err
	}

	var channel string
	switch entityType {
	case "user":
		channel = fmt.Sprintf("%s%d", channelPrefixUser, entityID)
	case "worker":
		channel = fmt.Sprintf("%s%d", channelPrefixWorker, entityID)
	default:
		return nil
	}

	return redisClient.Publish(ctx, channel, payload).Err()
}
