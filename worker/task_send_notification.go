package worker

import (
	"context"
	"encoding/json"
	"fmt"

	db "github.com/cleancycle/cleancycle/db/sqlc"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskSendNotification = "notification:send"
)

// SendNotificationPayload describes a notification to persist and push
type SendNotificationPayload struct {
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"` // user/worker, decides the push channel
	Type    string `json:"type"` // event name, e.g. pickupAssigned
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DistributeTaskSendNotification enqueues a notification delivery task
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("user_id", payload.UserID).
		Str("notification_type", payload.Type).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification persists the notification and pushes it
// over WebSocket when the recipient is connected somewhere.
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int64("user_id", payload.UserID).
		Str("type", payload.Type).
		Str("title", payload.Title).
		Msg("processing send notification task")

	notification, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		UserID:  payload.UserID,
		Type:    payload.Type,
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("user_id", payload.UserID).
		Str("type", payload.Type).
		Msg("notification created")

	// push failure is non critical, the notification is already stored
	if err := processor.tryWebSocketPush(ctx, payload.Role, notification); err != nil {
		log.Error().Err(err).Int64("notification_id", notification.ID).Msg("WebSocket push failed")
	}

	return nil
}

func (processor *RedisTaskProcessor) tryWebSocketPush(ctx context.Context, role string, notification db.Notification) error {
	if processor.redisClient == nil {
		return nil
	}

	entityType := "user"
	if role == util.WorkerRole {
		entityType = "worker"
	}

	msg, err := websocket.NewMessage("notification", map[string]any{
		"id":         notification.ID,
		"user_id":    notification.UserID,
		"type":       notification.Type,
		"title":      notification.Title,
		"content":    notification.Content,
		"is_read":    notification.IsRead,
		"created_at": notification.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	return websocket.PublishNotificationPush(ctx, processor.redisClient, entityType, notification.UserID, msg)
}
