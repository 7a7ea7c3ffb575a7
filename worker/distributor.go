package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor enqueues background tasks
type TaskDistributor interface {
	// DistributeTaskSendNotification enqueues a notification delivery task
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
