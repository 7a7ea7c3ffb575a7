package worker

import (
	"context"
	"time"

	db "github.com/cleancycle/cleancycle/db/sqlc"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor consumes background tasks
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskSendNotification delivers a queued notification
	ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	redisClient *redis.Client // pub/sub bridge for WebSocket pushes
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		redisClient: redisClient,
	}
}

// NewTestTaskProcessor builds a processor without redis connections for tests
func NewTestTaskProcessor(store db.Store) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store: store,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
	if processor.redisClient != nil {
		processor.redisClient.Close()
	}
}
