package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Worker task statuses. A task follows assigned -> in_progress -> completed
// and completed is terminal.
const (
	TaskStatusAssigned   = "assigned"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Pickup statuses mirror the task lifecycle with an extra pending state
// before dispatch.
const (
	PickupStatusPending    = "pending"
	PickupStatusAssigned   = "assigned"
	PickupStatusInProgress = "in_progress"
	PickupStatusCompleted  = "completed"
)

var (
	// ErrTaskForbidden is returned when a worker touches a task owned by
	// someone else
	ErrTaskForbidden = errors.New("task belongs to another worker")
	// ErrInvalidTransition is returned when the requested status does not
	// follow the task lifecycle
	ErrInvalidTransition = errors.New("invalid task status transition")
)

// validTaskTransition reports whether a task may move from one status to
// the next.
func validTaskTransition(from, to string) bool {
	switch from {
	case TaskStatusAssigned:
		return to == TaskStatusInProgress
	case TaskStatusInProgress:
		return to == TaskStatusCompleted
	default:
		// completed is terminal
		return false
	}
}

// AdvanceTaskTxParams contains the input parameters for advancing a task.
// CompletionNotes and CompletionPhoto are only applied on the transition
// to completed.
type AdvanceTaskTxParams struct {
	TaskID          int64
	WorkerID        int64
	Status          string
	CompletionNotes string
	CompletionPhoto string
}

// AdvanceTaskTxResult contains the result of the task status transaction
type AdvanceTaskTxResult struct {
	Task   WorkerTask
	Pickup Pickup
}

// AdvanceTaskTx moves a worker task along its lifecycle and mirrors the
// new status onto the pickup in the same transaction:
// 1. Lock the task row so concurrent updates serialize
// 2. Reject updates from workers that do not own the task
// 3. Validate the status transition
// 4. Stamp started_at / ended_at and update both rows
func (store *SQLStore) AdvanceTaskTx(ctx context.Context, arg AdvanceTaskTxParams) (AdvanceTaskTxResult, error) {
	var result AdvanceTaskTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		task, err := q.GetWorkerTaskForUpdate(ctx, arg.TaskID)
		if err != nil {
			return fmt.Errorf("get task for update: %w", err)
		}

		if task.WorkerID != arg.WorkerID {
			return ErrTaskForbidden
		}

		if !validTaskTransition(task.Status, arg.Status) {
			return ErrInvalidTransition
		}

		update := UpdateWorkerTaskStatusParams{
			ID:     task.ID,
			Status: arg.Status,
		}
		now := time.Now()
		switch arg.Status {
		case TaskStatusInProgress:
			update.StartedAt = pgtype.Timestamptz{Time: now, Valid: true}
		case TaskStatusCompleted:
			update.EndedAt = pgtype.Timestamptz{Time: now, Valid: true}
			if arg.CompletionNotes != "" {
				update.CompletionNotes = pgtype.Text{String: arg.CompletionNotes, Valid: true}
			}
			if arg.CompletionPhoto != "" {
				update.CompletionPhoto = pgtype.Text{String: arg.CompletionPhoto, Valid: true}
			}
		}

		result.Task, err = q.UpdateWorkerTaskStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("update task status: %w", err)
		}

		// Keep the pickup row in step so resident-facing reads never see
		// a stale status.
		result.Pickup, err = q.UpdatePickupStatus(ctx, UpdatePickupStatusParams{
			ID:     task.PickupID,
			Status: arg.Status,
		})
		if err != nil {
			return fmt.Errorf("update pickup status: %w", err)
		}

		return nil
	})

	return result, err
}
