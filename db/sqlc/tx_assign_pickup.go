package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrPickupNotPending is returned when assignment loses the claim race
// or targets a pickup that already left the pending state.
var ErrPickupNotPending = errors.New("pickup is not pending")

// AssignPickupTxParams contains the input parameters for assigning a pickup
type AssignPickupTxParams struct {
	PickupID   int64
	WorkerID   int64
	WorkerName string
}

// AssignPickupTxResult contains the result of the assignment transaction
type AssignPickupTxResult struct {
	Pickup Pickup
	Task   WorkerTask
}

// AssignPickupTx claims a pending pickup for a worker and creates the
// matching worker task in a single transaction:
// 1. Conditionally update the pickup from pending to assigned
// 2. Distinguish a lost claim race from a missing pickup
// 3. Create the worker task seeded with the pickup location
func (store *SQLStore) AssignPickupTx(ctx context.Context, arg AssignPickupTxParams) (AssignPickupTxResult, error) {
	var result AssignPickupTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. The WHERE status = 'pending' guard makes the claim atomic:
		// of two concurrent assignments exactly one updates the row.
		result.Pickup, err = q.ClaimPickup(ctx, ClaimPickupParams{
			ID:         arg.PickupID,
			WorkerID:   pgtype.Int8{Int64: arg.WorkerID, Valid: true},
			WorkerName: arg.WorkerName,
		})
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("claim pickup: %w", err)
			}

			// 2. Zero rows means either the pickup does not exist or it
			// was already claimed. Re-read to tell the two apart.
			if _, getErr := q.GetPickup(ctx, arg.PickupID); getErr != nil {
				return fmt.Errorf("get pickup: %w", getErr)
			}
			return ErrPickupNotPending
		}

		// 3. Seed the task with the pickup's coordinates and the worker
		// name so the worker app can render it without a second lookup.
		result.Task, err = q.CreateWorkerTask(ctx, CreateWorkerTaskParams{
			PickupID:   result.Pickup.ID,
			WorkerID:   arg.WorkerID,
			WorkerName: arg.WorkerName,
			Address:    result.Pickup.Address,
			Longitude:  result.Pickup.Longitude,
			Latitude:   result.Pickup.Latitude,
		})
		if err != nil {
			return fmt.Errorf("create worker task: %w", err)
		}

		return nil
	})

	return result, err
}
