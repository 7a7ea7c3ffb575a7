package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/cleancycle/cleancycle/worker"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

type workerTaskResponse struct {
	ID                  int64      `json:"id"`
	PickupID            int64      `json:"pickup_id"`
	WorkerID            int64      `json:"worker_id"`
	WorkerName          string     `json:"worker_name"`
	Status              string     `json:"status"`
	Address             string     `json:"address"`
	Longitude           float64    `json:"longitude"`
	Latitude            float64    `json:"latitude"`
	StartedAt           *time.Time `json:"started_at,omitempty"`
	EndedAt             *time.Time `json:"ended_at,omitempty"`
	CompletionNotes     string     `json:"completion_notes,omitempty"`
	CompletionPhoto     string     `json:"completion_photo,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	PickupUserName      string     `json:"pickup_user_name,omitempty"`
	PickupWasteType     string     `json:"pickup_waste_type,omitempty"`
	PickupQuantity      string     `json:"pickup_quantity,omitempty"`
	PickupPreferredDate time.Time  `json:"pickup_preferred_date,omitempty"`
}

func newWorkerTaskResponse(task db.WorkerTask) workerTaskResponse {
	rsp := workerTaskResponse{
		ID:         task.ID,
		PickupID:   task.PickupID,
		WorkerID:   task.WorkerID,
		WorkerName: task.WorkerName,
		Status:     task.Status,
		Address:   task.Address,
		Longitude: task.Longitude,
		Latitude:  task.Latitude,
		CreatedAt: task.CreatedAt,
	}
	if task.StartedAt.Valid {
		startedAt := task.StartedAt.Time
		rsp.StartedAt = &startedAt
	}
	if task.EndedAt.Valid {
		endedAt := task.EndedAt.Time
		rsp.EndedAt = &endedAt
	}
	rsp.CompletionNotes = task.CompletionNotes.String
	rsp.CompletionPhoto = task.CompletionPhoto.String
	return rsp
}

func newWorkerTaskListResponse(row db.ListWorkerTasksRow) workerTaskResponse {
	rsp := workerTaskResponse{
		ID:                  row.ID,
		PickupID:            row.PickupID,
		WorkerID:            row.WorkerID,
		WorkerName:          row.WorkerName,
		Status:              row.Status,
		Address:             row.Address,
		Longitude:           row.Longitude,
		Latitude:            row.Latitude,
		CreatedAt:           row.CreatedAt,
		PickupUserName:      row.PickupUserName,
		PickupWasteType:     row.PickupWasteType,
		PickupQuantity:      row.PickupQuantity,
		PickupPreferredDate: row.PickupPreferredDate,
	}
	if row.StartedAt.Valid {
		startedAt := row.StartedAt.Time
		rsp.StartedAt = &startedAt
	}
	if row.EndedAt.Valid {
		endedAt := row.EndedAt.Time
		rsp.EndedAt = &endedAt
	}
	rsp.CompletionNotes = row.CompletionNotes.String
	rsp.CompletionPhoto = row.CompletionPhoto.String
	return rsp
}

type listWorkerTasksRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=assigned in_progress completed"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// listWorkerTasks returns the authenticated worker's tasks joined with the
// pickup details they need on the road.
// GET /v1/worker/tasks
func (server *Server) listWorkerTasks(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req listWorkerTasksRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	tasks, err := server.store.ListWorkerTasks(ctx, db.ListWorkerTasksParams{
		WorkerID:  authPayload.UserID,
		Status:    req.Status,
		RowLimit:  req.PageSize,
		RowOffset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]workerTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		rsp = append(rsp, newWorkerTaskListResponse(task))
	}
	ctx.JSON(http.StatusOK, rsp)
}

type advanceTaskUriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type advanceTaskRequest struct {
	Status          string `json:"status" binding:"required,oneof=in_progress completed"`
	CompletionNotes string `json:"completion_notes" binding:"omitempty,max=500"`
	CompletionPhoto string `json:"completion_photo" binding:"omitempty,max=500"`
}

type advanceTaskResponse struct {
	Task   workerTaskResponse `json:"task"`
	Pickup pickupResponse     `json:"pickup"`
}

// advanceTask moves a task along its lifecycle and mirrors the status onto
// the pickup. Everyone watching the pickup gets a status event.
// PATCH /v1/worker/tasks/:id/status
func (server *Server) advanceTask(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var uriReq advanceTaskUriRequest
	if err := ctx.ShouldBindUri(&uriReq); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req advanceTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.AdvanceTaskTx(ctx, db.AdvanceTaskTxParams{
		TaskID:          uriReq.ID,
		WorkerID:        authPayload.UserID,
		Status:          req.Status,
		CompletionNotes: req.CompletionNotes,
		CompletionPhoto: req.CompletionPhoto,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("task not found")))
		case errors.Is(err, db.ErrTaskForbidden):
			ctx.JSON(http.StatusForbidden, errorResponse(err))
		case errors.Is(err, db.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	if req.Status == db.TaskStatusCompleted {
		RecordTaskCompleted()
	}

	server.wsHub.BroadcastEvent(websocket.EventPickupStatusUpdated, gin.H{
		"pickup_id": result.Pickup.ID,
		"status":    result.Pickup.Status,
		"worker_id": result.Task.WorkerID,
		"pickup":    newPickupResponse(result.Pickup),
	})

	server.notifyPickupOwner(ctx, result.Pickup, req.Status)

	rsp := advanceTaskResponse{
		Task:   newWorkerTaskResponse(result.Task),
		Pickup: newPickupResponse(result.Pickup),
	}
	ctx.JSON(http.StatusOK, rsp)
}

// notifyPickupOwner queues a notification for the resident. Delivery is
// best-effort and never fails the request.
func (server *Server) notifyPickupOwner(ctx *gin.Context, pickup db.Pickup, status string) {
	if server.taskDistributor == nil {
		return
	}

	title := "Pickup update"
	content := "Your pickup is on its way"
	if status == db.TaskStatusCompleted {
		title = "Pickup completed"
		content = "Your waste has been collected"
	}

	err := server.taskDistributor.DistributeTaskSendNotification(ctx, &worker.SendNotificationPayload{
		UserID:  pickup.UserID,
		Role:    util.UserRole,
		Type:    "pickup_status",
		Title:   title,
		Content: content,
	})
	if err != nil {
		log.Warn().Err(err).Int64("pickup_id", pickup.ID).Msg("failed to enqueue status notification")
	}
}
