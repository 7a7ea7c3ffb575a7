package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/gin-gonic/gin"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

type pickupResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	UserName      string    `json:"user_name"`
	WasteType     string    `json:"waste_type"`
	Quantity      string    `json:"quantity"`
	Address       string    `json:"address"`
	Longitude     float64   `json:"longitude"`
	Latitude      float64   `json:"latitude"`
	PreferredDate time.Time `json:"preferred_date"`
	Notes         string    `json:"notes,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Status        string    `json:"status"`
	WorkerID      *int64    `json:"worker_id,omitempty"`
	WorkerName    string    `json:"worker_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newPickupResponse(pickup db.Pickup) pickupResponse {
	rsp := pickupResponse{
		ID:            pickup.ID,
		UserID:        pickup.UserID,
		UserName:      pickup.UserName,
		WasteType:     pickup.WasteType,
		Quantity:      pickup.Quantity,
		Address:       pickup.Address,
		Longitude:     pickup.Longitude,
		Latitude:      pickup.Latitude,
		PreferredDate: pickup.PreferredDate,
		Notes:         pickup.Notes,
		ImageURL:      pickup.ImageUrl,
		Status:        pickup.Status,
		WorkerName:    pickup.WorkerName,
		CreatedAt:     pickup.CreatedAt,
		UpdatedAt:     pickup.UpdatedAt,
	}
	if pickup.WorkerID.Valid {
		workerID := pickup.WorkerID.Int64
		rsp.WorkerID = &workerID
	}
	return rsp
}

type createPickupRequest struct {
	WasteType     string    `json:"waste_type" binding:"required,wastetype"`
	Quantity      string    `json:"quantity" binding:"required,min=1,max=100"`
	Address       string    `json:"address" binding:"required,min=1,max=500"`
	Longitude     *float64  `json:"longitude" binding:"required,min=-180,max=180"`
	Latitude      *float64  `json:"latitude" binding:"required,min=-90,max=90"`
	PreferredDate time.Time `json:"preferred_date" binding:"required"`
	Notes         string    `json:"notes" binding:"omitempty,max=500"`
	// Reference to an already-uploaded photo; upload itself is handled elsewhere.
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
}

// createPickup files a new pickup request and notifies the dispatch desk.
// POST /v1/pickups
func (server *Server) createPickup(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req createPickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	pickup, err := server.store.CreatePickup(ctx, db.CreatePickupParams{
		UserID:        user.ID,
		UserName:      user.FullName,
		WasteType:     req.WasteType,
		Quantity:      req.Quantity,
		Address:       req.Address,
		Longitude:     *req.Longitude,
		Latitude:      *req.Latitude,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
		ImageUrl:      req.ImageURL,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordPickupCreated()

	rsp := newPickupResponse(pickup)
	server.wsHub.BroadcastEvent(websocket.EventNewPickupRequest, rsp)

	ctx.JSON(http.StatusOK, rsp)
}

type listMyPickupsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listMyPickups returns the authenticated user's pickup requests.
// GET /v1/pickups/me
func (server *Server) listMyPickups(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req listMyPickupsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickups, err := server.store.ListUserPickups(ctx, db.ListUserPickupsParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]pickupResponse, 0, len(pickups))
	for _, pickup := range pickups {
		rsp = append(rsp, newPickupResponse(pickup))
	}
	ctx.JSON(http.StatusOK, rsp)
}

type getPickupRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getPickup returns one pickup. Only the requester or an admin may read it.
// GET /v1/pickups/:id
func (server *Server) getPickup(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req getPickupRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickup, err := server.store.GetPickup(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("pickup not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if pickup.UserID != authPayload.UserID && authPayload.Role != util.AdminRole {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("pickup belongs to another user")))
		return
	}

	ctx.JSON(http.StatusOK, newPickupResponse(pickup))
}
