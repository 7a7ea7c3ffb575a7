package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

type dustbinResponse struct {
	ID             int64      `json:"id"`
	Label          string     `json:"label"`
	Area           string     `json:"area"`
	Longitude      float64    `json:"longitude"`
	Latitude       float64    `json:"latitude"`
	CapacityLiters int32      `json:"capacity_liters"`
	FillLevel      int32      `json:"fill_level"`
	LastEmptiedAt  *time.Time `json:"last_emptied_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DistanceMeters *float64   `json:"distance_meters,omitempty"`
}

func newDustbinResponse(bin db.Dustbin) dustbinResponse {
	rsp := dustbinResponse{
		ID:             bin.ID,
		Label:          bin.Label,
		Area:           bin.Area,
		Longitude:      bin.Longitude,
		Latitude:       bin.Latitude,
		CapacityLiters: bin.CapacityLiters,
		FillLevel:      bin.FillLevel,
		CreatedAt:      bin.CreatedAt,
	}
	if bin.LastEmptiedAt.Valid {
		lastEmptied := bin.LastEmptiedAt.Time
		rsp.LastEmptiedAt = &lastEmptied
	}
	return rsp
}

type listNearbyDustbinsRequest struct {
	Latitude     *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude    *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	RadiusMeters float64  `form:"radius_meters" binding:"omitempty,min=1,max=50000"`
	Limit        int32    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// listNearbyDustbins returns bins within the radius, fullest first so the
// most urgent ones surface at the top.
// GET /v1/dustbins/nearby
func (server *Server) listNearbyDustbins(ctx *gin.Context) {
	var req listNearbyDustbinsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = 1000
	}
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	bins, err := server.store.ListNearbyDustbins(ctx, db.ListNearbyDustbinsParams{
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: radius,
		RowLimit:     limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]dustbinResponse, 0, len(bins))
	for _, bin := range bins {
		item := newDustbinResponse(db.Dustbin{
			ID:             bin.ID,
			Label:          bin.Label,
			Area:           bin.Area,
			Longitude:      bin.Longitude,
			Latitude:       bin.Latitude,
			CapacityLiters: bin.CapacityLiters,
			FillLevel:      bin.FillLevel,
			LastEmptiedAt:  bin.LastEmptiedAt,
			CreatedAt:      bin.CreatedAt,
		})
		distance := bin.DistanceMeters
		item.DistanceMeters = &distance
		rsp = append(rsp, item)
	}
	ctx.JSON(http.StatusOK, rsp)
}

type listDustbinsRequest struct {
	Area     string `form:"area" binding:"omitempty,max=100"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=100"`
}

// listDustbins returns the registry sorted by fill level, fullest first.
// GET /v1/admin/dustbins
func (server *Server) listDustbins(ctx *gin.Context) {
	var req listDustbinsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bins, err := server.store.ListDustbins(ctx, db.ListDustbinsParams{
		Area:      req.Area,
		RowLimit:  req.PageSize,
		RowOffset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]dustbinResponse, 0, len(bins))
	for _, bin := range bins {
		rsp = append(rsp, newDustbinResponse(bin))
	}
	ctx.JSON(http.StatusOK, rsp)
}

type createDustbinRequest struct {
	Label          string   `json:"label" binding:"required,min=1,max=100"`
	Area           string   `json:"area" binding:"required,min=1,max=100"`
	Longitude      *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Latitude       *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	CapacityLiters int32    `json:"capacity_liters" binding:"omitempty,min=1,max=10000"`
	FillLevel      int32    `json:"fill_level" binding:"omitempty,min=0,max=100"`
}

// createDustbin registers a bin.
// POST /v1/admin/dustbins
func (server *Server) createDustbin(ctx *gin.Context) {
	var req createDustbinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	capacity := req.CapacityLiters
	if capacity == 0 {
		capacity = 240
	}

	bin, err := server.store.CreateDustbin(ctx, db.CreateDustbinParams{
		Label:          req.Label,
		Area:           req.Area,
		Longitude:      *req.Longitude,
		Latitude:       *req.Latitude,
		CapacityLiters: capacity,
		FillLevel:      req.FillLevel,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("dustbin label already exists")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDustbinResponse(bin))
}

type updateDustbinLevelUriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type updateDustbinLevelRequest struct {
	FillLevel *int32 `json:"fill_level" binding:"required,min=0,max=100"`
}

// updateDustbinLevel records a fill level reading. Setting the level to 0
// stamps last_emptied_at.
// PATCH /v1/admin/dustbins/:id/level
func (server *Server) updateDustbinLevel(ctx *gin.Context) {
	var uriReq updateDustbinLevelUriRequest
	if err := ctx.ShouldBindUri(&uriReq); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateDustbinLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bin, err := server.store.UpdateDustbinFillLevel(ctx, db.UpdateDustbinFillLevelParams{
		ID:        uriReq.ID,
		FillLevel: *req.FillLevel,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("dustbin not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newDustbinResponse(bin))
}
