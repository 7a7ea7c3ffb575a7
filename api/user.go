package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

// getCurrentUser returns the authenticated user's profile.
// GET /v1/users/me
func (server *Server) getCurrentUser(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type updateCurrentUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,min=5,max=20"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// updateCurrentUser patches the authenticated user's profile. Only the
// provided fields change.
// PATCH /v1/users/me
func (server *Server) updateCurrentUser(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req updateCurrentUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateUserParams{
		ID: authPayload.UserID,
	}
	if req.FullName != nil {
		arg.FullName = pgtype.Text{String: *req.FullName, Valid: true}
	}
	if req.Phone != nil {
		arg.Phone = pgtype.Text{String: *req.Phone, Valid: true}
	}
	if req.Password != nil {
		hashedPassword, err := util.HashPassword(*req.Password)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		arg.HashedPassword = pgtype.Text{String: hashedPassword, Valid: true}
		arg.PasswordChangedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	user, err := server.store.UpdateUser(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// listWorkers returns every account with the worker role.
// GET /v1/admin/workers
func (server *Server) listWorkers(ctx *gin.Context) {
	workers, err := server.store.ListUsersByRole(ctx, util.WorkerRole)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := make([]userResponse, 0, len(workers))
	for _, w := range workers {
		rsp = append(rsp, newUserResponse(w))
	}
	ctx.JSON(http.StatusOK, rsp)
}
