package api

import (
	"errors"
	"net/http"

	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/gin-gonic/gin"
	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

type listNotificationsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

type listNotificationsResponse struct {
	Notifications []db.Notification `json:"notifications"`
	UnreadCount   int64             `json:"unread_count"`
}

// listNotifications returns the user's notifications newest first, with
// the unread counter for the badge.
// GET /v1/notifications
func (server *Server) listNotifications(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req listNotificationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notifications, err := server.store.ListUserNotifications(ctx, db.ListUserNotificationsParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	unreadCount, err := server.store.CountUnreadNotifications(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, listNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	})
}

type markNotificationReadRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// markNotificationRead flags one of the user's notifications as read.
// PATCH /v1/notifications/:id/read
func (server *Server) markNotificationRead(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req markNotificationReadRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notification, err := server.store.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     req.ID,
		UserID: authPayload.UserID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("notification not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

func newUpgrader(allowedOrigins []string) gorilla_websocket.Upgrader {
	originsMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originsMap[origin] = true
	}

	return gorilla_websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(originsMap) == 0 || originsMap["*"] {
				return true
			}
			return originsMap[r.Header.Get("Origin")]
		},
	}
}

// handleWebSocket upgrades the connection and registers the client in the
// room matching its role: admins join the operator room, workers the
// worker room, everyone else the user room.
// GET /v1/ws
func (server *Server) handleWebSocket(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var clientType websocket.ClientType
	switch authPayload.Role {
	case util.AdminRole:
		clientType = websocket.ClientTypeOperator
	case util.WorkerRole:
		clientType = websocket.ClientTypeWorker
	default:
		clientType = websocket.ClientTypeUser
	}

	upgrader := newUpgrader(server.config.AllowedOrigins)
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := websocket.NewClient(server.wsHub, conn, websocket.ClientInfo{
		UserID:     authPayload.UserID,
		ClientType: clientType,
	})

	server.wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
