package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cleancycle/cleancycle/algorithm"
	"github.com/cleancycle/cleancycle/maps"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/cleancycle/cleancycle/worker"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

type listAllPickupsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending assigned in_progress completed"`
	WorkerID int64  `form:"worker_id" binding:"omitempty,min=1"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// listAllPickups returns pickups across all users with optional status and
// worker filters.
// GET /v1/admin/pickups
func (server *Server) listAllPickups(ctx *gin.Context) {
	var req listAllPickupsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickups, err := server.store.ListPickups(ctx, db.ListPickupsParams{
		Status:    req.Status,
		WorkerID:  req.WorkerID,
		RowLimit:  req.PageSize,
		RowOffset: (req.PageID - 1) * req.PageSize,
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

type assignPickupUriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type assignPickupRequest struct {
	WorkerID int64 `json:"worker_id" binding:"required,min=1"`
}

type assignPickupResponse struct {
	Pickup pickupResponse     `json:"pickup"`
	Task   workerTaskResponse `json:"task"`
}

// assignPickup dispatches a pending pickup to a worker. The claim and the
// task creation happen in one transaction, so a lost race leaves no task
// behind.
// POST /v1/admin/pickups/:id/assign
func (server *Server) assignPickup(ctx *gin.Context) {
	var uriReq assignPickupUriRequest
	if err := ctx.ShouldBindUri(&uriReq); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req assignPickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	workerUser, err := server.store.GetUser(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("worker not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if workerUser.Role != util.WorkerRole {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("user is not a worker")))
		return
	}

	result, err := server.store.AssignPickupTx(ctx, db.AssignPickupTxParams{
		PickupID:   uriReq.ID,
		WorkerID:   workerUser.ID,
		WorkerName: workerUser.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("pickup not found")))
		case errors.Is(err, db.ErrPickupNotPending):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordPickupAssigned()

	rsp := assignPickupResponse{
		Pickup: newPickupResponse(result.Pickup),
		Task:   newWorkerTaskResponse(result.Task),
	}
	server.wsHub.BroadcastEvent(websocket.EventPickupAssigned, rsp)

	server.notifyAssignedWorker(ctx, result.Pickup, workerUser.ID)

	ctx.JSON(http.StatusOK, rsp)
}

// notifyAssignedWorker queues an assignment notification, best-effort.
func (server *Server) notifyAssignedWorker(ctx *gin.Context, pickup db.Pickup, workerID int64) {
	if server.taskDistributor == nil {
		return
	}

	err := server.taskDistributor.DistributeTaskSendNotification(ctx, &worker.SendNotificationPayload{
		UserID:  workerID,
		Role:    util.WorkerRole,
		Type:    "pickup_assigned",
		Title:   "New pickup assigned",
		Content: "Pickup at " + pickup.Address,
	})
	if err != nil {
		log.Warn().Err(err).Int64("pickup_id", pickup.ID).Msg("failed to enqueue assignment notification")
	}
}

type routeOrigin struct {
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
}

type optimizeRouteRequest struct {
	Origin    *routeOrigin `json:"origin" binding:"omitempty"`
	PickupIDs []int64      `json:"pickup_ids" binding:"required,min=1,dive,min=1"`
}

type routeStopResponse struct {
	PickupID          int64   `json:"pickup_id"`
	Order             int     `json:"order"`
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
	LegDistanceMeters float64 `json:"leg_distance_meters"`
}

type optimizeRouteResponse struct {
	Source              string              `json:"source"`
	Stops               []routeStopResponse `json:"stops"`
	TotalDistanceMeters float64             `json:"total_distance_meters"`
	TotalTimeMinutes    int                 `json:"total_time_minutes"`
}

// optimizeRoute plans a visiting order over the requested pending pickups.
// When the directions client is configured it asks for an optimized
// waypoint order first and falls back to the local heuristic on any error.
// POST /v1/admin/route/optimize
func (server *Server) optimizeRoute(ctx *gin.Context) {
	var req optimizeRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickups, err := server.store.ListPendingPickupsByIDs(ctx, req.PickupIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if len(pickups) == 0 {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("no pending pickups found")))
		return
	}

	stops := make([]algorithm.Stop, 0, len(pickups))
	for _, pickup := range pickups {
		stops = append(stops, algorithm.Stop{
			PickupID: pickup.ID,
			Location: algorithm.Location{
				Longitude: pickup.Longitude,
				Latitude:  pickup.Latitude,
			},
		})
	}

	var origin *algorithm.Location
	if req.Origin != nil {
		origin = &algorithm.Location{
			Longitude: req.Origin.Longitude,
			Latitude:  req.Origin.Latitude,
		}
	}

	if rsp, ok := server.optimizeRouteExternal(ctx, stops, origin); ok {
		ctx.JSON(http.StatusOK, rsp)
		return
	}

	plan := algorithm.NearestNeighborRoute(stops, origin)
	ctx.JSON(http.StatusOK, newRouteResponse("heuristic", plan))
}

func newRouteResponse(source string, plan algorithm.RoutePlan) optimizeRouteResponse {
	rsp := optimizeRouteResponse{
		Source:              source,
		Stops:               make([]routeStopResponse, 0, len(plan.Stops)),
		TotalDistanceMeters: plan.TotalDistance,
		TotalTimeMinutes:    plan.TotalTimeMinutes,
	}
	for _, stop := range plan.Stops {
		rsp.Stops = append(rsp.Stops, routeStopResponse{
			PickupID:          stop.PickupID,
			Order:             stop.Order,
			Longitude:         stop.Location.Longitude,
			Latitude:          stop.Location.Latitude,
			LegDistanceMeters: stop.LegDistance,
		})
	}
	return rsp
}

// optimizeRouteExternal asks the directions API for a waypoint order. It
// reports ok=false when the client is missing, the origin is absent (the
// API needs a start point), or the request fails for any reason.
func (server *Server) optimizeRouteExternal(ctx *gin.Context, stops []algorithm.Stop, origin *algorithm.Location) (optimizeRouteResponse, bool) {
	if server.dirClient == nil || origin == nil {
		return optimizeRouteResponse{}, false
	}

	waypoints := make([]maps.Location, 0, len(stops))
	for _, stop := range stops {
		waypoints = append(waypoints, maps.Location{
			Lat: stop.Location.Latitude,
			Lng: stop.Location.Longitude,
		})
	}

	route, err := server.dirClient.OptimizeWaypoints(ctx, maps.Location{
		Lat: origin.Latitude,
		Lng: origin.Longitude,
	}, waypoints)
	if err != nil {
		log.Warn().Err(err).Msg("directions API failed, falling back to local routing")
		return optimizeRouteResponse{}, false
	}
	if len(route.WaypointOrder) != len(stops) || len(route.LegDistances) != len(stops) {
		log.Warn().
			Int("want", len(stops)).
			Int("got", len(route.WaypointOrder)).
			Msg("directions API returned wrong waypoint count, falling back to local routing")
		return optimizeRouteResponse{}, false
	}

	// Legs and total come from the same directions response, so the
	// legs always sum to the total.
	rsp := optimizeRouteResponse{
		Source:              "directions",
		Stops:               make([]routeStopResponse, 0, len(stops)),
		TotalDistanceMeters: float64(route.Distance),
		TotalTimeMinutes:    (route.Duration + 59) / 60,
	}

	for i, idx := range route.WaypointOrder {
		stop := stops[idx]
		rsp.Stops = append(rsp.Stops, routeStopResponse{
			PickupID:          stop.PickupID,
			Order:             i + 1,
			Longitude:         stop.Location.Longitude,
			Latitude:          stop.Location.Latitude,
			LegDistanceMeters: float64(route.LegDistances[i]),
		})
	}
	return rsp, true
}

type getAnalyticsRequest struct {
	Window    string `form:"window" binding:"omitempty,oneof=daily weekly"`
	StartTime string `form:"start_time" binding:"omitempty"`
	EndTime   string `form:"end_time" binding:"omitempty"`
}

type workerPerformanceResponse struct {
	WorkerID       int64  `json:"worker_id"`
	WorkerName     string `json:"worker_name"`
	TotalTasks     int64  `json:"total_tasks"`
	CompletedTasks int64  `json:"completed_tasks"`
	AvgMinutes     int64  `json:"avg_minutes"`
}

type wasteTypeBreakdownResponse struct {
	WasteType string `json:"waste_type"`
	Total     int64  `json:"total"`
}

type getAnalyticsResponse struct {
	FromTime                 time.Time                    `json:"from_time"`
	ToTime                   time.Time                    `json:"to_time"`
	Total                    int64                        `json:"total"`
	Pending                  int64                        `json:"pending"`
	Assigned                 int64                        `json:"assigned"`
	InProgress               int64                        `json:"in_progress"`
	Completed                int64                        `json:"completed"`
	AverageCompletionMinutes int64                        `json:"average_completion_minutes"`
	Workers                  []workerPerformanceResponse  `json:"workers"`
	WasteTypes               []wasteTypeBreakdownResponse `json:"waste_types"`
}

// getAnalytics aggregates pickup stats over a time window. Explicit
// start/end win; otherwise the window defaults to the trailing 7 days
// (daily) or 28 days (weekly).
// GET /v1/admin/analytics
func (server *Server) getAnalytics(ctx *gin.Context) {
	var req getAnalyticsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	toTime := time.Now()
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid end_time, expected RFC3339")))
			return
		}
		toTime = t
	}

	window := 7 * 24 * time.Hour
	if req.Window == "weekly" {
		window = 28 * 24 * time.Hour
	}
	fromTime := toTime.Add(-window)
	if req.StartTime != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid start_time, expected RFC3339")))
			return
		}
		fromTime = t
	}

	if !fromTime.Before(toTime) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("start_time must be before end_time")))
		return
	}

	stats, err := server.store.GetPickupStats(ctx, db.GetPickupStatsParams{
		FromTime: fromTime,
		ToTime:   toTime,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	avgMinutes, err := server.store.GetAverageCompletionMinutes(ctx, db.GetAverageCompletionMinutesParams{
		FromTime: fromTime,
		ToTime:   toTime,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	workers, err := server.store.ListWorkerPerformance(ctx, db.ListWorkerPerformanceParams{
		FromTime: fromTime,
		ToTime:   toTime,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	wasteTypes, err := server.store.GetWasteTypeBreakdown(ctx, db.GetWasteTypeBreakdownParams{
		FromTime: fromTime,
		ToTime:   toTime,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := getAnalyticsResponse{
		FromTime:                 fromTime,
		ToTime:                   toTime,
		Total:                    stats.Total,
		Pending:                  stats.Pending,
		Assigned:                 stats.Assigned,
		InProgress:               stats.InProgress,
		Completed:                stats.Completed,
		AverageCompletionMinutes: avgMinutes,
		Workers:                  make([]workerPerformanceResponse, 0, len(workers)),
		WasteTypes:               make([]wasteTypeBreakdownResponse, 0, len(wasteTypes)),
	}
	for _, w := range workers {
		rsp.Workers = append(rsp.Workers, workerPerformanceResponse(w))
	}
	for _, wt := range wasteTypes {
		rsp.WasteTypes = append(rsp.WasteTypes, wasteTypeBreakdownResponse(wt))
	}
	ctx.JSON(http.StatusOK, rsp)
}
