package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleancycle/cleancycle/maps"
	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/websocket"
	"github.com/cleancycle/cleancycle/worker"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

// Server serves HTTP requests for the waste pickup service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	dirClient       maps.DirectionsClient // optional, nil means local routing only
	taskDistributor worker.TaskDistributor
	wsHub           *websocket.Hub
	wsPubSub        *websocket.PubSubManager
	router          *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	var dirClient maps.DirectionsClient
	if config.GoogleMapsAPIKey != "" {
		dirClient = maps.NewGoogleDirectionsClient(config.GoogleMapsAPIKey, config.DirectionsHTTPTimeout)
	}

	wsHub := websocket.NewHub(context.Background())

	var wsPubSub *websocket.PubSubManager
	if config.RedisAddress != "" {
		wsPubSub, err = websocket.NewPubSubManager(config.RedisAddress, config.RedisPassword, wsHub)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create PubSub manager, cross-process push disabled")
		} else {
			wsPubSub.Start()
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		dirClient:       dirClient,
		taskDistributor: taskDistributor,
		wsHub:           wsHub,
		wsPubSub:        wsPubSub,
	}

	server.setupRouter()
	return server, nil
}

// GetWebSocketHub returns the WebSocket hub for external access
func (server *Server) GetWebSocketHub() *websocket.Hub {
	return server.wsHub
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registerCustomValidators()

	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(PrometheusMiddleware())
	router.Use(TimeoutMiddleware(30 * time.Second))

	// Rate limiting stays off outside production so tests and local tools
	// can hammer the API freely.
	var limiter *RateLimiter
	if server.config.Environment == "production" {
		limiter = NewRateLimiter(DefaultRateLimiterConfig())
		router.Use(limiter.Middleware())
	}

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// auth routes (no token required)
	authRoutes := v1.Group("/auth")
	if limiter != nil {
		authRoutes.Use(limiter.StrictMiddleware(30))
	}
	authRoutes.POST("/register", server.registerUser)
	authRoutes.POST("/login", server.loginUser)
	authRoutes.POST("/refresh", server.renewAccessToken)

	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	authGroup.GET("/users/me", server.getCurrentUser)
	authGroup.PATCH("/users/me", server.updateCurrentUser)

	authGroup.POST("/pickups", server.createPickup)
	authGroup.GET("/pickups/me", server.listMyPickups)
	authGroup.GET("/pickups/:id", server.getPickup)

	authGroup.GET("/dustbins/nearby", server.listNearbyDustbins)

	authGroup.GET("/notifications", server.listNotifications)
	authGroup.PATCH("/notifications/:id/read", server.markNotificationRead)

	authGroup.GET("/ws", server.handleWebSocket)

	workerGroup := authGroup.Group("/worker")
	workerGroup.Use(roleMiddleware(util.WorkerRole, util.AdminRole))
	{
		workerGroup.GET("/tasks", server.listWorkerTasks)
		workerGroup.PATCH("/tasks/:id/status", server.advanceTask)
	}

	adminGroup := authGroup.Group("/admin")
	adminGroup.Use(roleMiddleware(util.AdminRole))
	{
		adminGroup.GET("/pickups", server.listAllPickups)
		adminGroup.POST("/pickups/:id/assign", server.assignPickup)
		adminGroup.POST("/route/optimize", server.optimizeRoute)
		adminGroup.GET("/analytics", server.getAnalytics)
		adminGroup.GET("/workers", server.listWorkers)
		adminGroup.GET("/dustbins", server.listDustbins)
		adminGroup.POST("/dustbins", server.createDustbin)
		adminGroup.PATCH("/dustbins/:id/level", server.updateDustbinLevel)
	}

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck is the basic liveness probe.
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "cleancycle-api",
	})
}

// readinessCheck verifies dependencies before the server takes traffic.
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "cleancycle-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
