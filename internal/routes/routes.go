// internal/routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/database"
	"escpos-service/internal/dialect"
	"escpos-service/internal/handler"
	"escpos-service/internal/middleware"
	"escpos-service/internal/service"
	"escpos-service/internal/utils"
)

// Router holds all dependencies for routing
type Router struct {
	config           *config.Config
	logger           *zap.Logger
	db               *database.DB
	registry         *dialect.Registry
	encodeService    *service.EncodeService
	operationService *service.OperationService
	dialectService   *service.DialectService
}

// NewRouter creates a new router instance
func NewRouter(
	config *config.Config,
	logger *zap.Logger,
	db *database.DB,
	registry *dialect.Registry,
	encodeService *service.EncodeService,
	operationService *service.OperationService,
	dialectService *service.DialectService,
) *Router {
	return &Router{
		config:           config,
		logger:           logger,
		db:               db,
		registry:         registry,
		encodeService:    encodeService,
		operationService: operationService,
		dialectService:   dialectService,
	}
}

// SetupRouter creates and configures the Gin router
func (r *Router) SetupRouter() *gin.Engine {
	// Set Gin mode
	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	router := gin.New()

	// Add middleware
	r.addMiddleware(router)

	// Add routes
	r.addRoutes(router)

	return router
}

// addMiddleware adds middleware to the router
func (r *Router) addMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(middleware.RecoveryMiddleware(r.logger))

	// Request ID middleware
	router.Use(middleware.RequestIDMiddleware())

	// Logging middleware
	serviceLogger := utils.NewServiceLogger(r.logger, "http-server")
	router.Use(middleware.LoggingMiddleware(serviceLogger))

	// CORS middleware
	router.Use(middleware.CORSMiddleware(&r.config.Security))

	r.logger.Info("Middleware configured")
}

// addRoutes sets up all application routes
func (r *Router) addRoutes(router *gin.Engine) {
	// Create handlers
	healthHandler := handler.NewHealthHandler(r.db, r.registry, r.config, r.logger)
	encodeHandler := handler.NewEncodeHandler(r.encodeService, r.logger)
	operationHandler := handler.NewOperationHandler(r.operationService, r.logger)
	dialectHandler := handler.NewDialectHandler(r.dialectService, r.logger)
	wsHandler := handler.NewWebSocketHandler(r.encodeService, r.logger)

	// Health check routes (no auth required)
	r.addHealthRoutes(router, healthHandler)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	r.addEncodeRoutes(apiV1, encodeHandler)
	r.addDialectRoutes(apiV1, dialectHandler)
	r.addOperationRoutes(apiV1, operationHandler)

	// WebSocket routes
	r.addWebSocketRoutes(router, wsHandler)

	// Documentation routes
	r.addDocumentationRoutes(router)

	r.logger.Info("All routes configured successfully")
}

// addHealthRoutes sets up health check routes
func (r *Router) addHealthRoutes(router *gin.Engine, handler *handler.HealthHandler) {
	health := router.Group("")
	{
		health.GET("/health", handler.HealthCheck)
		health.GET("/health/db", handler.DatabaseHealthCheck)
		health.GET("/ready", handler.ReadinessCheck)
		health.GET("/live", handler.LivenessCheck)
	}
}

// addEncodeRoutes sets up encode routes
func (r *Router) addEncodeRoutes(api *gin.RouterGroup, handler *handler.EncodeHandler) {
	encode := api.Group("/encode")
	{
		// Generic encode endpoint, kind carried in the body
		encode.POST("", handler.Encode)

		// Kind-specific endpoints
		encode.POST("/text", handler.FormatText)
		encode.POST("/align", handler.Align)
		encode.POST("/color", handler.Color)
		encode.POST("/barcode", handler.Barcode)
		encode.POST("/cut", handler.Cut)
		encode.POST("/charset", handler.Charset)
		encode.POST("/reencode", handler.Reencode)
		encode.POST("/feed", handler.Feed)
		encode.POST("/open-drawer", handler.OpenDrawer)
		encode.POST("/init", handler.Initialize)
		encode.POST("/document", handler.Document)
	}
}

// addDialectRoutes sets up dialect routes
func (r *Router) addDialectRoutes(api *gin.RouterGroup, handler *handler.DialectHandler) {
	dialects := api.Group("/dialects")
	{
		dialects.GET("", handler.ListDialects)
		dialects.POST("", handler.RegisterDialect)
		dialects.GET("/:name", handler.GetDialect)
		dialects.GET("/:name/symbols", handler.GetSymbols)
	}
}

// addOperationRoutes sets up operation audit routes
func (r *Router) addOperationRoutes(api *gin.RouterGroup, handler *handler.OperationHandler) {
	operations := api.Group("/operations")
	{
		operations.GET("", handler.ListOperations)
		operations.GET("/:operation_id", handler.GetOperation)
	}
}

// addWebSocketRoutes sets up WebSocket routes
func (r *Router) addWebSocketRoutes(router *gin.Engine, handler *handler.WebSocketHandler) {
	ws := router.Group("/ws")
	{
		ws.GET("/encode", handler.HandleEncodeConnection)
	}
}

// addDocumentationRoutes sets up documentation routes
func (r *Router) addDocumentationRoutes(router *gin.Engine) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Swagger redirect for convenience
	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
