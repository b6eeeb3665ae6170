package routes

import (
	"time"

	"teamflow-backend/internal/api/handlers"
	"teamflow-backend/internal/api/middleware"
	"teamflow-backend/internal/auth"
	"teamflow-backend/internal/config"
	"teamflow-backend/internal/repository"
	"teamflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	scopeRecordRepo := repository.NewScopeRecordRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Initialize auth
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authMiddleware := auth.NewAuthMiddleware(issuer)

	// Initialize services
	recordService := service.NewRecordService(scopeRecordRepo, validator)
	accountService := service.NewAccountService(accountRepo, issuer, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	recordHandler := handlers.NewRecordHandler(recordService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Scope records: the sync clients' read/write surface. Reads and
		// writes are open so dashboards can share a scope with nothing but
		// the key; deletion requires a session.
		records := v1.Group("/records")
		{
			records.GET("/:key", recordHandler.GetRecord)
			records.PUT("/:key", recordHandler.PutRecord)
			records.DELETE("/:key", authMiddleware.RequireAuth(), recordHandler.DeleteRecord)
		}

		// Account routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", accountHandler.Register)
			authGroup.POST("/login", accountHandler.Login)
		}
		v1.POST("/accounts/scope", authMiddleware.RequireAuth(), accountHandler.SwitchScope)
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
