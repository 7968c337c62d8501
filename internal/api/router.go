package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/civicdesk/civicdesk-api/docs"
	"github.com/civicdesk/civicdesk-api/internal/api/handler"
	"github.com/civicdesk/civicdesk-api/internal/api/middleware"
	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/service"
	"github.com/civicdesk/civicdesk-api/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/civicdesk/civicdesk-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *postgres.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("civicdesk"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	issueRepo := postgres.NewIssueRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	recorder := service.NewAuditRecorder(auditRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	issueService := service.NewIssueService(issueRepo)
	adminService := service.NewAdminService(userRepo, issueRepo, categoryRepo, settingsRepo, auditRepo, recorder, db)

	authHandler := handler.NewAuthHandler(authService)
	issueHandler := handler.NewIssueHandler(issueService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.RBAC(domain.RoleAdmin)
	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max)
	rateLimitMW := middleware.RateLimit(limiter, log)

	// --- API routes ---
	apiGroup := e.Group("/api", rateLimitMW)

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, authMW)

	apiGroup.GET("/issues", issueHandler.List)
	apiGroup.POST("/issues", issueHandler.Report)

	admin := apiGroup.Group("/admin", authMW, adminMW)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/issues", adminHandler.ListIssues)
	admin.PATCH("/issues/:id", adminHandler.UpdateIssue)
	admin.DELETE("/issues/:id", adminHandler.DeleteIssue)
	admin.GET("/categories", adminHandler.ListCategories)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.PATCH("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	admin.GET("/settings", adminHandler.GetSettings)
	admin.PUT("/settings", adminHandler.UpdateSettings)
	admin.GET("/audit-logs", adminHandler.ListAuditLogs)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db.SQL(), rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
