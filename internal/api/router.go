package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lorehub/lore-hub-api/docs"
	"github.com/lorehub/lore-hub-api/internal/api/handler"
	"github.com/lorehub/lore-hub-api/internal/api/middleware"
	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
	"github.com/lorehub/lore-hub-api/internal/core/service"
	mongodb "github.com/lorehub/lore-hub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lorehub/lore-hub-api/internal/infrastructure/db/redis"
)

// Options carries the wiring inputs for the router.
type Options struct {
	JWTSecret  string
	BcryptCost int
	TokenTTL   time.Duration
	Audit      ports.AuditRecorder
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("lorehub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	campaignRepo := mongodb.NewCampaignRepository(db)
	characterRepo := mongodb.NewCharacterRepository(db)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revoker, opts.JWTSecret, opts.TokenTTL, opts.BcryptCost)
	userService := service.NewUserAdminService(userRepo, opts.Audit, opts.BcryptCost, opts.Logger)
	campaignService := service.NewCampaignService(campaignRepo, characterRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	campaignHandler := handler.NewCampaignHandler(campaignService)

	authMiddleware := middleware.Auth(opts.JWTSecret, revoker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Admin routes (session + ADMIN role required) ---
	admin := e.Group("/v1/admin", authMiddleware, adminOnly)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Campaign routes (any authenticated role) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/campaigns", campaignHandler.List)
	v1.GET("/campaigns/:id/characters", campaignHandler.Characters)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
