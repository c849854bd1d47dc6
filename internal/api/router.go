package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/neobank/neobank/internal/api/handler"
	"github.com/neobank/neobank/internal/api/middleware"
	"github.com/neobank/neobank/internal/core/service"
	"github.com/neobank/neobank/internal/infrastructure/config"
	mongodb "github.com/neobank/neobank/internal/infrastructure/db/mongo"
	redisdb "github.com/neobank/neobank/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg config.ServerConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("neobank"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)
	accountService := service.NewAccountService(accountRepo, tokenStore, cfg.JWTSecret, cfg.TokenTTL, cfg.SignupBonus)
	authHandler := handler.NewAuthHandler(accountService, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(accountService)
	sessionMiddleware := middleware.Session(cfg.JWTSecret)

	// --- Banking API (the surface the client consumes) ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/user_info", userHandler.Info, sessionMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
