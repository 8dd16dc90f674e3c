package handler

import (
	"atm-service/internal/adapter/http/middleware"
	redisStore "atm-service/internal/adapter/storage/redis"
	"atm-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	ReportingSvc   ports.ReportingService
	Sessions       ports.SessionManager
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies storage + redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.LedgerSvc, deps.Sessions, deps.TokenSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- Session-authenticated routes ---
	sessionAuth := middleware.SessionAuth(deps.TokenSvc, deps.Sessions, deps.Logger)
	accountHandler := NewAccountHandler(deps.LedgerSvc)
	historyHandler := NewHistoryHandler(deps.ReportingSvc)

	v1.POST("/auth/logout", sessionAuth, authHandler.Logout)

	accounts := v1.Group("/accounts", sessionAuth)
	{
		accounts.GET("/balance", rl("transactions"), accountHandler.GetBalance)
		accounts.POST("/withdraw", rl("transactions"), accountHandler.Withdraw)
		accounts.POST("/deposit", rl("transactions"), accountHandler.Deposit)
		accounts.POST("/transfer", rl("transactions"), accountHandler.Transfer)
	}

	transactions := v1.Group("/transactions", sessionAuth)
	{
		transactions.GET("", rl("history"), historyHandler.List)
		transactions.GET("/export", rl("history"), historyHandler.Export)
	}

	return r
}
