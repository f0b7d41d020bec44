package handler

import (
	"pod-seller-ledger/internal/adapter/http/middleware"
	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"
	"pod-seller-ledger/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	AdvanceSvc     ports.AdvanceService
	TokenSvc       ports.TokenService
	RolePolicy     domain.RolePolicy
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MetricsEnabled bool
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.MetricsEnabled {
		r.Use(metrics.Middleware())
		r.GET("/metrics", metrics.Handler())
	}
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: postgres + redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.RolePolicy, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/me", rl(middleware.GroupRead), walletHandler.GetMine)
		wallets.GET("/me/credit", rl(middleware.GroupRead), walletHandler.GetMyCredit)
		wallets.GET("/me/transactions", rl(middleware.GroupRead), walletHandler.ListMyTransactions)
		wallets.GET("/sellers/:sellerId", rl(middleware.GroupRead), walletHandler.GetSellerWallet)
		wallets.GET("/sellers/:sellerId/transactions", rl(middleware.GroupRead), walletHandler.ListSellerTransactions)
		wallets.POST("/sellers/:sellerId/transactions", rl(middleware.GroupWalletsWrite), walletHandler.PostTransaction)
	}

	advanceHandler := NewAdvanceHandler(deps.AdvanceSvc)
	advances := v1.Group("/advances")
	{
		advances.POST("", rl(middleware.GroupAdvancesWrite), advanceHandler.Request)
		advances.GET("", rl(middleware.GroupRead), advanceHandler.List)
		advances.GET("/:id", rl(middleware.GroupRead), advanceHandler.Get)
		advances.GET("/:id/repayments", rl(middleware.GroupRead), advanceHandler.ListRepayments)
		advances.POST("/:id/approve", rl(middleware.GroupAdvancesWrite), advanceHandler.Approve)
		advances.POST("/:id/reject", rl(middleware.GroupAdvancesWrite), advanceHandler.Reject)
		advances.POST("/:id/disburse", rl(middleware.GroupAdvancesWrite), advanceHandler.Disburse)
		advances.POST("/:id/repay", rl(middleware.GroupAdvancesWrite), advanceHandler.Repay)
		advances.POST("/:id/mark-outstanding", rl(middleware.GroupAdvancesWrite), advanceHandler.MarkOutstanding)
	}

	return r
}
