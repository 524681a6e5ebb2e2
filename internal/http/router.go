package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "smarttoll/internal/config"
	"smarttoll/internal/domain"
	h "smarttoll/internal/http/handlers"
	"smarttoll/internal/http/middleware"
)

func NewRouter(env intconfig.Env, handlers *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsConfig())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)
	authLimiter := middleware.NewLimiter(5)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		auth := api.Group("/auth")
		auth.Use(authLimiter.RateLimit())
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.POST("/verify-otp", handlers.VerifyOTP)
		auth.POST("/logout", middleware.Auth(secret), handlers.Logout)

		// Admin dashboard: booth management + overview tiles
		booths := api.Group("/booths")
		booths.Use(middleware.Auth(secret))
		booths.GET("", handlers.GetBooths)
		booths.POST("", middleware.RequireRoles(string(domain.RoleAdmin)), handlers.CreateBooth)
		booths.PUT("/:id", middleware.RequireRoles(string(domain.RoleAdmin)), handlers.UpdateBooth)
		booths.DELETE("/:id", middleware.RequireRoles(string(domain.RoleAdmin)), handlers.DeleteBooth)

		// Operator dashboard: live lane monitoring
		passes := api.Group("/passes")
		passes.Use(middleware.Auth(secret))
		passes.GET("", handlers.GetPasses)
		passes.POST("", middleware.RequireRoles(string(domain.RoleOperator), string(domain.RoleAdmin)), handlers.DetectVehicle)
		passes.POST("/:id/advance", middleware.RequireRoles(string(domain.RoleOperator), string(domain.RoleAdmin)), handlers.AdvancePass)
		passes.GET("/:id/receipt", handlers.GetPassReceipt)

		// User dashboard: wallet
		wallet := api.Group("/wallet")
		wallet.Use(middleware.Auth(secret), middleware.RequireRoles(string(domain.RoleUser), string(domain.RoleAdmin)))
		wallet.GET("", handlers.GetWallet)
		wallet.POST("/recharge", handlers.Recharge)
		wallet.POST("/pay", handlers.PayToll)
		wallet.GET("/statement", handlers.GetWalletStatement)

		stats := api.Group("/stats")
		stats.Use(middleware.Auth(secret))
		stats.GET("/admin", middleware.RequireRoles(string(domain.RoleAdmin)), handlers.GetAdminStats)
		stats.GET("/operator", middleware.RequireRoles(string(domain.RoleOperator), string(domain.RoleAdmin)), handlers.GetOperatorStats)
	}

	return r
}

func corsConfig() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	return cors.New(cfg)
}
