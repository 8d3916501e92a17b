package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thetensy/tensy-api/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.GET("/line", handler.LineLogin)
			authGroup.GET("/line/callback", handler.LineCallback)
			authGroup.GET("/me", sessionMiddleware(handler.authSvc), handler.Me)
			authGroup.POST("/logout", handler.Logout)
			authGroup.GET("/logout", handler.LogoutRedirect)
		}

		memberGroup := api.Group("/member", sessionMiddleware(handler.authSvc))
		{
			memberGroup.GET("/:id", handler.GetMember)
			memberGroup.POST("/:id/deposit", handler.Deposit)
			memberGroup.POST("/:id/quote", handler.Quote)
		}

		api.GET("/products", handler.Products)
		api.GET("/styles", handler.Styles)
		api.GET("/portfolio", handler.Portfolio)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
