package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/config"
	"github.com/usersnack/usersnack/internal/server/http/handlers"
	"github.com/usersnack/usersnack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Catalog reads,
// checkout, and account signup are public; everything that mutates the
// catalog or inspects other customers requires a bearer token.
func Setup(facade handlers.SnackFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(corsConfig(cfg)))

	authHandler := handlers.NewAuthHandler(facade, facade)
	healthHandler := handlers.NewHealthHandler(health)
	pizzaHandler := handlers.NewPizzaHandler(facade)
	extraHandler := handlers.NewExtraHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to UserSnack API"})
	})
	engine.GET("/health", healthHandler.Status)

	api := engine.Group("/api")
	api.POST("/auth/token", authHandler.Token)
	api.GET("/pizzas", pizzaHandler.List)
	api.GET("/pizzas/:id", pizzaHandler.Get)
	api.GET("/extras", extraHandler.List)
	api.GET("/extras/:id", extraHandler.Get)
	api.POST("/orders", orderHandler.Create)
	api.POST("/users", userHandler.Create)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/pizzas", pizzaHandler.Create)
	protected.PUT("/pizzas/:id", pizzaHandler.Update)
	protected.DELETE("/pizzas/:id", pizzaHandler.Delete)
	protected.POST("/extras", extraHandler.Create)
	protected.PUT("/extras/:id", extraHandler.Update)
	protected.DELETE("/extras/:id", extraHandler.Delete)
	protected.GET("/orders", orderHandler.List)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	protected.GET("/users", userHandler.List)
	protected.GET("/users/:id", userHandler.Get)
	protected.GET("/users/:id/orders", orderHandler.ListByUser)
	protected.GET("/users/email/:email", userHandler.GetByEmail)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", userHandler.Delete)

	return engine
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
