package handler

import (
	"net/http"

	"linkup/backend/internal/auth"
	"linkup/backend/internal/database"
	"linkup/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the stores and middleware into the HTTP surface.
func NewRouter(gw *database.Gateway, jwtSecret string) *gin.Engine {
	users := store.NewUserStore(gw)
	relationships := store.NewRelationshipStore(gw)
	requests := store.NewRequestStore(gw)

	authHandler := NewAuthHandler(users, jwtSecret)
	userHandler := NewUserHandler(users)
	connHandler := NewConnectionHandler(relationships, requests)

	router := gin.Default()
	router.Use(cors.Default())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// User routes (protected)
		userRoutes := api.Group("/users")
		userRoutes.Use(auth.Middleware(jwtSecret))
		{
			userRoutes.GET("", userHandler.Search)
			userRoutes.GET("/me", userHandler.GetMe)
		}

		// Connection routes (protected)
		connRoutes := api.Group("/connections")
		connRoutes.Use(auth.Middleware(jwtSecret))
		{
			connRoutes.GET("", connHandler.List)
			connRoutes.GET("/stats", connHandler.Stats)
			connRoutes.GET("/suggestions", connHandler.Suggestions)

			connRoutes.GET("/requests", connHandler.ListRequests)
			connRoutes.POST("/requests/:id", connHandler.SendRequest)
			connRoutes.POST("/requests/:id/accept", connHandler.AcceptRequest)
			connRoutes.POST("/requests/:id/reject", connHandler.RejectRequest)

			connRoutes.POST("/:followingId", connHandler.Follow)
			connRoutes.DELETE("/:followingId", connHandler.Unfollow)
		}
	}

	return router
}
