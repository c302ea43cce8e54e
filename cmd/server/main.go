package main

import (
	"net/http"

	"appakabar/backend/internal/auth"
	"appakabar/backend/internal/config"
	"appakabar/backend/internal/database"
	"appakabar/backend/internal/handler"
	"appakabar/backend/internal/hub"
	"appakabar/backend/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	// Swagger imports
	_ "appakabar/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	config.LoadConfig()
}

// corsMiddleware allows the browser frontend to call the API with its
// session cookie.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// @title           Appakabar API
// @version         1.0
// @description     One-to-one chat: accounts, friendships and conversations addressed by pair id.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseDriver, config.AppConfig.DatabaseURL)

	handler.Init(store.New(database.DB), hub.GlobalHub)

	router := gin.Default()
	router.Use(corsMiddleware(config.AppConfig.AllowedOrigin))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.POST("/logout", handler.LogoutUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Friend routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("/search", handler.FindFriend) // Must be before any param route
			friendRoutes.GET("", handler.GetContacts)
			friendRoutes.POST("", handler.AddFriend)
		}

		// Chat routes (protected)
		chatRoutes := apiV1.Group("/chats")
		chatRoutes.Use(auth.AuthMiddleware())
		{
			chatRoutes.GET("/:chatID", handler.GetChat)
			chatRoutes.POST("/:chatID/messages", handler.SendChatMessage)
		}

		// Live event stream (protected)
		apiV1.GET("/events", auth.AuthMiddleware(), handler.StreamEvents)
	}

	log.Infof("Server is running on %s", config.AppConfig.ListenAddr)
	log.Info("Swagger UI is available at /swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
