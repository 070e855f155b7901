package main

import (
	"net/http"

	"connections/backend/internal/auth"
	"connections/backend/internal/config"
	"connections/backend/internal/database"
	"connections/backend/internal/handler"
	"connections/backend/pkg/logger"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "connections/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Connections API
// @version         1.0
// @description     Backend for the Connections word-grouping puzzle game.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

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
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Public game routes: players load games, submit playthroughs and view
		// stats without an account.
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("/code/:code", handler.GetGameByCode)
			gameRoutes.GET("/code/:code/stats/guess-distribution", handler.GetGuessDistribution)
			gameRoutes.GET("/code/:code/stats/average-time", handler.GetAverageTimePerCategory)
			gameRoutes.GET("/code/:code/stats/submissions", handler.GetSubmissionCount)
		}
		apiV1.POST("/submit", handler.CreateSubmission)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Courses CRUD
			courses := adminRoutes.Group("/courses")
			{
				courses.POST("", handler.CreateCourse)
				courses.GET("", handler.GetCourses)
				courses.PUT("/:id", handler.UpdateCourse)
				courses.DELETE("/:id", handler.DeleteCourse)
			}

			// Games CRUD
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", handler.CreateGame)
				adminGameRoutes.GET("", handler.GetGames)
				adminGameRoutes.GET("/:id", handler.GetGameByID)
				adminGameRoutes.POST("/:id/publish", handler.TogglePublishGame)
				adminGameRoutes.PUT("/:id/course", handler.AssignGameCourse)
				adminGameRoutes.DELETE("/:id", handler.DeleteGame)
			}

			// Raw submission log (read-only; submissions are immutable)
			adminRoutes.GET("/submissions", handler.GetSubmissions)
		}
	}

	addr := ":" + config.AppConfig.Port
	logger.Info("Server is running", "addr", addr)
	logger.Info("Swagger UI is available", "url", "http://localhost"+addr+"/swagger/index.html")
	if err := router.Run(addr); err != nil {
		logger.Fatal("Server stopped", err)
	}
}
