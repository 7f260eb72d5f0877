package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/zhiyizhu805/FinShark/internal/config"
	"github.com/zhiyizhu805/FinShark/internal/database"
	"github.com/zhiyizhu805/FinShark/internal/handlers"
	"github.com/zhiyizhu805/FinShark/internal/logger"
	"github.com/zhiyizhu805/FinShark/internal/middleware"
	"github.com/zhiyizhu805/FinShark/internal/services"
	"github.com/zhiyizhu805/FinShark/internal/validator"

	_ "github.com/zhiyizhu805/FinShark/internal/docs" // Import swagger docs
)

// @title           FinShark API
// @version         1.0
// @description     FinShark lets users browse stock listings, discuss them in comments, and track their own portfolio of holdings.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db)
	commentService := services.NewCommentService(db)
	portfolioService := services.NewPortfolioService(db, stockService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	commentHandler := handlers.NewCommentHandler(commentService, stockService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Account routes (public)
	account := v1.Group("/account")
	account.POST("/register", authHandler.Register)
	account.POST("/login", authHandler.Login)

	// Stock routes
	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.POST("", stockHandler.CreateStock)
	stocks.PUT("/:id", stockHandler.UpdateStock)
	stocks.DELETE("/:id", stockHandler.DeleteStock)

	// Comment routes (reads public, writes authenticated)
	comments := v1.Group("/comments")
	comments.GET("", commentHandler.GetComments)
	comments.GET("/:id", commentHandler.GetComment)
	comments.PUT("/:id", middleware.AuthMiddleware(), commentHandler.UpdateComment)
	comments.DELETE("/:id", middleware.AuthMiddleware(), commentHandler.DeleteComment)
	stocks.POST("/:id/comments", middleware.AuthMiddleware(), commentHandler.CreateComment)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/account/profile", authHandler.Profile)

	// Portfolio routes
	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.POST("", portfolioHandler.AddStock)
	portfolio.DELETE("", portfolioHandler.RemoveStock)

	log.Infof("Starting FinShark backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
