package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/middleware"
	"taskboard-be/internal/service"
)

// RouterOptions carries everything the route table needs.
type RouterOptions struct {
	AuthService service.AuthService
	TaskService service.TaskService
	ClientURL   string
	Development bool

	// Optional rate limiters; nil disables limiting for that group.
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
}

// NewRouter builds the gin engine with the full API surface.
func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong!",
		})
	}))
	router.Use(middleware.CORSMiddleware(opts.ClientURL))

	authController := NewAuthController(opts.AuthService, opts.Development)
	taskController := NewTaskController(opts.TaskService, opts.Development)

	// Health check endpoint (no auth, no rate limiting)
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Task Manager API is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	if opts.GeneralLimiter != nil {
		api.Use(opts.GeneralLimiter.LimitMiddleware())
	}

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(opts.AuthLimiter.LimitMiddleware())
	}
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)
	auth.GET("/profile", middleware.AuthMiddleware(opts.AuthService), authController.Profile)

	// Protected task routes - require JWT authentication
	tasks := api.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(opts.AuthService))
	{
		tasks.GET("", taskController.List)
		tasks.POST("", taskController.Create)
		tasks.GET("/:id", taskController.Get)
		tasks.PUT("/:id", taskController.Update)
		tasks.DELETE("/:id", taskController.Delete)
	}

	// Unmatched routes get a JSON 404 instead of gin's default
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
		})
	})

	return router
}
