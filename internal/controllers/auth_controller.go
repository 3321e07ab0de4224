package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/entities"
	"taskboard-be/internal/middleware"
	"taskboard-be/internal/models"
	"taskboard-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
	development bool
}

func NewAuthController(authService service.AuthService, development bool) *AuthController {
	return &AuthController{
		authService: authService,
		development: development,
	}
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		respondError(c, err, ac.development)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		respondError(c, err, ac.development)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Profile handles GET /api/auth/profile
func (ac *AuthController) Profile(c *gin.Context) {
	user := c.MustGet(middleware.ContextUserKey).(*entities.User)

	c.JSON(http.StatusOK, models.ProfileResponse{
		Message: "Profile retrieved successfully",
		User: models.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
