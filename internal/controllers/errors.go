package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/apperrors"
)

// respondError maps a service error onto the HTTP status taxonomy.
// Unanticipated errors become a generic 500; their detail is only
// echoed in development mode.
func respondError(c *gin.Context, err error, development bool) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
		return
	}

	var unauthorizedErr *apperrors.UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": unauthorizedErr.Message,
		})
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": notFoundErr.Message,
		})
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"message": conflictErr.Message,
		})
		return
	}

	log.Printf("Unhandled error: %v", err)
	if development {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong!",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Internal server error",
	})
}
