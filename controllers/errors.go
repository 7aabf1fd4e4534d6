package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	lifecycle "github.com/foodlink/food-link-go/lifecycle"
)

// respondError maps lifecycle errors onto HTTP statuses: invalid
// argument 400, not found 404, conflict 409, anything else 500.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
