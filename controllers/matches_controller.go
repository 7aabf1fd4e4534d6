package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	lifecycle "github.com/foodlink/food-link-go/lifecycle"
	models "github.com/foodlink/food-link-go/models"
)

// ---------------- LIST BY NGO ----------------
func ListMatchesByNGO(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		matches, err := svc.ListMatchesByNGO(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch matches"})
			return
		}

		if matches == nil {
			matches = []models.EnrichedMatch{}
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}
}

// ---------------- UPDATE STATUS ----------------
func UpdateMatchStatus(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		match, err := svc.UpdateMatchStatus(ctx, c.Param("id"), input.Status)
		if err != nil {
			respondError(c, err, "failed to update match status")
			return
		}

		c.JSON(http.StatusOK, gin.H{"match": match})
	}
}
