package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/foodlink/food-link-go/config"
	models "github.com/foodlink/food-link-go/models"
	stores "github.com/foodlink/food-link-go/stores"
	utils "github.com/foodlink/food-link-go/utils"
)

// ---------------- REGISTER ----------------
// Upserts a profile by email and returns it with a session token.
func RegisterProfile(cfg *config.Config, profiles stores.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName         string `json:"full_name"`
			Email            string `json:"email"`
			Role             string `json:"role"`
			OrganizationName string `json:"organization_name"`
			Phone            string `json:"phone"`
			Location         string `json:"location"`
			Address          string `json:"address"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Email == "" || input.Role == "" || input.FullName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "full_name, email, and role are required"})
			return
		}
		if input.Role != models.RoleRestaurant && input.Role != models.RoleNGO {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be restaurant or ngo"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		profile, err := profiles.UpsertByEmail(ctx, &models.Profile{
			FullName:         input.FullName,
			Email:            input.Email,
			Role:             input.Role,
			OrganizationName: input.OrganizationName,
			Phone:            input.Phone,
			Location:         input.Location,
			Address:          input.Address,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register profile"})
			return
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, profile.ID, profile.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"profile": profile, "token": token})
	}
}

// ---------------- LOGIN ----------------
// Looks a profile up by email. When the email is unknown and a valid
// role is supplied, a stub profile is created on the spot.
func LoginProfile(cfg *config.Config, profiles stores.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		profile, err := profiles.FindByEmail(ctx, input.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up profile"})
			return
		}

		if profile == nil {
			if input.Role != models.RoleRestaurant && input.Role != models.RoleNGO {
				c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
				return
			}
			now := time.Now()
			profile = &models.Profile{
				FullName:  strings.SplitN(input.Email, "@", 2)[0],
				Email:     input.Email,
				Role:      input.Role,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := profiles.Insert(ctx, profile); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
				return
			}
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, profile.ID, profile.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"profile": profile, "token": token})
	}
}

// ---------------- GET ----------------
func GetProfile(profiles stores.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		profile, err := profiles.FindByID(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up profile"})
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
