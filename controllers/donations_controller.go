package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	lifecycle "github.com/foodlink/food-link-go/lifecycle"
	models "github.com/foodlink/food-link-go/models"
	stores "github.com/foodlink/food-link-go/stores"
	utils "github.com/foodlink/food-link-go/utils"
)

// ---------------- LIST AVAILABLE ----------------
func ListAvailableDonations(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		donations, err := svc.ListAvailable(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donations"})
			return
		}

		if len(donations) == 0 {
			c.JSON(http.StatusOK, gin.H{"donations": []models.EnrichedDonation{}})
			return
		}

		// --- Pick the most recently updated donation ---
		latest := donations[0]
		for _, d := range donations {
			if d.UpdatedAt.After(latest.UpdatedAt) {
				latest = d
			}
		}

		// --- Generate ETag from latest donation ---
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, gin.H{"donations": donations})
	}
}

// ---------------- LIST BY RESTAURANT ----------------
func ListDonationsByRestaurant(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		donations, err := svc.ListByRestaurant(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch restaurant donations"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"donations": donations})
	}
}

// ---------------- CREATE ----------------
func CreateDonation(donations stores.DonationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			RestaurantID    string  `json:"restaurant_id" form:"restaurant_id"`
			FoodName        string  `json:"food_name" form:"food_name"`
			FoodType        string  `json:"food_type" form:"food_type"`
			Quantity        float64 `json:"quantity" form:"quantity"`
			Unit            string  `json:"unit" form:"unit"`
			Description     string  `json:"description" form:"description"`
			PickupTimeStart string  `json:"pickup_time_start" form:"pickup_time_start"`
			PickupTimeEnd   string  `json:"pickup_time_end" form:"pickup_time_end"`
			ExpiresAt       string  `json:"expires_at" form:"expires_at"`
			Location        string  `json:"location" form:"location"`
			ImageURL        string  `json:"image_url" form:"image_url"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.RestaurantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
			return
		}
		if input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
			return
		}

		// --- Optional image upload (multipart only) ---
		imageURL := input.ImageURL
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if fileHeader, err := c.FormFile("image"); err == nil {
				file, err := fileHeader.Open()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open image"})
					return
				}
				url, err := utils.UploadDonationImage(file, fileHeader)
				file.Close()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed", "details": err.Error()})
					return
				}
				imageURL = url
			}
		}

		now := time.Now()
		donation := models.FoodDonation{
			ID:              uuid.NewString(),
			RestaurantID:    input.RestaurantID,
			FoodName:        input.FoodName,
			FoodType:        input.FoodType,
			Quantity:        input.Quantity,
			Unit:            input.Unit,
			Description:     input.Description,
			PickupTimeStart: input.PickupTimeStart,
			PickupTimeEnd:   input.PickupTimeEnd,
			ExpiresAt:       input.ExpiresAt,
			Location:        input.Location,
			ImageURL:        imageURL,
			Status:          models.DonationAvailable,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := donations.Insert(ctx, &donation); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create donation"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"donation": donation})
	}
}

// ---------------- ACCEPT ----------------
func AcceptDonation(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DonationID       string   `json:"donationId"`
			NGOID            string   `json:"ngoId"`
			RestaurantID     string   `json:"restaurantId"`
			AcceptedQuantity *float64 `json:"acceptedQuantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := svc.Accept(ctx, input.DonationID, input.NGOID, input.RestaurantID, input.AcceptedQuantity)
		if err != nil {
			respondError(c, err, "failed to accept donation")
			return
		}

		c.JSON(http.StatusOK, gin.H{"donation": result.Donation, "full": result.Full})
	}
}

// ---------------- FULFILL ----------------
func FulfillDonation(svc *lifecycle.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		donation, err := svc.Fulfill(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err, "failed to fulfill donation")
			return
		}

		c.JSON(http.StatusOK, gin.H{"donation": donation})
	}
}
