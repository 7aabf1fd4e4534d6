package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/foodlink/food-link-go/config"
	controllers "github.com/foodlink/food-link-go/controllers"
	lifecycle "github.com/foodlink/food-link-go/lifecycle"
	middleware "github.com/foodlink/food-link-go/middleware"
	stores "github.com/foodlink/food-link-go/stores"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc *lifecycle.Service, donations stores.DonationStore, profiles stores.ProfileStore) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	auth := middleware.AuthMiddleware(cfg)

	// public
	r.POST("/api/profiles/register", controllers.RegisterProfile(cfg, profiles))
	r.POST("/api/profiles/login", controllers.LoginProfile(cfg, profiles))
	r.GET("/api/donations/available", controllers.ListAvailableDonations(svc))

	// protected
	donationRoutes := r.Group("/api/donations")
	donationRoutes.Use(auth)
	{
		donationRoutes.GET("/by-restaurant/:id", controllers.ListDonationsByRestaurant(svc))
		donationRoutes.POST("/create", controllers.CreateDonation(donations))
		donationRoutes.POST("/accept", controllers.AcceptDonation(svc))
		donationRoutes.PATCH("/:id/fulfill", controllers.FulfillDonation(svc))
	}

	matchRoutes := r.Group("/api/matches")
	matchRoutes.Use(auth)
	{
		matchRoutes.GET("/by-ngo/:id", controllers.ListMatchesByNGO(svc))
		matchRoutes.PATCH("/:id/status", controllers.UpdateMatchStatus(svc))
	}

	profileRoutes := r.Group("/api/profiles")
	profileRoutes.Use(auth)
	{
		profileRoutes.GET("/:id", controllers.GetProfile(profiles))
	}
}
