package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	config "github.com/foodlink/food-link-go/config"
	lifecycle "github.com/foodlink/food-link-go/lifecycle"
	routes "github.com/foodlink/food-link-go/routes"
	stores "github.com/foodlink/food-link-go/stores"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cfg.MongoClient.Disconnect(ctx); err != nil {
			log.Printf("MongoDB disconnect error: %v", err)
		}
	}()

	db := cfg.Database()
	donations := stores.NewMongoDonationStore(db)
	matches := stores.NewMongoMatchStore(db)
	profiles := stores.NewMongoProfileStore(db)
	svc := lifecycle.NewService(donations, matches, profiles)

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r, cfg, svc, donations, profiles)

	log.Printf("API server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
