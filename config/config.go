package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Config struct {
	MongoClient *mongo.Client
	DBName      string
	Port        string
	JWTSecret   string
}

// Load reads the environment and connects to MongoDB.
func Load() (*Config, error) {
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = os.Getenv("MONGO_URL")
	}
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "food_link_impact"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET not set, using insecure default")
		secret = "dev-secret-change-me"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")

	return &Config{
		MongoClient: client,
		DBName:      dbName,
		Port:        port,
		JWTSecret:   secret,
	}, nil
}

func (c *Config) Database() *mongo.Database {
	return c.MongoClient.Database(c.DBName)
}
