package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/josptrra/be-rasadhana/internal/infrastructure/database"
)

// Connectivity check for the backing stores, used when standing up a
// new environment.
func main() {
	mongoURI := "mongodb://localhost:27017"
	if v := os.Getenv("MONGO_URL"); v != "" {
		mongoURI = v
	}
	redisAddr := "localhost:6379"
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		redisAddr = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Printf("Connecting to mongo at %s\n", mongoURI)
	db, err := database.OpenMongo(ctx, mongoURI, "rasadhana")
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}
	fmt.Println("✓ Mongo connection successful")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	fmt.Println("✓ Indexes ensured")

	count, err := db.Collection("UserInfo").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to query UserInfo collection: %v", err)
	}
	fmt.Printf("✓ UserInfo collection accessible (current count: %d)\n", count)

	fmt.Printf("Connecting to redis at %s\n", redisAddr)
	rdb := database.NewRedis(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if err := rdb.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping redis: %v", err)
	}
	fmt.Println("✓ Redis connection successful")
}
