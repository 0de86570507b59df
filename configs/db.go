package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

func DB() *mongo.Database {
	return database
}

func ConnectionDB(cfg *Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	client = c
	database = c.Database(cfg.DBName)
}

func CloseDB() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("disconnect: %v", err)
	}
}
