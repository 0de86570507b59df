package main

import (
	"fmt"
	"log"

	"github.com/RitheshHB23/cafeteriaa/configs"
	"github.com/RitheshHB23/cafeteriaa/middlewares"
	"github.com/RitheshHB23/cafeteriaa/routes"
	"github.com/RitheshHB23/cafeteriaa/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	defer configs.CloseDB()
	db := configs.DB()

	// first-run catalogue
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// reject unknown fields in request bodies
	gin.EnableJsonDecoderDisallowUnknownFields()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// live staff notification feed
	hub := ws.NewNotifyHub()
	go hub.Run()

	routes.RegisterRoutes(r, db, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
