package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nihalpictures/studio-api/internal/cache"
	"github.com/nihalpictures/studio-api/internal/config"
	dbpkg "github.com/nihalpictures/studio-api/internal/db"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cacheStore := cache.New(cfg.RedisAddr)

	hub, err := feed.NewHub(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to start change feed: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cacheStore, hub)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
