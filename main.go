package main

import (
	"log"
	"time"

	"github.com/Josip135/TattooStudio/config"
	"github.com/Josip135/TattooStudio/database"
	routes "github.com/Josip135/TattooStudio/internal/app/http"
	"github.com/Josip135/TattooStudio/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	store, err := storage.NewMinioStorage(cfg)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, store, cfg.JWTSecret)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ ", err)
	}
}
