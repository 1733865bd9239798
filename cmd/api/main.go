package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/glamora/booking-api/internal/config"
	"github.com/glamora/booking-api/internal/db"
	"github.com/glamora/booking-api/internal/middleware"
	"github.com/glamora/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	log.Println("listening on", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
