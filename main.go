package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Tinesuzb/milano-cafe-uzb/configs"
	"github.com/Tinesuzb/milano-cafe-uzb/middlewares"
	"github.com/Tinesuzb/milano-cafe-uzb/repository"
	"github.com/Tinesuzb/milano-cafe-uzb/routes"
	"github.com/Tinesuzb/milano-cafe-uzb/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (nil handle = demo mode, fixtures on read endpoints)
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if db == nil {
		log.Println("no DATABASE_URL configured, running in demo mode")
	} else {
		if err := configs.SetupDatabase(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		if err := configs.SeedAdmin(db, cfg); err != nil {
			log.Fatalf("seed admin failed: %v", err)
		}
		if err := configs.SeedCategories(db); err != nil {
			log.Fatalf("seed categories failed: %v", err)
		}
	}

	// Order event feed; the watcher only polls with a real database.
	var orderRepo *repository.OrderRepository
	if db != nil {
		orderRepo = repository.NewOrderRepository(db)
	}
	feed := ws.NewOrderFeed(orderRepo, 30*time.Second)
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
