package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventgate/ticketing-backend/config"
	"github.com/eventgate/ticketing-backend/database"
	"github.com/eventgate/ticketing-backend/internal/admin"
	"github.com/eventgate/ticketing-backend/internal/auditlog"
	"github.com/eventgate/ticketing-backend/internal/auth"
	"github.com/eventgate/ticketing-backend/internal/category"
	"github.com/eventgate/ticketing-backend/internal/event"
	"github.com/eventgate/ticketing-backend/internal/payment"
	"github.com/eventgate/ticketing-backend/internal/ticket"
	"github.com/eventgate/ticketing-backend/internal/venue"
	"github.com/eventgate/ticketing-backend/routes"
	"github.com/eventgate/ticketing-backend/utils"
)

// @title           Event Ticketing API
// @version         1.0
// @description     REST backend for browsing events, purchasing tickets and recording payments.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (password reset tokens)
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Init Kafka (audit pipeline, optional)
	utils.InitKafka(cfg)
	defer utils.CloseKafka()

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&admin.Admin{},
		&category.Category{},
		&venue.Venue{},
		&event.Event{},
		&ticket.Ticket{},
		&payment.Payment{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed baseline data
	if err := admin.SeedDefaultAdmin(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin: %v", err))
	}
	if err := auth.SeedDemoUser(db); err != nil {
		log.Printf("⚠️ Demo user seed failed: %v", err)
	}
	if err := category.SeedCategories(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed categories: %v", err))
	}
	if err := venue.SeedVenues(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed venues: %v", err))
	}

	// Audit consumer persists events published to Kafka
	auditlog.StartConsumer(cfg, auditlog.NewRepository(db))

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
