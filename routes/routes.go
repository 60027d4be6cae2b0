package routes

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/eventgate/ticketing-backend/config"
	"github.com/eventgate/ticketing-backend/database"
	"github.com/eventgate/ticketing-backend/internal/admin"
	"github.com/eventgate/ticketing-backend/internal/auditlog"
	"github.com/eventgate/ticketing-backend/internal/auth"
	"github.com/eventgate/ticketing-backend/internal/category"
	"github.com/eventgate/ticketing-backend/internal/dashboard"
	"github.com/eventgate/ticketing-backend/internal/event"
	"github.com/eventgate/ticketing-backend/internal/payment"
	"github.com/eventgate/ticketing-backend/internal/ticket"
	"github.com/eventgate/ticketing-backend/internal/venue"
	"github.com/eventgate/ticketing-backend/middleware"

	_ "github.com/eventgate/ticketing-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module onto the router
func Setup(r *gin.Engine, cfg *config.Config) {
	// Event images are served straight from the uploads directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		fmt.Printf("Warning: could not create uploads directory: %v\n", err)
	}
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth (users) ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc, auditSvc)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimiter())
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// ========== Admin auth ==========
	adminRepo := admin.NewRepository(database.DB)
	adminSvc := admin.NewService(adminRepo, cfg)
	adminHandler := admin.NewHandler(adminSvc, auditSvc)

	adminAuthGroup := api.Group("/admin-auth")
	adminAuthGroup.Use(middleware.AuthRateLimiter())
	{
		adminAuthGroup.POST("/login", adminHandler.Login)
	}

	userAuth := middleware.AuthMiddleware(cfg, authSvc)
	adminAuth := middleware.AdminAuthMiddleware(cfg, adminSvc)
	requireAdmin := middleware.RequireAdminRole(middleware.RoleAdmin)

	adminAuthed := api.Group("/admin-auth")
	adminAuthed.Use(adminAuth)
	{
		adminAuthed.GET("/me", adminHandler.Me)
		adminAuthed.POST("/logout", adminHandler.Logout)
	}

	// ========== Profile ==========
	profileGroup := api.Group("/profile")
	profileGroup.Use(userAuth)
	{
		profileGroup.GET("", authHandler.GetProfile)
		profileGroup.PUT("", authHandler.UpdateProfile)
	}

	// ========== Categories ==========
	categoryRepo := category.NewRepository(database.DB)
	categorySvc := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categorySvc)

	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)

	adminCategories := api.Group("/admin/categories")
	adminCategories.Use(adminAuth, requireAdmin)
	{
		adminCategories.POST("", categoryHandler.Create)
		adminCategories.PUT("/:id", categoryHandler.Update)
		adminCategories.DELETE("/:id", categoryHandler.Delete)
	}

	// ========== Venues ==========
	venueRepo := venue.NewRepository(database.DB)
	venueSvc := venue.NewService(venueRepo)
	venueHandler := venue.NewHandler(venueSvc)

	api.GET("/venues", venueHandler.List)
	api.GET("/venues/:id", venueHandler.Get)

	adminVenues := api.Group("/admin/venues")
	adminVenues.Use(adminAuth, requireAdmin)
	{
		adminVenues.POST("", venueHandler.Create)
		adminVenues.PUT("/:id", venueHandler.Update)
		adminVenues.DELETE("/:id", venueHandler.Delete)
	}

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, categorySvc)
	eventHandler := event.NewHandler(eventSvc, auditSvc, cfg)

	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)

	adminEvents := api.Group("/admin/events")
	adminEvents.Use(adminAuth, requireAdmin)
	{
		adminEvents.GET("", eventHandler.AdminList)
		adminEvents.POST("", eventHandler.Create)
		adminEvents.PUT("/:id", eventHandler.Update)
		adminEvents.DELETE("/:id", eventHandler.Delete)
		adminEvents.POST("/:id/image", eventHandler.UploadImage)
	}

	// ========== Tickets ==========
	ticketRepo := ticket.NewRepository(database.DB)
	ticketSvc := ticket.NewService(ticketRepo)
	ticketHandler := ticket.NewHandler(ticketSvc, auditSvc)

	ticketGroup := api.Group("/tickets")
	ticketGroup.Use(userAuth)
	{
		ticketGroup.POST("", ticketHandler.Purchase)
		ticketGroup.GET("", ticketHandler.List)
		ticketGroup.GET("/:id", ticketHandler.Get)
		ticketGroup.PUT("/:id", ticketHandler.Update)
		ticketGroup.DELETE("/:id", ticketHandler.Delete)
	}

	// ========== Payments ==========
	paymentRepo := payment.NewRepository(database.DB)
	paymentSvc := payment.NewService(paymentRepo)
	paymentHandler := payment.NewHandler(paymentSvc, auditSvc)

	paymentGroup := api.Group("/payments")
	paymentGroup.Use(userAuth)
	{
		paymentGroup.POST("", paymentHandler.Create)
		paymentGroup.GET("", paymentHandler.List)
		paymentGroup.GET("/:id", paymentHandler.Get)
	}

	adminPayments := api.Group("/admin/payments")
	adminPayments.Use(adminAuth, requireAdmin)
	{
		adminPayments.GET("", paymentHandler.AdminList)
		adminPayments.PUT("/:id", paymentHandler.UpdateStatus)
	}

	adminTickets := api.Group("/admin/tickets")
	adminTickets.Use(adminAuth, requireAdmin)
	{
		adminTickets.GET("", ticketHandler.AdminList)
	}

	// ========== Dashboard ==========
	dashboardRepo := dashboard.NewRepository(database.DB)
	dashboardSvc := dashboard.NewService(dashboardRepo, dashboard.NewExporter())
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	adminDashboard := api.Group("/admin/dashboard")
	adminDashboard.Use(adminAuth, requireAdmin)
	{
		adminDashboard.GET("/stats", dashboardHandler.GetStats)
		adminDashboard.GET("/reports", dashboardHandler.GetReports)
		adminDashboard.GET("/analytics", dashboardHandler.GetAnalytics)
		adminDashboard.GET("/reports/export", dashboardHandler.ExportReports)
	}

	// ========== Audit logs (admin) ==========
	adminAudit := api.Group("/admin/audit-logs")
	adminAudit.Use(adminAuth, requireAdmin)
	{
		adminAudit.GET("", auditHandler.GetAuditLogs)
		adminAudit.GET("/:id", auditHandler.GetAuditLogByID)
	}
}
