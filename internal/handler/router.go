package handler

import (
	"smart-hospital-display/internal/config"
	"smart-hospital-display/internal/middleware"
	"smart-hospital-display/internal/repository"
	"smart-hospital-display/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Repositories
	tokenRepo := repository.NewTokenRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// Services
	tokenService := service.NewTokenService(tokenRepo, auditRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, auditRepo)
	alertService := service.NewAlertService(alertRepo, auditRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, auditRepo)
	auditService := service.NewAuditService(auditRepo)

	// Handlers
	healthHandler := NewHealthHandler(db)
	tokenHandler := NewTokenHandler(tokenService)
	inventoryHandler := NewInventoryHandler(inventoryService)
	alertHandler := NewAlertHandler(alertService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	auditHandler := NewAuditHandler(auditService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Display reads (public)
	{
		api.GET("/tokens", tokenHandler.GetTokens)
		api.GET("/inventory", inventoryHandler.GetInventory)
		api.GET("/alerts", alertHandler.GetAlerts)
		api.GET("/schedules", scheduleHandler.GetSchedules)
		api.GET("/schedules/:id", scheduleHandler.GetSchedule)
	}

	// Staff panel (staff key when configured)
	staff := api.Group("")
	staff.Use(middleware.StaffKeyAuth(cfg.Staff.APIKeyHash))
	{
		staff.POST("/tokens", tokenHandler.Enqueue)
		staff.POST("/tokens/advance/:department", tokenHandler.Advance)

		staff.POST("/inventory", inventoryHandler.Adjust)
		staff.POST("/inventory/items", inventoryHandler.CreateItem)

		staff.POST("/alerts", alertHandler.CreateAlert)
		staff.DELETE("/alerts/:id", alertHandler.DismissAlert)

		staff.POST("/schedules", scheduleHandler.CreateSchedule)
		staff.PUT("/schedules/:id", scheduleHandler.UpdateSchedule)

		staff.GET("/audit", auditHandler.GetAuditLogs)
	}

	return r
}
