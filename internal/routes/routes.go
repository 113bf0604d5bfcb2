package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-saas/internal/audit"
	"github.com/BruksfildServices01/barbershop-saas/internal/config"
	"github.com/BruksfildServices01/barbershop-saas/internal/handlers"
	"github.com/BruksfildServices01/barbershop-saas/internal/httperr"
	"github.com/BruksfildServices01/barbershop-saas/internal/store"
)

func RegisterRoutes(r *gin.Engine, st *store.Mongo, cfg *config.Config, log *zap.Logger) {

	httperr.UseJSONFieldNames()

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st, log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	statusHandler := handlers.NewStatusHandler(st, cfg)
	shopHandler := handlers.NewShopHandler(st, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(st, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(st, auditDispatcher)
	clientHandler := handlers.NewClientHandler(st, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(st, auditDispatcher)
	crmHandler := handlers.NewCRMHandler(st, auditDispatcher)

	// ======================================================
	// 🌍 STATUS
	// ======================================================
	r.GET("/", statusHandler.Root)
	r.GET("/test", statusHandler.TestDatabase)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/shops", shopHandler.Create)
		api.GET("/shops", shopHandler.List)

		api.POST("/staff", staffHandler.Create)
		api.GET("/staff", staffHandler.List)

		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)

		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)

		crmAPI := api.Group("/crm")
		{
			crmAPI.POST("/generate-message", crmHandler.GenerateMessage)
			crmAPI.POST("/workflows", crmHandler.CreateWorkflow)
			crmAPI.GET("/workflows", crmHandler.ListWorkflows)
		}
	}
}
