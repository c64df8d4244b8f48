package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/arielstudio/nail-scheduler/internal/audit"
	"github.com/arielstudio/nail-scheduler/internal/config"
	"github.com/arielstudio/nail-scheduler/internal/handlers"
	"github.com/arielstudio/nail-scheduler/internal/metrics"
	"github.com/arielstudio/nail-scheduler/internal/middleware"
	"github.com/arielstudio/nail-scheduler/internal/state"
	"github.com/arielstudio/nail-scheduler/internal/storage"
	"github.com/arielstudio/nail-scheduler/internal/timezone"
	ucBooking "github.com/arielstudio/nail-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	controller *state.Controller,
	m *metrics.Metrics,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var uploader *storage.Uploader
	if cfg.S3Enabled() {
		uploader = storage.NewUploader(cfg.S3)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(controller, cfg.SlotCatalog, loc)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		controller,
		auditDispatcher,
		cfg.SlotCatalog,
		loc,
	)

	setStatusUC := ucBooking.NewSetAppointmentStatus(controller, auditDispatcher)

	toggleBlockedSlotUC := ucBooking.NewToggleBlockedSlot(
		controller,
		auditDispatcher,
		cfg.SlotCatalog,
	)

	upsertServiceUC := ucBooking.NewUpsertService(controller, auditDispatcher)
	removeServiceUC := ucBooking.NewRemoveService(controller, auditDispatcher)
	updateSiteConfigUC := ucBooking.NewUpdateSiteConfig(controller, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	publicHandler := handlers.NewPublicHandler(
		controller,
		availabilityUC,
		createAppointmentUC,
		cfg.SlotCatalog,
		m,
	)

	appointmentHandler := handlers.NewAppointmentHandler(controller, setStatusUC, loc)
	serviceHandler := handlers.NewServiceHandler(controller, upsertServiceUC, removeServiceUC)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(controller, toggleBlockedSlotUC)
	siteConfigHandler := handlers.NewSiteConfigHandler(controller, updateSiteConfigUC, uploader)
	syncStatusHandler := handlers.NewSyncStatusHandler(controller)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 📊 OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/site", publicHandler.Site)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/blocked-slots", blockedSlotHandler.List)
			admin.POST("/blocked-slots/toggle", blockedSlotHandler.Toggle)

			admin.GET("/site-config", siteConfigHandler.Get)
			admin.PUT("/site-config", siteConfigHandler.Update)
			admin.POST("/site-config/logo", siteConfigHandler.UploadLogo)

			admin.GET("/sync-status", syncStatusHandler.Status)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
