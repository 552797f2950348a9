package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/1conorsteward/Appointment-Now/internal/audit"
	"github.com/1conorsteward/Appointment-Now/internal/config"
	"github.com/1conorsteward/Appointment-Now/internal/export"
	"github.com/1conorsteward/Appointment-Now/internal/handlers"
	infraRepo "github.com/1conorsteward/Appointment-Now/internal/infra/repository"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
	"github.com/1conorsteward/Appointment-Now/internal/session"
	"github.com/1conorsteward/Appointment-Now/internal/storage"
	ucAppointment "github.com/1conorsteward/Appointment-Now/internal/usecase/appointment"
	ucAuth "github.com/1conorsteward/Appointment-Now/internal/usecase/auth"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	sessions := session.NewStore(cfg)
	attachments := storage.NewAttachmentStore(cfg)
	renderer := export.NewRenderer()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(userRepo, auditDispatcher)
	authenticateUC := ucAuth.NewAuthenticate(userRepo, auditDispatcher)
	deleteAccountUC := ucAuth.NewDeleteAccount(userRepo, sessions, auditDispatcher)

	createUC := ucAppointment.NewCreate(appointmentRepo, auditDispatcher)
	updateUC := ucAppointment.NewUpdate(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, attachments, auditDispatcher)
	getUC := ucAppointment.NewGet(appointmentRepo)
	listUC := ucAppointment.NewListByOwner(appointmentRepo)
	historyUC := ucAppointment.NewSearchHistory(appointmentRepo)
	exportUC := ucAppointment.NewExportVisit(appointmentRepo, renderer, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		authenticateUC,
		deleteAccountUC,
		sessions,
		cfg,
	)
	meHandler := handlers.NewMeHandler(userRepo)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		deleteUC,
		getUC,
		listUC,
		historyUC,
		exportUC,
	)
	attachmentHandler := handlers.NewAttachmentHandler(appointmentRepo, attachments)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.RateLimit(authLimiter))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.DELETE("/me", authHandler.DeleteAccount)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/history", appointmentHandler.History)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/appointments/:id/export", appointmentHandler.Export)

			secured.PUT("/me/appointments/:id/attachment", attachmentHandler.Upload)
			secured.GET("/me/appointments/:id/attachment", attachmentHandler.Download)
		}
	}
}
