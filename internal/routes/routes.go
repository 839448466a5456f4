package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/cache"
	"github.com/nihalpictures/studio-api/internal/config"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/gateway"
	"github.com/nihalpictures/studio-api/internal/handlers"
	infraRepo "github.com/nihalpictures/studio-api/internal/infra/repository"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/storage"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cacheStore *cache.Cache,
	hub *feed.Hub,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)

	// Keep the interface nil when the gateway is disabled, so the typed-nil
	// pointer never masks the check in the use case.
	var payGateway gateway.PaymentLinkGateway
	if g := gateway.NewMercadoPagoGateway(cfg.MercadoPagoToken); g != nil {
		payGateway = g
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		cfg,
		auditDispatcher,
		hub,
		payGateway,
	)

	packageHandler := handlers.NewServicePackageHandler(db, auditDispatcher, cacheStore, hub)
	mediaHandler := handlers.NewMediaHandler(db, auditDispatcher, cacheStore, hub)
	uploadHandler := handlers.NewUploadHandler(uploader, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(bookingRepo)
	siteSettingsHandler := handlers.NewSiteSettingsHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	eventsHandler := handlers.NewEventsHandler(hub)

	publicHandler := handlers.NewPublicHandler(db, cacheStore, auditDispatcher, hub, bookingRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/packages", publicHandler.ListPackages)
			publicAPI.GET("/media", publicHandler.ListMedia)
			publicAPI.GET("/hero-stats", publicHandler.HeroStats)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/visit", publicHandler.RecordVisit)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/bookings/export", bookingHandler.ExportCSV)
			secured.GET("/me/bookings/calendar", bookingHandler.Calendar)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.PATCH("/me/bookings/:id/price", bookingHandler.UpdatePrice)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)
			secured.POST("/me/bookings/:id/payments", bookingHandler.RecordPayment)
			secured.POST("/me/bookings/:id/payment-link", bookingHandler.CreatePaymentLink)
			secured.GET("/me/bookings/:id/voucher", bookingHandler.Voucher)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/me/packages", packageHandler.List)
			secured.GET("/me/packages/:id", packageHandler.Get)
			secured.POST("/me/packages", packageHandler.Create)
			secured.PATCH("/me/packages/:id", packageHandler.Update)
			secured.DELETE("/me/packages/:id", packageHandler.Delete)

			// ------------------------------
			// MEDIA
			// ------------------------------
			secured.GET("/me/media", mediaHandler.List)
			secured.POST("/me/media", mediaHandler.Create)
			secured.PATCH("/me/media/:id", mediaHandler.Update)
			secured.PATCH("/me/media/:id/toggle", mediaHandler.Toggle)
			secured.DELETE("/me/media/:id", mediaHandler.Delete)

			secured.POST("/me/uploads", uploadHandler.Upload)

			// ------------------------------
			// SITE
			// ------------------------------
			secured.GET("/me/hero-stats", siteSettingsHandler.GetHeroStats)
			secured.PUT("/me/hero-stats", siteSettingsHandler.PutHeroStats)

			secured.GET("/me/dashboard", dashboardHandler.Stats)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
			secured.GET("/me/events", eventsHandler.Stream)
		}
	}
}
