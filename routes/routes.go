package routes

import (
	"time"

	"raceday-backend/handlers"
	"raceday-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	eventHandler := &handlers.EventHandler{DB: db}
	distanceHandler := &handlers.DistanceHandler{DB: db}
	shirtHandler := &handlers.ShirtHandler{DB: db}
	registrationHandler := &handlers.RegistrationHandler{DB: db}
	importHandler := &handlers.ImportHandler{DB: db}

	// Bulk imports are expensive; keep repeat submissions in check.
	importLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/events", eventHandler.GetEvents)
		api.GET("/events/:id", eventHandler.GetEvent)
		api.GET("/events/:id/distances", distanceHandler.GetDistances)
		api.GET("/events/:id/shirts", shirtHandler.GetShirts)

		// Online registration
		api.POST("/events/:id/registrations", registrationHandler.CreateRegistration)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Event management
		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/events/:id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)

		// Distance management
		admin.POST("/events/:id/distances", distanceHandler.CreateDistance)
		admin.PUT("/distances/:id", distanceHandler.UpdateDistance)
		admin.DELETE("/distances/:id", distanceHandler.DeleteDistance)

		// Shirt management
		admin.POST("/events/:id/shirts", shirtHandler.CreateShirt)
		admin.PUT("/shirts/:id", shirtHandler.UpdateShirt)
		admin.DELETE("/shirts/:id", shirtHandler.DeleteShirt)

		// Registrations
		admin.GET("/events/:id/registrations", registrationHandler.GetRegistrations)
		admin.GET("/registrations/:id", registrationHandler.GetRegistration)

		// Bulk import
		admin.POST("/events/:id/registrations/import", importLimiter.Middleware(), importHandler.ImportRegistrations)
		admin.GET("/events/:id/import-batches", importHandler.GetImportBatches)
		admin.GET("/import-batches/:id", importHandler.GetImportBatch)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
