package routes

import (
	"github.com/farmride/farmride-backend/internal/handlers"
	"github.com/farmride/farmride-backend/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with all API routes. The database handle
// is passed into each handler rather than held globally.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/register", handlers.Register(db))
		api.POST("/login", handlers.Login(db))
		api.GET("/health", handlers.HealthCheck())

		api.GET("/drivers", handlers.GetDrivers(db))
		api.GET("/drivers/:id", handlers.GetDriver(db))
		api.GET("/rides", handlers.GetRides(db))
		api.GET("/rides/:id", handlers.GetRide(db))

		// Routes for any authenticated user
		authed := api.Group("/")
		authed.Use(middleware.RequireAuth(db))
		{
			authed.POST("/logout", handlers.Logout())
			authed.GET("/profile", handlers.GetProfile())
			authed.PUT("/rides/:id", handlers.UpdateRide(db))
			authed.POST("/rides/:id/book", handlers.BookRide(db))
			authed.GET("/dashboard/farmer", handlers.FarmerDashboard(db))
		}

		// Admin-only routes
		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.POST("/drivers", handlers.CreateDriver(db))
			admin.PUT("/drivers/:id", handlers.UpdateDriver(db))
			admin.DELETE("/drivers/:id", handlers.DeleteDriver(db))
			admin.POST("/drivers/:id/photo", handlers.UploadDriverPhoto(db))
			admin.POST("/rides", handlers.CreateRide(db))
			admin.DELETE("/rides/:id", handlers.DeleteRide(db))
			admin.GET("/dashboard/admin", handlers.AdminDashboard(db))
		}
	}

	return r
}
