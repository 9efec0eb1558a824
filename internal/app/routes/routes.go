package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wkalungi/sponsorbase/internal/app/controllers"
	"github.com/wkalungi/sponsorbase/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	childController *controllers.ChildController,
	sponsorController *controllers.SponsorController,
	staffController *controllers.StaffController,
	sponsorshipController *controllers.SponsorshipController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Dashboard
		authenticated.GET("/dashboard", dashboardController.GetSummary)

		// Children
		children := authenticated.Group("/children")
		{
			children.GET("", childController.ListChildren)
			children.POST("", childController.CreateChild)
			children.DELETE("", childController.DeleteAllChildren)
			children.POST("/import", childController.ImportChildren)
			children.GET("/:id", childController.GetChildByID)
			children.PUT("/:id", childController.UpdateChild)
			children.DELETE("/:id", childController.DeleteChild)
			children.POST("/:id/avatar", childController.UploadChildAvatar)
			children.GET("/:id/sponsorships", sponsorshipController.ListActiveByChild)
		}

		// Sponsors
		sponsors := authenticated.Group("/sponsors")
		{
			sponsors.GET("", sponsorController.ListSponsors)
			sponsors.POST("", sponsorController.CreateSponsor)
			sponsors.GET("/:id", sponsorController.GetSponsorByID)
			sponsors.PUT("/:id", sponsorController.UpdateSponsor)
			sponsors.DELETE("/:id", sponsorController.DeleteSponsor)
			sponsors.POST("/:id/departure", sponsorController.DepartSponsor)
			sponsors.GET("/:id/departures", sponsorController.ListDepartures)
			sponsors.GET("/:id/sponsorships", sponsorshipController.ListActiveBySponsor)
		}

		// Staff
		staff := authenticated.Group("/staff")
		{
			staff.GET("", staffController.ListStaff)
			staff.POST("", staffController.CreateStaff)
			staff.GET("/:id", staffController.GetStaffByID)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
			staff.GET("/:id/sponsorships", sponsorshipController.ListActiveByStaff)
		}

		// Sponsorships
		sponsorships := authenticated.Group("/sponsorships")
		{
			sponsorships.POST("/children", sponsorshipController.BeginChildSponsorship)
			sponsorships.POST("/children/end", sponsorshipController.EndChildSponsorship)
			sponsorships.PUT("/children/:id", sponsorshipController.UpdateChildSponsorship)
			sponsorships.DELETE("/children/:id", sponsorshipController.DeleteChildSponsorship)
			sponsorships.POST("/staff", sponsorshipController.BeginStaffSponsorship)
			sponsorships.POST("/staff/end", sponsorshipController.EndStaffSponsorship)
			sponsorships.PUT("/staff/:id", sponsorshipController.UpdateStaffSponsorship)
			sponsorships.DELETE("/staff/:id", sponsorshipController.DeleteStaffSponsorship)
		}
	}
}
