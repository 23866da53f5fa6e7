package handlers

import (
	"github.com/farmride/farmride-backend/internal/middleware"
	"github.com/farmride/farmride-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FarmerDashboard aggregates the caller's rides, currently available rides
// and available drivers. Computed fresh on every request.
func FarmerDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var myRides []models.Ride
		if err := db.Where("user_id = ?", user.ID).Find(&myRides).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch rides"})
			return
		}

		var availableRides []models.Ride
		if err := db.Where("ride_status = ?", models.RideStatusAvailable).
			Order("date ASC, time ASC").
			Find(&availableRides).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch available rides"})
			return
		}

		var drivers []models.Driver
		if err := db.Where("is_available = ?", true).Find(&drivers).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch drivers"})
			return
		}

		activeRides := 0
		completedRides := 0
		for _, ride := range myRides {
			switch ride.RideStatus {
			case models.RideStatusBooked:
				activeRides++
			case models.RideStatusCompleted:
				completedRides++
			}
		}

		c.JSON(200, gin.H{
			"user":            user,
			"my_rides":        myRides,
			"available_rides": availableRides,
			"drivers":         drivers,
			"stats": gin.H{
				"total_rides":     len(myRides),
				"active_rides":    activeRides,
				"completed_rides": completedRides,
			},
		})
	}
}

// AdminDashboard returns global counts and the ten most recent rides.
func AdminDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalDrivers, availableDrivers int64
		var totalRides, availableRides, bookedRides, completedRides int64

		counts := []struct {
			query *gorm.DB
			dest  *int64
		}{
			{db.Model(&models.Driver{}), &totalDrivers},
			{db.Model(&models.Driver{}).Where("is_available = ?", true), &availableDrivers},
			{db.Model(&models.Ride{}), &totalRides},
			{db.Model(&models.Ride{}).Where("ride_status = ?", models.RideStatusAvailable), &availableRides},
			{db.Model(&models.Ride{}).Where("ride_status = ?", models.RideStatusBooked), &bookedRides},
			{db.Model(&models.Ride{}).Where("ride_status = ?", models.RideStatusCompleted), &completedRides},
		}
		for _, count := range counts {
			if err := count.query.Count(count.dest).Error; err != nil {
				c.JSON(500, gin.H{"error": "Failed to fetch stats"})
				return
			}
		}

		var recentRides []models.Ride
		if err := db.Order("created_at DESC").Limit(10).Find(&recentRides).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch recent rides"})
			return
		}

		c.JSON(200, gin.H{
			"stats": gin.H{
				"total_drivers":     totalDrivers,
				"available_drivers": availableDrivers,
				"total_rides":       totalRides,
				"available_rides":   availableRides,
				"booked_rides":      bookedRides,
				"completed_rides":   completedRides,
			},
			"recent_rides": recentRides,
		})
	}
}
