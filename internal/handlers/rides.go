package handlers

import (
	"time"

	"github.com/farmride/farmride-backend/internal/middleware"
	"github.com/farmride/farmride-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	if _, err := time.Parse(timeLayout, s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

// GetRides lists rides with optional status, vehicle_type and date filters,
// always ordered by date then time, most recent first.
func GetRides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Ride{})

		if status := c.Query("status"); status != "" {
			query = query.Where("ride_status = ?", status)
		}
		if vehicleType := c.Query("vehicle_type"); vehicleType != "" {
			query = query.Where("vehicle_type = ?", vehicleType)
		}
		if date := c.Query("date"); date != "" {
			if !validDate(date) {
				c.JSON(400, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
				return
			}
			query = query.Where("date = ?", date)
		}

		var rides []models.Ride
		if err := query.Order("date DESC, time DESC").Find(&rides).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch rides"})
			return
		}

		c.JSON(200, gin.H{
			"rides": rides,
			"count": len(rides),
		})
	}
}

// GetRide returns a single ride by id.
func GetRide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ride models.Ride
		if err := db.First(&ride, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ride not found"})
			return
		}

		c.JSON(200, ride)
	}
}

type CreateRideInput struct {
	DriverID      uint   `json:"driver_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	StartLocation string `json:"start_location" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	RideStatus    string `json:"ride_status"`
	CargoType     string `json:"cargo_type"`
	Notes         string `json:"notes"`
}

// CreateRide creates a transport offer for an existing driver (admin only).
// Driver name and vehicle details are copied onto the ride at this point
// and stay as they were even if the driver record changes later.
func CreateRide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateRideInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !validDate(input.Date) {
			c.JSON(400, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		if !validTime(input.Time) {
			c.JSON(400, gin.H{"error": "Invalid time format, expected HH:MM"})
			return
		}

		var driver models.Driver
		if err := db.First(&driver, input.DriverID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		status := input.RideStatus
		if status == "" {
			status = models.RideStatusAvailable
		}

		ride := models.Ride{
			DriverID:      driver.ID,
			DriverName:    driver.DriverName,
			VehicleType:   driver.VehicleType,
			VehicleID:     driver.VehicleID,
			Date:          input.Date,
			Time:          input.Time,
			StartLocation: input.StartLocation,
			Destination:   input.Destination,
			RideStatus:    status,
			CargoType:     input.CargoType,
			Notes:         input.Notes,
		}

		if err := db.Create(&ride).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		logrus.WithFields(logrus.Fields{
			"ride_id":   ride.ID,
			"driver_id": ride.DriverID,
		}).Info("ride created")

		c.JSON(201, gin.H{
			"message": "Ride created successfully",
			"ride":    ride,
		})
	}
}

// UpdateRide applies a partial update to a ride. Setting ride_status to
// "booked" here stamps the caller as the booking user without checking
// availability, unlike BookRide. That mismatch is long-standing observed
// behavior that clients rely on, so it stays.
func UpdateRide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var ride models.Ride
		if err := db.First(&ride, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ride not found"})
			return
		}

		var input struct {
			Date          *string `json:"date"`
			Time          *string `json:"time"`
			StartLocation *string `json:"start_location"`
			Destination   *string `json:"destination"`
			RideStatus    *string `json:"ride_status"`
			CargoType     *string `json:"cargo_type"`
			Notes         *string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Date != nil {
			if !validDate(*input.Date) {
				c.JSON(400, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
				return
			}
			ride.Date = *input.Date
		}
		if input.Time != nil {
			if !validTime(*input.Time) {
				c.JSON(400, gin.H{"error": "Invalid time format, expected HH:MM"})
				return
			}
			ride.Time = *input.Time
		}
		if input.StartLocation != nil {
			ride.StartLocation = *input.StartLocation
		}
		if input.Destination != nil {
			ride.Destination = *input.Destination
		}
		if input.RideStatus != nil {
			ride.RideStatus = *input.RideStatus
			if *input.RideStatus == models.RideStatusBooked {
				ride.UserID = &user.ID
			}
		}
		if input.CargoType != nil {
			ride.CargoType = *input.CargoType
		}
		if input.Notes != nil {
			ride.Notes = *input.Notes
		}

		if err := db.Save(&ride).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update ride"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Ride updated successfully",
			"ride":    ride,
		})
	}
}

// DeleteRide removes a ride (admin only).
func DeleteRide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ride models.Ride
		if err := db.First(&ride, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ride not found"})
			return
		}

		if err := db.Delete(&ride).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete ride"})
			return
		}

		c.JSON(200, gin.H{"message": "Ride deleted successfully"})
	}
}

// BookRide books an available ride for the caller. The status check and the
// write happen in one conditional UPDATE so two concurrent bookings cannot
// both succeed.
func BookRide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var ride models.Ride
		if err := db.First(&ride, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Ride not found"})
			return
		}

		result := db.Model(&models.Ride{}).
			Where("ride_id = ? AND ride_status = ?", ride.ID, models.RideStatusAvailable).
			Updates(map[string]interface{}{
				"ride_status": models.RideStatusBooked,
				"user_id":     user.ID,
			})
		if result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to book ride"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(400, gin.H{"error": "Ride is not available for booking"})
			return
		}

		if err := db.First(&ride, ride.ID).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to reload ride"})
			return
		}

		logrus.WithFields(logrus.Fields{
			"ride_id": ride.ID,
			"user_id": user.ID,
		}).Info("ride booked")

		c.JSON(200, gin.H{
			"message": "Ride booked successfully",
			"ride":    ride,
		})
	}
}
