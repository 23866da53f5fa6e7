package handlers

import (
	"strings"

	"github.com/farmride/farmride-backend/internal/models"
	"github.com/farmride/farmride-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetDrivers lists drivers with optional vehicle_type and is_available filters.
func GetDrivers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Driver{})

		if vehicleType := c.Query("vehicle_type"); vehicleType != "" {
			query = query.Where("vehicle_type = ?", vehicleType)
		}
		if isAvailable := c.Query("is_available"); isAvailable != "" {
			query = query.Where("is_available = ?", strings.EqualFold(isAvailable, "true"))
		}

		var drivers []models.Driver
		if err := query.Find(&drivers).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch drivers"})
			return
		}

		c.JSON(200, gin.H{
			"drivers": drivers,
			"count":   len(drivers),
		})
	}
}

// GetDriver returns a single driver by id.
func GetDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var driver models.Driver
		if err := db.First(&driver, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		c.JSON(200, driver)
	}
}

type CreateDriverInput struct {
	DriverName   string `json:"driver_name" binding:"required"`
	PhoneNo      string `json:"phone_no" binding:"required"`
	VehicleName  string `json:"vehicle_name" binding:"required"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
	VehicleID    string `json:"vehicle_id" binding:"required"`
	VehiclePhoto string `json:"vehicle_photo"`
	DriverPhoto  string `json:"driver_photo"`
	IsAvailable  *bool  `json:"is_available"`
}

// CreateDriver registers a new driver and vehicle (admin only).
func CreateDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateDriverInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.Driver
		if err := db.Where("vehicle_id = ?", input.VehicleID).First(&existing).Error; err == nil {
			c.JSON(409, gin.H{"error": "Vehicle ID already exists"})
			return
		}

		driver := models.Driver{
			DriverName:   input.DriverName,
			PhoneNo:      input.PhoneNo,
			VehicleName:  input.VehicleName,
			VehicleType:  input.VehicleType,
			VehicleID:    input.VehicleID,
			VehiclePhoto: "default-vehicle.jpg",
			DriverPhoto:  "default-driver.jpg",
			IsAvailable:  true,
		}
		if input.VehiclePhoto != "" {
			driver.VehiclePhoto = input.VehiclePhoto
		}
		if input.DriverPhoto != "" {
			driver.DriverPhoto = input.DriverPhoto
		}
		if input.IsAvailable != nil {
			driver.IsAvailable = *input.IsAvailable
		}

		if err := db.Create(&driver).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		logrus.WithFields(logrus.Fields{
			"driver_id":  driver.ID,
			"vehicle_id": driver.VehicleID,
		}).Info("driver created")

		c.JSON(201, gin.H{
			"message": "Driver created successfully",
			"driver":  driver,
		})
	}
}

// UpdateDriver applies a partial update to a driver (admin only).
// Rides keep the driver details captured at their creation time.
func UpdateDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var driver models.Driver
		if err := db.First(&driver, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		var input struct {
			DriverName   *string `json:"driver_name"`
			PhoneNo      *string `json:"phone_no"`
			VehicleName  *string `json:"vehicle_name"`
			VehicleType  *string `json:"vehicle_type"`
			VehiclePhoto *string `json:"vehicle_photo"`
			DriverPhoto  *string `json:"driver_photo"`
			IsAvailable  *bool   `json:"is_available"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.DriverName != nil {
			driver.DriverName = *input.DriverName
		}
		if input.PhoneNo != nil {
			driver.PhoneNo = *input.PhoneNo
		}
		if input.VehicleName != nil {
			driver.VehicleName = *input.VehicleName
		}
		if input.VehicleType != nil {
			driver.VehicleType = *input.VehicleType
		}
		if input.VehiclePhoto != nil {
			driver.VehiclePhoto = *input.VehiclePhoto
		}
		if input.DriverPhoto != nil {
			driver.DriverPhoto = *input.DriverPhoto
		}
		if input.IsAvailable != nil {
			driver.IsAvailable = *input.IsAvailable
		}

		if err := db.Save(&driver).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update driver"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Driver updated successfully",
			"driver":  driver,
		})
	}
}

// DeleteDriver removes a driver and all of their rides in one transaction.
func DeleteDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var driver models.Driver
		if err := db.First(&driver, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("driver_id = ?", driver.ID).Delete(&models.Ride{}).Error; err != nil {
				return err
			}
			return tx.Delete(&driver).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		logrus.WithField("driver_id", driver.ID).Info("driver deleted")

		c.JSON(200, gin.H{"message": "Driver deleted successfully"})
	}
}

// UploadDriverPhoto stores a driver or vehicle photo and saves its URL
// on the driver row (admin only). Form fields: kind=driver|vehicle, photo=<file>.
func UploadDriverPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var driver models.Driver
		if err := db.First(&driver, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		kind := c.PostForm("kind")
		if kind != "driver" && kind != "vehicle" {
			c.JSON(400, gin.H{"error": "kind must be 'driver' or 'vehicle'"})
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			c.JSON(400, gin.H{"error": "photo file is required"})
			return
		}

		photoURL, err := services.UploadPhoto(file, kind+"s")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		if kind == "driver" {
			driver.DriverPhoto = photoURL
		} else {
			driver.VehiclePhoto = photoURL
		}

		if err := db.Save(&driver).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update driver"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Photo uploaded successfully",
			"driver":  driver,
		})
	}
}
