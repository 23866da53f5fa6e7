package database

import (
	"time"

	"github.com/farmride/farmride-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed inserts demo users, drivers and rides when the database is empty.
// Intended for local development; gate it behind SEED_DB=true.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Username: "admin",
			PhoneNo:  "9876543210",
			FullName: "Admin User",
			Village:  "Nashik",
			IsAdmin:  true,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			return err
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		farmer := models.User{
			Username: "ramesh",
			PhoneNo:  "9876543211",
			FullName: "Ramesh Patil",
			Village:  "Trimbakeshwar",
		}
		if err := farmer.SetPassword("farmer123"); err != nil {
			return err
		}
		if err := tx.Create(&farmer).Error; err != nil {
			return err
		}

		drivers := []models.Driver{
			{
				DriverName:  "Suresh Jadhav",
				PhoneNo:     "9876543220",
				VehicleName: "John Deere 5050D",
				VehicleType: "tractor",
				VehicleID:   "MH15-TR-1234",
				IsAvailable: true,
			},
			{
				DriverName:  "Vikram Singh",
				PhoneNo:     "9876543221",
				VehicleName: "Tata 407",
				VehicleType: "mini-truck",
				VehicleID:   "MH15-MT-5678",
				IsAvailable: true,
			},
			{
				DriverName:  "Prakash More",
				PhoneNo:     "9876543222",
				VehicleName: "Mahindra Bolero Pickup",
				VehicleType: "tempo",
				VehicleID:   "MH15-TP-9012",
				IsAvailable: true,
			},
			{
				DriverName:  "Ganesh Desai",
				PhoneNo:     "9876543223",
				VehicleName: "Eicher Pro 2049",
				VehicleType: "truck",
				VehicleID:   "MH15-TK-3456",
				IsAvailable: true,
			},
		}
		if err := tx.Create(&drivers).Error; err != nil {
			return err
		}

		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		dayAfter := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
		today := time.Now().Format("2006-01-02")

		rides := []models.Ride{
			{
				DriverID:      drivers[0].ID,
				DriverName:    drivers[0].DriverName,
				VehicleType:   drivers[0].VehicleType,
				VehicleID:     drivers[0].VehicleID,
				Date:          tomorrow,
				Time:          "08:00",
				StartLocation: "Nashik Market",
				Destination:   "Trimbakeshwar",
				RideStatus:    models.RideStatusAvailable,
				CargoType:     "manure",
			},
			{
				DriverID:      drivers[1].ID,
				DriverName:    drivers[1].DriverName,
				VehicleType:   drivers[1].VehicleType,
				VehicleID:     drivers[1].VehicleID,
				Date:          dayAfter,
				Time:          "10:00",
				StartLocation: "Igatpuri",
				Destination:   "Nashik APMC",
				RideStatus:    models.RideStatusAvailable,
				CargoType:     "crops",
			},
			{
				DriverID:      drivers[2].ID,
				DriverName:    drivers[2].DriverName,
				VehicleType:   drivers[2].VehicleType,
				VehicleID:     drivers[2].VehicleID,
				Date:          today,
				Time:          "14:00",
				StartLocation: "Malegaon",
				Destination:   "Mumbai Market",
				RideStatus:    models.RideStatusBooked,
				CargoType:     "produce",
				UserID:        &farmer.ID,
			},
		}
		if err := tx.Create(&rides).Error; err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"users":   2,
			"drivers": len(drivers),
			"rides":   len(rides),
		}).Info("database seeded with sample data")
		return nil
	})
}
