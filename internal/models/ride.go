package models

import "time"

// Ride status values.
const (
	RideStatusAvailable = "available"
	RideStatusBooked    = "booked"
	RideStatusCompleted = "completed"
)

// Ride is a single transport offer. UserID is nil until a farmer books it.
// DriverName, VehicleType and VehicleID are copied from the driver when the
// ride is created and are not refreshed by later driver edits.
type Ride struct {
	ID            uint      `json:"ride_id" gorm:"column:ride_id;primaryKey"`
	DriverID      uint      `json:"driver_id" gorm:"column:driver_id;not null"`
	UserID        *uint     `json:"user_id" gorm:"column:user_id"`
	DriverName    string    `json:"driver_name" gorm:"column:driver_name;not null"`
	VehicleType   string    `json:"vehicle_type" gorm:"column:vehicle_type;not null"`
	VehicleID     string    `json:"vehicle_id" gorm:"column:vehicle_id;not null"`
	Date          string    `json:"date" gorm:"column:date;not null"`
	Time          string    `json:"time" gorm:"column:time;not null"`
	StartLocation string    `json:"start_location" gorm:"column:start_location;not null"`
	Destination   string    `json:"destination" gorm:"column:destination;not null"`
	RideStatus    string    `json:"ride_status" gorm:"column:ride_status;default:available"`
	CargoType     string    `json:"cargo_type" gorm:"column:cargo_type"`
	Notes         string    `json:"notes" gorm:"column:notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Ride) TableName() string {
	return "rides"
}
