package models

import "time"

// Driver represents a transport provider and their vehicle.
// VehicleType is free text; tractor, truck, tempo and mini-truck
// are the values the frontend offers.
type Driver struct {
	ID           uint      `json:"driver_id" gorm:"column:driver_id;primaryKey"`
	DriverName   string    `json:"driver_name" gorm:"column:driver_name;not null"`
	PhoneNo      string    `json:"phone_no" gorm:"column:phone_no;not null"`
	VehicleName  string    `json:"vehicle_name" gorm:"column:vehicle_name;not null"`
	VehicleType  string    `json:"vehicle_type" gorm:"column:vehicle_type;not null"`
	VehicleID    string    `json:"vehicle_id" gorm:"column:vehicle_id;unique;not null"`
	VehiclePhoto string    `json:"vehicle_photo" gorm:"column:vehicle_photo;default:default-vehicle.jpg"`
	DriverPhoto  string    `json:"driver_photo" gorm:"column:driver_photo;default:default-driver.jpg"`
	IsAvailable  bool      `json:"is_available" gorm:"column:is_available;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Driver) TableName() string {
	return "drivers"
}
