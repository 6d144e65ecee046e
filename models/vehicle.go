package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Vehicle statuses.
const (
	VehicleStatusActive      = "Active"
	VehicleStatusInactive    = "Inactive"
	VehicleStatusMaintenance = "Maintenance"
	VehicleStatusBooked      = "Booked"
)

// VehicleTypes lists the fleet categories an operator may register.
var VehicleTypes = []string{
	"Hatchback", "Sedan", "SUV", "Innova", "Tempo Traveller",
	"Bus", "Car", "Bike", "Scooter", "Truck",
}

type Vehicle struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	VehicleType        string    `gorm:"size:50;not null" json:"vehicle_type"`
	VehicleName        string    `gorm:"size:100;not null" json:"vehicle_name"`
	VehicleNumber      string    `gorm:"uniqueIndex;size:50;not null" json:"vehicle_number"`
	Color              string    `gorm:"size:50" json:"color"`
	RegistrationNumber string    `gorm:"uniqueIndex;size:50;not null" json:"registration_number"`
	RegistrationDate   time.Time `json:"registration_date"`
	ExpiryDate         time.Time `json:"expiry_date"`
	Status             string    `gorm:"type:varchar(20);default:'Active'" json:"status"`
	OwnerName          string    `gorm:"size:100" json:"owner_name"`
	OwnerPhone         string    `gorm:"size:20" json:"owner_phone"`
	OwnerEmail         string    `gorm:"size:255" json:"owner_email"`
	PricePerKm         float64   `gorm:"type:decimal(10,2);default:15" json:"price_per_km"`
	SeatingCapacity    int       `gorm:"default:4" json:"seating_capacity"`
	Features           string    `gorm:"type:text" json:"features"` // comma separated
	City               string    `gorm:"size:50;default:'Delhi'" json:"city"`
	Available          bool      `gorm:"default:true" json:"available"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *Vehicle) BeforeSave(tx *gorm.DB) error {
	valid := false
	for _, t := range VehicleTypes {
		if v.VehicleType == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid vehicle type %q", v.VehicleType)
	}
	if v.PricePerKm <= 0 {
		v.PricePerKm = 15
	}
	if v.SeatingCapacity <= 0 {
		v.SeatingCapacity = 4
	}
	return nil
}
