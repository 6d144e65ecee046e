package utils

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

// SeedAdminUser creates the default administrator when none exists, so the
// admin pages are reachable on a fresh database.
func SeedAdminUser(db *gorm.DB, email, password string) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("could not hash admin password")
		return
	}

	admin := models.User{
		Firstname:     "Admin",
		Lastname:      "User",
		Email:         email,
		Phone:         "9876543210",
		Password:      hashed,
		PreferredCity: "Delhi",
		Status:        models.UserStatusActive,
		IsAdmin:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		logrus.WithError(err).Error("could not create default admin")
		return
	}
	logrus.WithField("email", email).Info("default admin user created")
}

// SeedDummyVehicles fills the fleet so the browse pages have data.
func SeedDummyVehicles(db *gorm.DB) {
	regDate := time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)
	expDate := regDate.AddDate(15, 0, 0)

	vehicles := []models.Vehicle{
		{
			VehicleType:        "Sedan",
			VehicleName:        "Honda City",
			VehicleNumber:      "DL01AB1234",
			Color:              "White",
			RegistrationNumber: "REG100234",
			RegistrationDate:   regDate,
			ExpiryDate:         expDate,
			OwnerName:          "Rakesh Sharma",
			OwnerPhone:         "9811001100",
			OwnerEmail:         "rakesh@tripwheels.com",
			PricePerKm:         12,
			SeatingCapacity:    4,
			Features:           "AC,Music System,GPS",
			City:               "Delhi",
			Available:          true,
		},
		{
			VehicleType:        "SUV",
			VehicleName:        "Mahindra XUV700",
			VehicleNumber:      "MH02CD5678",
			Color:              "Black",
			RegistrationNumber: "REG100235",
			RegistrationDate:   regDate,
			ExpiryDate:         expDate,
			OwnerName:          "Priya Nair",
			OwnerPhone:         "9822002200",
			OwnerEmail:         "priya@tripwheels.com",
			PricePerKm:         18,
			SeatingCapacity:    7,
			Features:           "AC,Sunroof,GPS",
			City:               "Mumbai",
			Available:          true,
		},
		{
			VehicleType:        "Tempo Traveller",
			VehicleName:        "Force Traveller",
			VehicleNumber:      "KA03EF9012",
			Color:              "Silver",
			RegistrationNumber: "REG100236",
			RegistrationDate:   regDate,
			ExpiryDate:         expDate,
			OwnerName:          "Suresh Gowda",
			OwnerPhone:         "9833003300",
			OwnerEmail:         "suresh@tripwheels.com",
			PricePerKm:         22,
			SeatingCapacity:    12,
			Features:           "AC,Pushback Seats",
			City:               "Bangalore",
			Available:          true,
		},
	}

	for _, v := range vehicles {
		var existing models.Vehicle
		if err := db.Where("vehicle_number = ?", v.VehicleNumber).First(&existing).Error; err != nil {
			db.Create(&v)
		}
	}
}
