package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

func AddVehiclePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "add-vehicle.html", baseData(c, gin.H{
			"page":  "add-vehicle",
			"types": models.VehicleTypes,
		}))
	}
}

// AddVehicle generates fallback vehicle and registration numbers when the
// operator leaves them blank.
func AddVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleNumber := c.PostForm("vehicleNumber")
		if vehicleNumber == "" {
			vehicleNumber = "VH" + timestampSuffix()
		}
		registrationNumber := c.PostForm("registrationNumber")
		if registrationNumber == "" {
			registrationNumber = "REG" + timestampSuffix()
		}

		now := time.Now()
		vehicle := models.Vehicle{
			VehicleType:        c.PostForm("vehicleType"),
			VehicleName:        c.PostForm("vehicleName"),
			VehicleNumber:      vehicleNumber,
			Color:              c.DefaultPostForm("color", "White"),
			RegistrationNumber: registrationNumber,
			RegistrationDate:   parseDateDefault(c.PostForm("registrationDate"), now),
			ExpiryDate:         parseDateDefault(c.PostForm("expiryDate"), now),
			Status:             c.DefaultPostForm("status", models.VehicleStatusActive),
			OwnerName:          c.PostForm("ownerName"),
			OwnerPhone:         c.PostForm("ownerPhone"),
			OwnerEmail:         c.PostForm("ownerEmail"),
			PricePerKm:         parseFloatDefault(c.PostForm("pricePerKm"), 15),
			SeatingCapacity:    parseIntDefault(c.PostForm("seatingCapacity"), 4),
			Features:           c.PostForm("features"),
			City:               c.DefaultPostForm("city", "Delhi"),
			Available:          true,
		}

		if err := db.Create(&vehicle).Error; err != nil {
			logrus.WithError(err).Error("error adding vehicle")
			c.Redirect(http.StatusFound, "/add-vehicle")
			return
		}
		logrus.WithField("vehicle", vehicle.VehicleName).Info("vehicle added")
		c.Redirect(http.StatusFound, "/vehicles")
	}
}

func ViewAdminVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicles []models.Vehicle
		if err := db.Order("created_at desc").Find(&vehicles).Error; err != nil {
			logrus.WithError(err).Error("error fetching vehicles")
			vehicles = nil
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "view-vehicles.html", baseData(c, gin.H{
			"activePage":   "view-vehicles",
			"vehicles":     vehicles,
			"userCount":    userCount,
			"contactCount": contactCount,
		}))
	}
}

func EditVehiclePage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-vehicles")
			return
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "edit-vehicle.html", baseData(c, gin.H{
			"activePage":   "view-vehicles",
			"vehicle":      vehicle,
			"userCount":    userCount,
			"contactCount": contactCount,
			"types":        models.VehicleTypes,
		}))
	}
}

func UpdateVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-vehicles")
			return
		}

		vehicle.VehicleType = c.DefaultPostForm("vehicleType", vehicle.VehicleType)
		vehicle.VehicleName = c.DefaultPostForm("vehicleName", vehicle.VehicleName)
		vehicle.VehicleNumber = c.DefaultPostForm("vehicleNumber", vehicle.VehicleNumber)
		vehicle.Color = c.DefaultPostForm("color", vehicle.Color)
		vehicle.RegistrationNumber = c.DefaultPostForm("registrationNumber", vehicle.RegistrationNumber)
		vehicle.RegistrationDate = parseDateDefault(c.PostForm("registrationDate"), vehicle.RegistrationDate)
		vehicle.ExpiryDate = parseDateDefault(c.PostForm("expiryDate"), vehicle.ExpiryDate)
		vehicle.Status = c.DefaultPostForm("status", vehicle.Status)
		vehicle.OwnerName = c.DefaultPostForm("ownerName", vehicle.OwnerName)
		vehicle.OwnerPhone = c.DefaultPostForm("ownerPhone", vehicle.OwnerPhone)
		vehicle.OwnerEmail = c.DefaultPostForm("ownerEmail", vehicle.OwnerEmail)
		vehicle.PricePerKm = parseFloatDefault(c.PostForm("pricePerKm"), vehicle.PricePerKm)
		vehicle.SeatingCapacity = parseIntDefault(c.PostForm("seatingCapacity"), vehicle.SeatingCapacity)
		vehicle.Features = c.DefaultPostForm("features", vehicle.Features)
		vehicle.City = c.DefaultPostForm("city", vehicle.City)
		vehicle.Available = c.DefaultPostForm("available", "on") == "on"

		if err := db.Save(&vehicle).Error; err != nil {
			logrus.WithError(err).Error("error updating vehicle")
			c.Redirect(http.StatusFound, "/edit-vehicle/"+c.Param("id"))
			return
		}
		c.Redirect(http.StatusFound, "/view-vehicles")
	}
}

func DeleteVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Vehicle{}, c.Param("id")).Error; err != nil {
			logrus.WithError(err).Error("error deleting vehicle")
		} else {
			logrus.WithField("vehicle_id", c.Param("id")).Info("deleted vehicle")
		}
		c.Redirect(http.StatusFound, "/view-vehicles")
	}
}
