package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/middlewares"
	"github.com/vivekkumar001-ops/TripWheels/models"
)

// Dashboard recomputes its counts on every view; nothing is cached.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		// The session snapshot may be stale, so the dashboard re-fetches
		// the user record for display.
		var dbUser models.User
		if err := db.First(&dbUser, user.ID).Error; err != nil {
			logrus.WithError(err).Error("dashboard error")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		userCount, contactCount := adminCounts(db)
		var bookingCount int64
		db.Model(&models.Booking{}).Where("user_id = ?", user.ID).Count(&bookingCount)

		var recentBookings []models.Booking
		db.Where("user_id = ?", user.ID).Order("booking_date desc").Limit(5).Find(&recentBookings)

		c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{
			"activePage":     "dashboard",
			"dbUser":         dbUser,
			"userCount":      userCount,
			"contactCount":   contactCount,
			"bookingCount":   bookingCount,
			"recentBookings": recentBookings,
		}))
	}
}

func Payments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		userCount, contactCount := adminCounts(db)
		var bookings []models.Booking
		db.Where("user_id = ?", user.ID).Find(&bookings)

		c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{
			"activePage":   "payments",
			"userCount":    userCount,
			"contactCount": contactCount,
			"bookings":     bookings,
		}))
	}
}

func Offers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{"activePage": "offers"}))
	}
}

func Support() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{"activePage": "support"}))
	}
}

func Settings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var dbUser models.User
		if err := db.First(&dbUser, user.ID).Error; err != nil {
			logrus.WithError(err).Error("settings error")
			c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{"activePage": "settings"}))
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", baseData(c, gin.H{
			"activePage": "settings",
			"dbUser":     dbUser,
		}))
	}
}
