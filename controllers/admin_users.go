package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

func ViewRegistrations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			logrus.WithError(err).Error("error fetching users")
			users = nil
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "view-registration.html", baseData(c, gin.H{
			"activePage":   "view-registration",
			"users":        users,
			"userCount":    userCount,
			"contactCount": contactCount,
		}))
	}
}

func EditRegistrationPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-registration")
			return
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "edit-registration.html", baseData(c, gin.H{
			"activePage":   "edit-registration",
			"editUser":     user,
			"userCount":    userCount,
			"contactCount": contactCount,
			"cities":       models.PreferredCities,
		}))
	}
}

// UpdateRegistration writes the whitelisted profile fields; password and
// admin flag are not editable through this form.
func UpdateRegistration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-registration")
			return
		}

		user.Firstname = c.PostForm("firstname")
		user.Lastname = c.PostForm("lastname")
		user.Email = strings.ToLower(strings.TrimSpace(c.PostForm("emailaddress")))
		user.Phone = c.PostForm("phonenumber")
		user.PreferredCity = c.PostForm("preferredcity")
		user.Status = c.DefaultPostForm("status", models.UserStatusActive)
		user.AdminNotes = c.PostForm("admin_notes")

		if err := db.Save(&user).Error; err != nil {
			logrus.WithError(err).Error("error updating user")
		}
		c.Redirect(http.StatusFound, "/view-registration")
	}
}

// DeleteRegistration removes the user only. Their bookings stay behind,
// still pointing at the gone user id.
func DeleteRegistration(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.User{}, c.Param("id")).Error; err != nil {
			logrus.WithError(err).Error("error deleting user")
		} else {
			logrus.WithField("user_id", c.Param("id")).Info("deleted user")
		}
		c.Redirect(http.StatusFound, "/view-registration")
	}
}
