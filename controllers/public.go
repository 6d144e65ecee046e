package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/middlewares"
	"github.com/vivekkumar001-ops/TripWheels/models"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", baseData(c, gin.H{"page": "home"}))
	}
}

func ListVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicles []models.Vehicle
		if err := db.Where("available = ?", true).Find(&vehicles).Error; err != nil {
			logrus.WithError(err).Error("error fetching vehicles")
			vehicles = nil
		}
		c.HTML(http.StatusOK, "vehicles.html", baseData(c, gin.H{
			"page":     "vehicles",
			"vehicles": vehicles,
		}))
	}
}

func VehicleDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vehicle models.Vehicle
		if err := db.First(&vehicle, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/vehicles")
			return
		}
		c.HTML(http.StatusOK, "vehicle-detail.html", baseData(c, gin.H{
			"page":    "vehicles",
			"vehicle": vehicle,
		}))
	}
}

func Cities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "cities.html", baseData(c, gin.H{
			"page":   "cities",
			"cities": models.PreferredCities,
		}))
	}
}

func About() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", baseData(c, gin.H{"page": "about"}))
	}
}

func ContactPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", baseData(c, gin.H{
			"page":        "contact",
			"message":     nil,
			"messageType": nil,
			"subjects":    models.ContactSubjects,
		}))
	}
}

func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		contact := models.Contact{
			Name:    strings.TrimSpace(c.PostForm("fullname")),
			Email:   c.PostForm("email"),
			Phone:   c.PostForm("phone"),
			Subject: c.PostForm("subject"),
			Message: strings.TrimSpace(c.PostForm("message")),
		}
		if user, ok := middlewares.CurrentUser(c); ok {
			contact.UserID = &user.ID
		}

		if contact.Name == "" || contact.Email == "" || contact.Message == "" {
			c.HTML(http.StatusOK, "contact.html", baseData(c, gin.H{
				"page":        "contact",
				"message":     "Sorry, there was an error sending your message. Please try again.",
				"messageType": "error",
				"subjects":    models.ContactSubjects,
			}))
			return
		}

		if err := db.Create(&contact).Error; err != nil {
			logrus.WithError(err).Error("error saving contact")
			c.HTML(http.StatusOK, "contact.html", baseData(c, gin.H{
				"page":        "contact",
				"message":     "Sorry, there was an error sending your message. Please try again.",
				"messageType": "error",
				"subjects":    models.ContactSubjects,
			}))
			return
		}

		logrus.WithField("email", contact.Email).Info("contact message saved")
		c.HTML(http.StatusOK, "contact.html", baseData(c, gin.H{
			"page":        "contact",
			"message":     "Thank you! Your message has been sent successfully.",
			"messageType": "success",
			"subjects":    models.ContactSubjects,
		}))
	}
}

// NotFound renders the catch-all page for unmatched routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", baseData(c, gin.H{}))
	}
}
