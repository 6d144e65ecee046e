package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

func ViewContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("date desc").Find(&contacts).Error; err != nil {
			logrus.WithError(err).Error("error fetching contacts")
			contacts = nil
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "view-contact.html", baseData(c, gin.H{
			"activePage":   "view-contact",
			"contacts":     contacts,
			"userCount":    userCount,
			"contactCount": contactCount,
		}))
	}
}

func EditContactPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contact models.Contact
		if err := db.First(&contact, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-contact")
			return
		}
		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "edit-contact.html", baseData(c, gin.H{
			"activePage":   "edit-contact",
			"contact":      contact,
			"userCount":    userCount,
			"contactCount": contactCount,
			"subjects":     models.ContactSubjects,
		}))
	}
}

func UpdateContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contact models.Contact
		if err := db.First(&contact, c.Param("id")).Error; err != nil {
			c.Redirect(http.StatusFound, "/view-contact")
			return
		}

		contact.Name = c.PostForm("name")
		contact.Email = c.PostForm("email")
		contact.Phone = c.PostForm("phone")
		contact.Subject = c.PostForm("subject")
		contact.Message = c.PostForm("message")
		contact.Status = c.DefaultPostForm("status", models.ContactStatusNew)
		contact.Read = c.PostForm("read") == "on"
		contact.AdminNotes = c.PostForm("admin_notes")
		if contact.Status == models.ContactStatusReplied && contact.RepliedAt == nil {
			now := time.Now()
			contact.RepliedAt = &now
		}

		if err := db.Save(&contact).Error; err != nil {
			logrus.WithError(err).Error("error updating contact")
			c.Redirect(http.StatusFound, "/edit-contact/"+c.Param("id"))
			return
		}
		c.Redirect(http.StatusFound, "/view-contact")
	}
}

func DeleteContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Contact{}, c.Param("id")).Error; err != nil {
			logrus.WithError(err).Error("error deleting contact")
		} else {
			logrus.WithField("contact_id", c.Param("id")).Info("deleted contact")
		}
		c.Redirect(http.StatusFound, "/view-contact")
	}
}
