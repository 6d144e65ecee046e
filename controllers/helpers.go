package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/middlewares"
	"github.com/vivekkumar001-ops/TripWheels/models"
)

// baseData merges the per-request identity into the template data, the way
// every view expects a "user" key.
func baseData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middlewares.CurrentUser(c); ok {
		data["user"] = user
	} else {
		data["user"] = nil
	}
	return data
}

// adminCounts returns the totals shown in the dashboard sidebar.
func adminCounts(db *gorm.DB) (userCount, contactCount int64) {
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Contact{}).Count(&contactCount)
	return
}

func parseFloatDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func parseDateDefault(s string, def time.Time) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return def
	}
	return t
}
