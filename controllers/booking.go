package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/middlewares"
	"github.com/vivekkumar001-ops/TripWheels/models"
)

func BookingPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "booking.html", baseData(c, gin.H{
			"page":        "booking",
			"message":     nil,
			"messageType": nil,
		}))
	}
}

// CreateBooking accepts bookings from guests as well as logged-in users.
// Missing numeric fields fall back to defaults rather than failing; only a
// missing name, email or phone rejects the request.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderMessage := func(message, messageType string, booking interface{}) {
			c.HTML(http.StatusOK, "booking.html", baseData(c, gin.H{
				"page":        "booking",
				"message":     message,
				"messageType": messageType,
				"booking":     booking,
			}))
		}

		fullname := strings.TrimSpace(c.PostForm("fullname"))
		email := strings.TrimSpace(c.PostForm("email"))
		phone := strings.TrimSpace(c.PostForm("phone"))
		if fullname == "" || email == "" || phone == "" {
			renderMessage("Booking failed: missing required fields. Please try again.", "error", nil)
			return
		}

		distance := parseFloatDefault(c.PostForm("distance"), 100)
		pricePerKm := parseFloatDefault(c.PostForm("pricePerKm"), 15)
		totalDays := parseIntDefault(c.PostForm("totalDays"), 1)
		advancePaid := parseFloatDefault(c.PostForm("advancePaid"), 0)

		totalAmount := distance * pricePerKm * float64(totalDays)

		paymentStatus := models.PaymentStatusPending
		if advancePaid > 0 {
			paymentStatus = models.PaymentStatusPartiallyPaid
		}

		now := time.Now()
		pickupDate := parseDateDefault(c.PostForm("pickupDate"), now)
		dropDate := parseDateDefault(c.PostForm("dropDate"), pickupDate)

		pickupCity := c.PostForm("pickupCity")
		if pickupCity == "" {
			pickupCity = "Delhi"
		}
		dropCity := c.PostForm("dropCity")
		if dropCity == "" {
			dropCity = pickupCity
		}
		pickupTime := c.PostForm("pickupTime")
		if pickupTime == "" {
			pickupTime = "09:00"
		}
		vehicleType := c.PostForm("vehicleType")
		if vehicleType == "" {
			vehicleType = "Sedan"
		}
		vehicleName := c.PostForm("vehicleName")
		if vehicleName == "" {
			vehicleName = "Car"
		}
		vehicleRef := c.PostForm("vehicleId")
		if vehicleRef == "" {
			vehicleRef = "V" + timestampSuffix()
		}

		booking := models.Booking{
			UserName:  fullname,
			UserEmail: email,
			UserPhone: phone,

			VehicleType: vehicleType,
			VehicleName: vehicleName,
			VehicleRef:  vehicleRef,

			PickupCity: pickupCity,
			DropCity:   dropCity,
			PickupDate: pickupDate,
			DropDate:   dropDate,
			PickupTime: pickupTime,

			TotalDays:       totalDays,
			Distance:        distance,
			TotalPassengers: parseIntDefault(c.PostForm("passengers"), 1),

			PricePerKm:    pricePerKm,
			TotalAmount:   totalAmount,
			AdvancePaid:   advancePaid,
			BalanceAmount: totalAmount - advancePaid,

			Status:        models.BookingStatusPending,
			PaymentStatus: paymentStatus,

			SpecialRequirements: c.PostForm("requirements"),
			DriverRequired:      true,
		}

		// A logged-in requester owns the booking; setting UserID here is
		// the whole "append to the user's booking list" step, in one write.
		if user, ok := middlewares.CurrentUser(c); ok {
			id := user.ID
			booking.UserID = &id
			booking.UserName = user.Name
			booking.UserEmail = user.Email
			if user.Phone != "" {
				booking.UserPhone = user.Phone
			}
		}

		if err := db.Create(&booking).Error; err != nil {
			logrus.WithError(err).Error("booking error")
			renderMessage("Sorry, booking failed. Please try again.", "error", nil)
			return
		}

		logrus.WithField("booking_id", booking.ID).Info("booking created")
		renderMessage(fmt.Sprintf("Booking successful! Your Booking ID: TW%06d", booking.ID), "success", booking)
	}
}

func MyBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var bookings []models.Booking
		if err := db.Where("user_id = ?", user.ID).Order("booking_date desc").Find(&bookings).Error; err != nil {
			logrus.WithError(err).Error("error fetching bookings")
		}

		var totalRevenue float64
		var pending, confirmed int
		for _, b := range bookings {
			totalRevenue += b.TotalAmount
			switch b.Status {
			case models.BookingStatusPending:
				pending++
			case models.BookingStatusConfirmed:
				confirmed++
			}
		}

		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "my-bookings.html", baseData(c, gin.H{
			"activePage":        "my-bookings",
			"bookings":          bookings,
			"bookingCount":      len(bookings),
			"userCount":         userCount,
			"contactCount":      contactCount,
			"totalRevenue":      totalRevenue,
			"pendingBookings":   pending,
			"confirmedBookings": confirmed,
		}))
	}
}

func BookingDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var booking models.Booking
		if err := db.First(&booking, c.Param("id")).Error; err != nil || !booking.OwnedBy(user.ID) {
			c.HTML(http.StatusNotFound, "404.html", baseData(c, gin.H{}))
			return
		}
		c.HTML(http.StatusOK, "booking-details.html", baseData(c, gin.H{
			"page":    "booking",
			"booking": booking,
		}))
	}
}

func EditBookingPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var booking models.Booking
		if err := db.First(&booking, c.Param("id")).Error; err != nil || !booking.OwnedBy(user.ID) {
			c.Redirect(http.StatusFound, "/my-bookings")
			return
		}

		userCount, contactCount := adminCounts(db)
		c.HTML(http.StatusOK, "edit-booking.html", baseData(c, gin.H{
			"activePage":   "my-bookings",
			"booking":      booking,
			"userCount":    userCount,
			"contactCount": contactCount,
		}))
	}
}

func UpdateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var booking models.Booking
		if err := db.First(&booking, c.Param("id")).Error; err != nil || !booking.OwnedBy(user.ID) {
			c.Redirect(http.StatusFound, "/my-bookings")
			return
		}

		booking.PickupCity = c.DefaultPostForm("pickupCity", booking.PickupCity)
		booking.DropCity = c.DefaultPostForm("dropCity", booking.DropCity)
		booking.PickupDate = parseDateDefault(c.PostForm("pickupDate"), booking.PickupDate)
		booking.DropDate = parseDateDefault(c.PostForm("dropDate"), booking.DropDate)
		booking.PickupTime = c.DefaultPostForm("pickupTime", booking.PickupTime)
		booking.TotalDays = parseIntDefault(c.PostForm("totalDays"), booking.TotalDays)
		booking.Distance = parseFloatDefault(c.PostForm("distance"), booking.Distance)
		booking.TotalPassengers = parseIntDefault(c.PostForm("passengers"), booking.TotalPassengers)
		booking.PricePerKm = parseFloatDefault(c.PostForm("pricePerKm"), booking.PricePerKm)
		booking.TotalAmount = parseFloatDefault(c.PostForm("totalAmount"), booking.TotalAmount)
		booking.AdvancePaid = parseFloatDefault(c.PostForm("advancePaid"), booking.AdvancePaid)
		booking.SpecialRequirements = c.DefaultPostForm("requirements", booking.SpecialRequirements)
		booking.Status = c.DefaultPostForm("status", booking.Status)

		// Save runs the balance hook, so the submitted total/advance pair
		// always yields a consistent balance.
		if err := db.Save(&booking).Error; err != nil {
			logrus.WithError(err).Error("error updating booking")
			c.Redirect(http.StatusFound, "/edit-booking/"+c.Param("id"))
			return
		}
		c.Redirect(http.StatusFound, "/my-bookings")
	}
}

func DeleteBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var booking models.Booking
		if err := db.First(&booking, c.Param("id")).Error; err != nil || !booking.OwnedBy(user.ID) {
			c.Redirect(http.StatusFound, "/my-bookings")
			return
		}

		if err := db.Delete(&booking).Error; err != nil {
			logrus.WithError(err).Error("error deleting booking")
		} else {
			logrus.WithField("booking_id", booking.ID).Info("deleted booking")
		}
		c.Redirect(http.StatusFound, "/my-bookings")
	}
}

func CancelBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middlewares.CurrentUser(c)

		var booking models.Booking
		if err := db.First(&booking, c.Param("id")).Error; err != nil || !booking.OwnedBy(user.ID) {
			c.Redirect(http.StatusFound, "/my-bookings")
			return
		}

		booking.Status = models.BookingStatusCancelled
		if err := db.Save(&booking).Error; err != nil {
			logrus.WithError(err).Error("error cancelling booking")
		}
		c.Redirect(http.StatusFound, "/my-bookings")
	}
}

func timestampSuffix() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	return ts[len(ts)-6:]
}
