package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/controllers"
	"github.com/vivekkumar001-ops/TripWheels/middlewares"
)

// SetupRouter builds the full route table. gin panics at startup if the
// same (method, path) pair is registered twice, so a shadowed handler can
// never make it into a running server.
func SetupRouter(db *gorm.DB, templateGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// Any panic reaching here renders the same error page the catch-all
	// 404 uses, just with a 500 status.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		logrus.WithField("panic", err).Error("server error")
		c.HTML(http.StatusInternalServerError, "404.html", gin.H{"user": nil})
	}))

	r.LoadHTMLGlob(templateGlob)
	r.Static("/css", "./views/css")
	r.Static("/js", "./views/js")
	r.Static("/img", "./views/img")

	r.Use(middlewares.ResolveSession(db))

	// Public pages
	r.GET("/", controllers.Home())
	r.GET("/vehicles", controllers.ListVehicles(db))
	r.GET("/vehicle/:id", controllers.VehicleDetail(db))
	r.GET("/cities", controllers.Cities())
	r.GET("/about", controllers.About())
	r.GET("/contact", controllers.ContactPage())
	r.POST("/contact", controllers.SubmitContact(db))

	// Identity lifecycle
	r.GET("/login", controllers.LoginPage())
	r.POST("/login", controllers.Login(db))
	r.GET("/register", controllers.RegisterPage())
	r.POST("/register", controllers.Register(db))
	r.GET("/logout", controllers.Logout(db))
	r.GET("/check-session", controllers.CheckSession())

	// Booking submission accepts guests; only the form pages and the
	// owner-scoped mutations sit behind the login gate.
	r.POST("/booking", controllers.CreateBooking(db))

	auth := r.Group("/").Use(middlewares.RequireAuth())
	{
		auth.GET("/dashboard", controllers.Dashboard(db))
		auth.GET("/my-bookings", controllers.MyBookings(db))
		auth.GET("/settings", controllers.Settings(db))
		auth.GET("/payments", controllers.Payments(db))
		auth.GET("/offers", controllers.Offers())
		auth.GET("/support", controllers.Support())

		auth.GET("/booking", controllers.BookingPage())
		auth.GET("/booking/:id", controllers.BookingDetail(db))
		auth.GET("/edit-booking/:id", controllers.EditBookingPage(db))
		auth.POST("/update-booking/:id", controllers.UpdateBooking(db))
		auth.POST("/delete-booking/:id", controllers.DeleteBooking(db))
		auth.POST("/cancel-booking/:id", controllers.CancelBooking(db))
	}

	admin := r.Group("/").Use(middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/view-registration", controllers.ViewRegistrations(db))
		admin.GET("/edit-registration/:id", controllers.EditRegistrationPage(db))
		admin.POST("/update-registration/:id", controllers.UpdateRegistration(db))
		admin.GET("/delete-registration/:id", controllers.DeleteRegistration(db))

		admin.GET("/view-contact", controllers.ViewContacts(db))
		admin.GET("/edit-contact/:id", controllers.EditContactPage(db))
		admin.POST("/update-contact/:id", controllers.UpdateContact(db))
		admin.POST("/contacts/delete/:id", controllers.DeleteContact(db))

		admin.GET("/add-vehicle", controllers.AddVehiclePage())
		admin.POST("/add-vehicle", controllers.AddVehicle(db))
		admin.GET("/view-vehicles", controllers.ViewAdminVehicles(db))
		admin.GET("/edit-vehicle/:id", controllers.EditVehiclePage(db))
		admin.POST("/update-vehicle/:id", controllers.UpdateVehicle(db))
		admin.POST("/delete-vehicle/:id", controllers.DeleteVehicle(db))
	}

	r.NoRoute(controllers.NotFound())

	return r
}
