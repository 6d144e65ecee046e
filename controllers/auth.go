package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/middlewares"
	"github.com/vivekkumar001-ops/TripWheels/models"
	"github.com/vivekkumar001-ops/TripWheels/utils"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// SessionMaxAge matches the 24h cookie lifetime.
const SessionMaxAge = 24 * time.Hour

func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middlewares.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "login.html", baseData(c, gin.H{
			"page":        "login",
			"message":     nil,
			"messageType": nil,
		}))
	}
}

func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
		password := c.PostForm("password")

		renderError := func(message string) {
			c.HTML(http.StatusOK, "login.html", baseData(c, gin.H{
				"page":        "login",
				"message":     message,
				"messageType": "error",
			}))
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			renderError("Invalid email or password!")
			return
		}

		if !utils.CheckPasswordHash(password, user.Password) {
			renderError("Invalid email or password!")
			return
		}

		if user.Status != models.UserStatusActive {
			renderError("Your account is " + user.Status + ". Please contact admin.")
			return
		}

		token, err := utils.CreateSession(db, &user, SessionMaxAge)
		if err != nil {
			logrus.WithError(err).Error("login error")
			renderError("Login failed! Please try again.")
			return
		}

		c.SetCookie(middlewares.SessionCookie, token, int(SessionMaxAge.Seconds()), "/", "", false, true)
		logrus.WithField("email", user.Email).Info("login successful")

		// Send the user back where they were headed before the login gate.
		redirectTo := "/dashboard"
		if saved, err := c.Cookie(middlewares.RedirectCookie); err == nil && strings.HasPrefix(saved, "/") {
			redirectTo = saved
		}
		c.SetCookie(middlewares.RedirectCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, redirectTo)
	}
}

func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middlewares.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "register.html", baseData(c, gin.H{
			"page":        "register",
			"message":     nil,
			"messageType": nil,
			"cities":      models.PreferredCities,
		}))
	}
}

func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderMessage := func(message, messageType string) {
			c.HTML(http.StatusOK, "register.html", baseData(c, gin.H{
				"page":        "register",
				"message":     message,
				"messageType": messageType,
				"cities":      models.PreferredCities,
			}))
		}

		password := c.PostForm("password")
		if password != c.PostForm("confirmpassword") {
			renderMessage("Passwords do not match!", "error")
			return
		}

		email := strings.ToLower(strings.TrimSpace(c.PostForm("emailaddress")))
		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			renderMessage("User already exists with this email!", "error")
			return
		}

		phone := strings.TrimSpace(c.PostForm("phonenumber"))
		if !phonePattern.MatchString(phone) {
			renderMessage("Please enter valid 10-digit phone number!", "error")
			return
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			logrus.WithError(err).Error("registration error")
			renderMessage("Registration failed! Please try again.", "error")
			return
		}

		user := models.User{
			Firstname:     strings.TrimSpace(c.PostForm("firstname")),
			Lastname:      strings.TrimSpace(c.PostForm("lastname")),
			Email:         email,
			Phone:         phone,
			Password:      hashed,
			PreferredCity: c.PostForm("preferredcity"),
			Status:        models.UserStatusActive,
			IsAdmin:       false,
		}
		if err := db.Create(&user).Error; err != nil {
			logrus.WithError(err).Error("registration error")
			renderMessage("Registration failed! Please try again.", "error")
			return
		}
		logrus.WithField("email", user.Email).Info("user registered")

		// Registration doubles as login; there is no confirmation step.
		token, err := utils.CreateSession(db, &user, SessionMaxAge)
		if err != nil {
			logrus.WithError(err).Error("auto-login after registration failed")
			renderMessage("Registration successful! Please log in.", "success")
			return
		}
		c.SetCookie(middlewares.SessionCookie, token, int(SessionMaxAge.Seconds()), "/", "", false, true)
		c.Set(middlewares.ContextUser, models.SessionUser{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.FullName(),
			Firstname: user.Firstname,
			Lastname:  user.Lastname,
			Phone:     user.Phone,
			City:      user.PreferredCity,
			IsAdmin:   false,
		})
		renderMessage("Registration successful! You are now logged in.", "success")
	}
}

func Logout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middlewares.SessionCookie); err == nil {
			if err := utils.DestroySession(db, token); err != nil {
				logrus.WithError(err).Error("logout error")
			}
		}
		c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
		if user, ok := middlewares.CurrentUser(c); ok {
			logrus.WithField("email", user.Email).Info("user logged out")
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

// CheckSession reports the login state as JSON for client-side scripts.
func CheckSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := middlewares.CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": user})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loggedIn": false, "user": nil})
	}
}
