package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
	"github.com/vivekkumar001-ops/TripWheels/utils"
)

const (
	// SessionCookie carries the opaque session token.
	SessionCookie = "tw_session"
	// RedirectCookie remembers the path an unauthenticated request wanted,
	// so login can send the user back there.
	RedirectCookie = "tw_redirect"

	ContextUser = "currentUser"
)

// ResolveSession turns the session cookie into a per-request identity. It
// never blocks a request; the gates below do that.
func ResolveSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil {
			if sess, err := utils.LookupSession(db, token); err == nil {
				c.Set(ContextUser, sess.Snapshot())
			}
		}

		if user, ok := CurrentUser(c); ok {
			logrus.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"user":   user.Email,
			}).Debug("request")
		} else {
			logrus.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"user":   "guest",
			}).Debug("request")
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved for this request, if any.
func CurrentUser(c *gin.Context) (models.SessionUser, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return models.SessionUser{}, false
	}
	user, ok := v.(models.SessionUser)
	return user, ok
}

// RequireAuth redirects guests to the login page, recording where they
// were headed.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.SetCookie(RedirectCookie, c.Request.URL.RequestURI(), 600, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends non-admins back to their dashboard. There is no
// explicit forbidden signal.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
