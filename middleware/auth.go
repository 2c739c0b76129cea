package middleware

import (
	"amazon-shop/models"

	"github.com/gin-gonic/gin"
)

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess != nil && sess.Authenticated() {
			c.Next()
			return
		}

		if sess != nil {
			sess.AddFlash(models.FlashInfo, "Please log in to access this page.")
		}
		sessions.Redirect(c, "/login")
		c.Abort()
	}
}
