package middleware

import (
	"amazon-shop/logging"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CSRFFieldName  = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"
)

// RequireCSRF rejects requests whose anti-forgery token does not match the
// session's. The token may come from the header, the form body or the query.
func RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)

		token := c.GetHeader(CSRFHeaderName)
		if token == "" {
			token = c.PostForm(CSRFFieldName)
		}
		if token == "" {
			token = c.Query(CSRFFieldName)
		}

		if sess == nil || !ValidCSRFToken(sess.CSRFToken, token) {
			logging.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("remote", c.ClientIP()).
				Msg("anti-forgery token mismatch")
			RenderError(c, http.StatusForbidden, "Your form has expired. Please go back, reload the page and try again.")
			return
		}
		c.Next()
	}
}

func ValidCSRFToken(expected, got string) bool {
	if expected == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
