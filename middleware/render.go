package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageData adds the values every page layout reads: the signed-in user,
// the anti-forgery token, pending flash messages and the cart size.
// Flashes are consumed.
func PageData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if sess := CurrentSession(c); sess != nil {
		data["Username"] = sess.Username
		data["CSRFToken"] = sess.CSRFToken
		data["CartCount"] = sess.Cart.Len()
		data["Flashes"] = sess.PopFlashes()
	}
	return data
}

// RenderError renders error.html with status and aborts the chain.
func RenderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", PageData(c, gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	}))
	c.Abort()
}
