package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gin adapts a net/http middleware to Gin so auth decisions stay
// framework-agnostic.
func Gin(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		// Wrap Gin request with the net/http middleware
		handler := mw(next)

		// Execute middleware chain
		handler.ServeHTTP(c.Writer, c.Request)

		// If the middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
