package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/menulens/menulens-go/tool"
)

// RateLimit rejects requests once the limiter's burst is spent. Guards the
// translate endpoint against a stuck presentation layer re-submitting in a
// loop; normal use never hits it.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, tool.FastReturnError("Too many requests"))
			return
		}
		c.Next()
	}
}
