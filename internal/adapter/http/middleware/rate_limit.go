package middleware

import (
	"construction_quote/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, please try again later", http.StatusTooManyRequests)

// RateLimit throttles public write routes per client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			log.Printf("[http][middleware] rate limited ip=%s path=%s", ip, c.FullPath())
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
