package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nuworldagency/SpeechScribe/internal/api/errors"
)

// RateLimit caps the request rate on expensive endpoints (the multipart
// upload path). Burst absorbs short spikes from the dashboard.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, &errors.APIError{
				Kind:      errors.KindBadRequest,
				Message:   "Too many requests",
				RequestID: c.GetString("request_id"),
			})
			return
		}
		c.Next()
	}
}
