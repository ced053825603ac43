package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nuworldagency/SpeechScribe/internal/api/errors"
)

// userIDKey is the context key the subscription handlers read.
const userIDKey = "user_id"

// UserClaims are the JWT claims the auth provider issues for dashboard
// sessions. The subject carries the user id.
type UserClaims struct {
	jwt.RegisteredClaims
}

// RequireUser validates the Bearer token with the shared auth secret and
// stores the user identity on the request context. Requests without a valid
// identity are rejected with 401 before the handler runs.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			HandleError(c, errors.NewUnauthorizedError("Unauthorized"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &UserClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims,
			func(_ *jwt.Token) (any, error) { return []byte(secret), nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.Subject == "" {
			HandleError(c, errors.NewUnauthorizedError("Unauthorized"))
			return
		}
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			HandleError(c, errors.NewUnauthorizedError("Unauthorized"))
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
