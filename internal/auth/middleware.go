package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ginUserIDKey = "userID"

// Middleware extracts the caller's identity from the Authorization header.
// Requests without a valid token pass through anonymous: public routes stay
// readable and protected routes gate on RequireAuth.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractTokenFromHeader(c.GetHeader("Authorization"))
		if tokenStr == "" {
			c.Next()
			return
		}

		userID, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ginUserIDKey, userID)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// RequireAuth aborts with 401 unless Middleware identified the caller.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ginUserIDKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's ID, or 0 for anonymous callers.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(ginUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
