package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub/response"
	"stayhub/services"
)

// AuthMiddleware authenticates the request and optionally restricts it to
// the given roles.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// OptionalAuth resolves the caller identity when a token is present but
// never rejects the request; booking and search accept guests.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, userRole, err := services.GetUserIDFromToken(tokenString); err == nil {
				c.Set("userID", userID)
				c.Set("userRole", userRole)
			}
		}
		c.Next()
	}
}
