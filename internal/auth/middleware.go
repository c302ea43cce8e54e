package auth

import (
	"net/http"
	"strings"

	"appakabar/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie the login handler sets. Browser clients
// authenticate with it; API clients may send a bearer header instead.
const CookieName = "appakabar_token"

// ContextUserKey is the gin context key holding the authenticated username.
const ContextUserKey = "username"

// AuthMiddleware creates a gin middleware that requires a valid token,
// taken from the Authorization header or the session cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString, _ = c.Cookie(CookieName)
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		username, err := jwt.ParseUsername(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextUserKey, username)
		c.Next()
	}
}

// CurrentUser returns the authenticated username set by AuthMiddleware.
func CurrentUser(c *gin.Context) string {
	username, _ := c.Get(ContextUserKey)
	if s, ok := username.(string); ok {
		return s
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
