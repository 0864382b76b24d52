package middleware

import (
	"net/http"
	"strings"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the Authorization bearer token, if present, and sets the
// user on the context. Invalid tokens are ignored here; AuthRequired decides
// whether a user is mandatory.
func LoadUser() gin.HandlerFunc {
	tokens := services.NewTokenService()
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if user, err := tokens.Validate(token); err == nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests that did not present a valid token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		c.Next()
	}
}

// AdminRequired rejects non-admin callers. Runs after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists || !u.(*models.User).IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized as an admin"})
			return
		}
		c.Next()
	}
}
