package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/middleware"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"

	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated caller. Routes using it sit behind
// AuthRequired, so the key is always present.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// respondError translates a service error into the JSON error contract.
// Unknown errors become 500 and are logged with detail the client never sees.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
	}
}
