package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{notifications: services.NewNotificationService()}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notifications.List(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
