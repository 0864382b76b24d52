package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler() *MessageHandler {
	return &MessageHandler{messages: services.NewMessageService()}
}

type sendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not send message"})
		return
	}

	message, err := h.messages.Send(currentUser(c), req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	conversations, err := h.messages.Conversations(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

func (h *MessageHandler) ChatMessages(c *gin.Context) {
	messages, err := h.messages.ChatMessages(currentUser(c).ID, utils.StringToUint(c.Param("userId")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messages.MarkRead(currentUser(c).ID, utils.StringToUint(c.Param("userId"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read."})
}
