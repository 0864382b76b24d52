package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler sits behind AdminRequired; every route here is admin-only.
type AdminHandler struct {
	admin      *services.AdminService
	engagement *services.EngagementService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		admin:      services.NewAdminService(),
		engagement: services.NewEngagementService(),
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.admin.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.engagement.DeletePost(currentUser(c), utils.StringToUint(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post removed successfully by admin"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.admin.DeleteUser(utils.StringToUint(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User and all their content removed successfully by admin"})
}
