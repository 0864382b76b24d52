package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	graph *services.GraphService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{graph: services.NewGraphService()}
}

type updateProfileRequest struct {
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	AccountType  string `json:"account_type"`
}

// Profile returns the caller's own record with relationship sets.
func (h *UserHandler) Profile(c *gin.Context) {
	user := *currentUser(c)
	if err := h.graph.FillRelationSets(&user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile mutates name/bio/image (and optionally account type) on the
// caller's own record. Empty fields are left unchanged.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile data"})
		return
	}

	user := currentUser(c)
	if req.Name != "" {
		user.Name = utils.SanitizeText(req.Name)
	}
	if req.Bio != "" {
		user.Bio = utils.SanitizeText(req.Bio)
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	switch models.AccountType(req.AccountType) {
	case models.AccountTypePublic, models.AccountTypePrivate:
		user.AccountType = models.AccountType(req.AccountType)
	case "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Account type must be public or private"})
		return
	}

	if err := db.DB.Save(user).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"username":      user.Username,
		"bio":           user.Bio,
		"profile_image": user.ProfileImage,
		"account_type":  user.AccountType,
	})
}

// GetByID returns any user's profile with relationship sets.
func (h *UserHandler) GetByID(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, utils.StringToUint(c.Param("id"))).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := h.graph.FillRelationSets(&user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Search matches users by case-insensitive substring on name or username.
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}

	pattern := "%" + query + "%"
	var users []models.User
	if err := db.DB.Where("LOWER(name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?)",
		pattern, pattern).
		Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Follow starts following a public target or files a request on a private
// one.
func (h *UserHandler) Follow(c *gin.Context) {
	status, err := h.graph.Follow(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	if status == services.StatusRequested {
		c.JSON(http.StatusOK, gin.H{"status": status, "message": "Follow request sent."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "message": "User followed successfully."})
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	status, err := h.graph.Unfollow(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "message": "User unfollowed successfully."})
}

func (h *UserHandler) CancelRequest(c *gin.Context) {
	status, err := h.graph.CancelRequest(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "message": "Follow request cancelled."})
}

// Requests lists the caller's pending follow requests.
func (h *UserHandler) Requests(c *gin.Context) {
	requests, err := h.graph.PendingRequests(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *UserHandler) ApproveRequest(c *gin.Context) {
	if err := h.graph.ApproveRequest(currentUser(c), utils.StringToUint(c.Param("requesterId"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Follow request approved."})
}

func (h *UserHandler) DenyRequest(c *gin.Context) {
	if err := h.graph.DenyRequest(currentUser(c), utils.StringToUint(c.Param("requesterId"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Follow request denied."})
}

func (h *UserHandler) ToggleMute(c *gin.Context) {
	muted, err := h.graph.ToggleMute(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_muted": muted})
}

func (h *UserHandler) ToggleNotifications(c *gin.Context) {
	enabled, err := h.graph.ToggleNotify(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications_enabled": enabled})
}
