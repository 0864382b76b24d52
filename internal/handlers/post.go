package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	engagement *services.EngagementService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{engagement: services.NewEngagementService()}
}

type createPostRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type updateContentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post data"})
		return
	}

	post, err := h.engagement.CreatePost(currentUser(c), req.Content, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Post content is required"})
		return
	}

	post, err := h.engagement.UpdatePost(currentUser(c), utils.StringToUint(c.Param("id")), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.engagement.DeletePost(currentUser(c), utils.StringToUint(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post removed successfully"})
}

// Feed returns the caller's posts plus posts from everyone they follow,
// newest first.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.engagement.Feed(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) UserPosts(c *gin.Context) {
	posts, err := h.engagement.UserPosts(utils.StringToUint(c.Param("userId")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	post, err := h.engagement.ToggleLikePost(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment data"})
		return
	}

	comment, err := h.engagement.AddComment(currentUser(c), utils.StringToUint(c.Param("id")), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) Comments(c *gin.Context) {
	comments, err := h.engagement.Comments(utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *PostHandler) UpdateComment(c *gin.Context) {
	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment content is required"})
		return
	}

	comment, err := h.engagement.UpdateComment(currentUser(c), utils.StringToUint(c.Param("id")), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	if err := h.engagement.DeleteComment(currentUser(c), utils.StringToUint(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment removed successfully"})
}

func (h *PostHandler) ToggleLikeComment(c *gin.Context) {
	comment, err := h.engagement.ToggleLikeComment(currentUser(c), utils.StringToUint(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
