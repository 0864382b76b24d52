package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	search *services.SearchService
}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{search: services.NewSearchService()}
}

// Search runs the combined users + posts + hashtags query.
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.search.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AllUsers serves the full user collection for the client's preload cache.
func (h *SearchHandler) AllUsers(c *gin.Context) {
	users, err := h.search.AllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AllPosts serves the full post collection for the client's preload cache.
func (h *SearchHandler) AllPosts(c *gin.Context) {
	posts, err := h.search.AllPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
