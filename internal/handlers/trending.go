package handlers

import (
	"net/http"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trending *services.TrendingService
}

func NewTrendingHandler() *TrendingHandler {
	return &TrendingHandler{trending: services.NewTrendingService()}
}

func (h *TrendingHandler) Get(c *gin.Context) {
	result, err := h.trending.Trending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
