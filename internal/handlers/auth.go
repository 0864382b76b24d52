package handlers

import (
	"net/http"
	"strings"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/services"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokens *services.TokenService
	graph  *services.GraphService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		tokens: services.NewTokenService(),
		graph:  services.NewGraphService(),
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type resetRequest struct {
	Email string `json:"email" binding:"required"`
}

// authResponse is the user snapshot returned on register/login. The
// relationship arrays are part of the client contract.
type authResponse struct {
	models.User
	Token string `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, username, email and password are required"})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	var count int64
	db.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "User with this email or username already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Name:         utils.SanitizeText(req.Name),
		Username:     req.Username,
		Email:        req.Email,
		Password:     hash,
		ProfileImage: models.DefaultProfileImage,
		AccountType:  models.AccountTypePublic,
		IsOnline:     true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.graph.FillRelationSets(&user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.graph.FillRelationSets(&user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: user, Token: token})
}

// ResetPassword simulates sending a reset link; no token is emailed.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User with this email does not exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset link has been sent to your email (simulated)"})
}
