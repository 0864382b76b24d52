package services

import (
	"os"
	"strconv"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"

	"github.com/google/uuid"
)

const defaultTokenTTL = 720 * time.Hour // 30 days

// TokenService issues and validates the opaque bearer tokens carried in the
// Authorization header.
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

func tokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultTokenTTL
}

// Issue creates a fresh token for the user.
func (s *TokenService) Issue(userID uint) (string, error) {
	token := models.AuthToken{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(tokenTTL()),
	}
	if err := db.DB.Create(&token).Error; err != nil {
		return "", err
	}
	return token.Token, nil
}

// Validate resolves a bearer token to its user. Expired or unknown tokens
// and tokens of deleted users all fail the same way.
func (s *TokenService) Validate(token string) (*models.User, error) {
	var record models.AuthToken
	if err := db.DB.First(&record, "token = ?", token).Error; err != nil {
		return nil, unauthorizedErr("Not authorized, token failed")
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, unauthorizedErr("Not authorized, token expired")
	}

	var user models.User
	if err := db.DB.First(&user, record.UserID).Error; err != nil {
		return nil, unauthorizedErr("Not authorized, token failed")
	}
	return &user, nil
}
