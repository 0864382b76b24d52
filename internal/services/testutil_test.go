package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB points the package-level connection at a fresh in-memory
// database and clears the process-wide caches so tests stay independent.
func newTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	db.DB = g

	invalidateSearchCache()
	utils.GetCache().Delete(cacheKeyTrending)
}

func createUser(t *testing.T, username string, accountType models.AccountType) *models.User {
	t.Helper()
	user := models.User{
		Name:        username,
		Username:    username,
		Email:       username + "@example.com",
		Password:    "hash",
		AccountType: accountType,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func createPostAt(t *testing.T, author *models.User, content string, at time.Time) *models.Post {
	t.Helper()
	post := models.Post{
		UserID:    author.ID,
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, db.DB.Create(&post).Error)
	return &post
}

func notificationCount(t *testing.T, recipientID uint, typ models.NotificationType) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", recipientID, typ).
		Count(&count).Error)
	return count
}
