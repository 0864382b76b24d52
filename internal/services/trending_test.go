package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likePost(t *testing.T, user *models.User, postID uint) {
	t.Helper()
	require.NoError(t, db.DB.Create(&models.Like{UserID: user.ID, PostID: &postID}).Error)
}

func commentOn(t *testing.T, user *models.User, postID uint, content string) {
	t.Helper()
	require.NoError(t, db.DB.Create(&models.Comment{
		UserID:  user.ID,
		PostID:  postID,
		Content: content,
	}).Error)
}

func TestTrendingRanksByEngagement(t *testing.T) {
	newTestDB(t)
	trending := NewTrendingService()
	alice := createUser(t, "alice", models.AccountTypePublic)
	bob := createUser(t, "bob", models.AccountTypePublic)

	base := time.Now().Add(-time.Hour)
	quiet := createPostAt(t, alice, "quiet", base)
	liked := createPostAt(t, alice, "liked twice", base.Add(time.Minute))
	discussed := createPostAt(t, alice, "liked and discussed", base.Add(2*time.Minute))

	likePost(t, alice, liked.ID)
	likePost(t, bob, liked.ID)
	likePost(t, bob, discussed.ID)
	commentOn(t, bob, discussed.ID, "well said")
	commentOn(t, alice, discussed.ID, "thanks")

	result, err := trending.Trending()
	require.NoError(t, err)
	require.Len(t, result.PopularPosts, 3)
	assert.Equal(t, discussed.ID, result.PopularPosts[0].ID)
	assert.Equal(t, 3, result.PopularPosts[0].Engagement)
	assert.Equal(t, liked.ID, result.PopularPosts[1].ID)
	assert.Equal(t, quiet.ID, result.PopularPosts[2].ID)
}

func TestTrendingTieBreaksNewestFirst(t *testing.T) {
	newTestDB(t)
	trending := NewTrendingService()
	alice := createUser(t, "alice", models.AccountTypePublic)
	bob := createUser(t, "bob", models.AccountTypePublic)

	base := time.Now().Add(-time.Hour)
	older := createPostAt(t, alice, "older", base)
	newer := createPostAt(t, alice, "newer", base.Add(time.Minute))
	likePost(t, bob, older.ID)
	likePost(t, bob, newer.ID)

	result, err := trending.Trending()
	require.NoError(t, err)
	require.Len(t, result.PopularPosts, 2)
	assert.Equal(t, newer.ID, result.PopularPosts[0].ID)
	assert.Equal(t, older.ID, result.PopularPosts[1].ID)
}

func TestTrendingCapsAtTen(t *testing.T) {
	newTestDB(t)
	trending := NewTrendingService()
	alice := createUser(t, "alice", models.AccountTypePublic)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		createPostAt(t, alice, fmt.Sprintf("post %d #go", i), base.Add(time.Duration(i)*time.Minute))
	}

	result, err := trending.Trending()
	require.NoError(t, err)
	assert.Len(t, result.PopularPosts, 10)
}

func TestTrendingHashtagsByFrequency(t *testing.T) {
	newTestDB(t)
	trending := NewTrendingService()
	alice := createUser(t, "alice", models.AccountTypePublic)

	base := time.Now().Add(-time.Hour)
	createPostAt(t, alice, "loving #golang today", base)
	createPostAt(t, alice, "#golang #golang and a bit of #rust", base.Add(time.Minute))
	createPostAt(t, alice, "#rust again plus #Python", base.Add(2*time.Minute))

	result, err := trending.Trending()
	require.NoError(t, err)
	// golang counted three times including the repeat within one post.
	require.Len(t, result.TrendingHashtags, 3)
	assert.Equal(t, "golang", result.TrendingHashtags[0])
	assert.Equal(t, "rust", result.TrendingHashtags[1])
	assert.Equal(t, "python", result.TrendingHashtags[2])
}

func TestTrendingCached(t *testing.T) {
	newTestDB(t)
	trending := NewTrendingService()
	alice := createUser(t, "alice", models.AccountTypePublic)
	createPostAt(t, alice, "first", time.Now().Add(-time.Hour))

	first, err := trending.Trending()
	require.NoError(t, err)
	require.Len(t, first.PopularPosts, 1)

	createPostAt(t, alice, "second", time.Now())
	cached, err := trending.Trending()
	require.NoError(t, err)
	assert.Len(t, cached.PopularPosts, 1)

	utils.GetCache().Delete(cacheKeyTrending)
	fresh, err := trending.Trending()
	require.NoError(t, err)
	assert.Len(t, fresh.PopularPosts, 2)
}
