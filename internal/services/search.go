package services

import (
	"strings"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"
)

const (
	cacheKeySearchUsers = "search:users"
	cacheKeySearchPosts = "search:posts"
	searchCacheTTL      = 60 * time.Second
)

// invalidateSearchCache drops the preload snapshots after any post or user
// mutation so the client-side cache never reads stale data past the TTL.
func invalidateSearchCache() {
	utils.GetCache().Delete(cacheKeySearchUsers)
	utils.GetCache().Delete(cacheKeySearchPosts)
}

// SearchResult is the combined query response.
type SearchResult struct {
	Users    []models.User `json:"users"`
	Posts    []models.Post `json:"posts"`
	Hashtags []string      `json:"hashtags"`
}

// SearchService scans the full user and post collections on each query.
// There is no stored index; the preload endpoints are served through the
// process-wide TTL cache instead.
type SearchService struct {
	engagement *EngagementService
}

func NewSearchService() *SearchService {
	return &SearchService{engagement: NewEngagementService()}
}

// Search performs a case-insensitive substring match over user names and
// usernames and over post bodies, and collects the hashtag set of every
// content-matched post.
func (s *SearchService) Search(query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalidInputErr("Search query is required")
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	if err := db.DB.Where("LOWER(name) LIKE ? OR LOWER(username) LIKE ?", pattern, pattern).
		Limit(10).
		Find(&users).Error; err != nil {
		return nil, err
	}

	var matched []models.Post
	if err := db.DB.Where("LOWER(content) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&matched).Error; err != nil {
		return nil, err
	}

	hashtags := []string{}
	seen := make(map[string]bool)
	for _, p := range matched {
		for _, tag := range utils.ExtractHashtags(p.Content) {
			if !seen[tag] {
				seen[tag] = true
				hashtags = append(hashtags, tag)
			}
		}
	}

	if len(matched) > 10 {
		matched = matched[:10]
	}
	posts, err := s.engagement.hydratePosts(matched)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Users: users, Posts: posts, Hashtags: hashtags}, nil
}

// AllUsers returns the full user collection for the client-side search
// cache, behind the TTL cache.
func (s *SearchService) AllUsers() ([]models.User, error) {
	if cached := utils.GetCache().Get(cacheKeySearchUsers); cached != nil {
		return cached.([]models.User), nil
	}

	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	utils.GetCache().Set(cacheKeySearchUsers, users, searchCacheTTL)
	return users, nil
}

// AllPosts returns the full post collection, newest first, behind the TTL
// cache.
func (s *SearchService) AllPosts() ([]models.Post, error) {
	if cached := utils.GetCache().Get(cacheKeySearchPosts); cached != nil {
		return cached.([]models.Post), nil
	}

	var posts []models.Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	hydrated, err := s.engagement.hydratePosts(posts)
	if err != nil {
		return nil, err
	}
	utils.GetCache().Set(cacheKeySearchPosts, hydrated, searchCacheTTL)
	return hydrated, nil
}
