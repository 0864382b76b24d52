package services

import (
	"sort"
	"time"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"
)

const (
	cacheKeyTrending = "trending"
	trendingCacheTTL = 30 * time.Second
	trendingLimit    = 10
)

// TrendingResult holds the top posts by engagement and the top hashtags by
// frequency.
type TrendingResult struct {
	PopularPosts     []models.Post `json:"popular_posts"`
	TrendingHashtags []string      `json:"trending_hashtags"`
}

// TrendingService recomputes both rankings from the full post collection on
// every request; a short TTL cache bounds the cost under load.
type TrendingService struct {
	engagement *EngagementService
}

func NewTrendingService() *TrendingService {
	return &TrendingService{engagement: NewEngagementService()}
}

// Trending ranks the top 10 posts by engagement score (likes + comments,
// ties broken by retrieval order, newest first) and the top 10 hashtags by
// frequency over all posts.
func (s *TrendingService) Trending() (*TrendingResult, error) {
	if cached := utils.GetCache().Get(cacheKeyTrending); cached != nil {
		return cached.(*TrendingResult), nil
	}

	var all []models.Post
	if err := db.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, err
	}
	posts, err := s.engagement.hydratePosts(all)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Engagement = len(posts[i].Likes) + len(posts[i].CommentIDs)
	}
	// Stable sort preserves retrieval order for equal scores.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Engagement > posts[j].Engagement
	})
	popular := posts
	if len(popular) > trendingLimit {
		popular = popular[:trendingLimit]
	}

	counts := make(map[string]int)
	firstSeen := []string{}
	for _, p := range all {
		for _, tag := range utils.ExtractHashtags(p.Content) {
			if counts[tag] == 0 {
				firstSeen = append(firstSeen, tag)
			}
			counts[tag]++
		}
	}
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})
	tags := firstSeen
	if len(tags) > trendingLimit {
		tags = tags[:trendingLimit]
	}

	result := &TrendingResult{PopularPosts: popular, TrendingHashtags: tags}
	utils.GetCache().Set(cacheKeyTrending, result, trendingCacheTTL)
	return result, nil
}
