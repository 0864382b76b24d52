package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"
)

// EngagementService owns post/comment lifecycle, the idempotent like toggles
// and the like/comment notification triggers.
type EngagementService struct {
	graph *GraphService
}

func NewEngagementService() *EngagementService {
	return &EngagementService{graph: NewGraphService()}
}

// CreatePost stores a new post. Empty text with no image is invalid.
func (s *EngagementService) CreatePost(actor *models.User, content, image string) (*models.Post, error) {
	content = strings.TrimSpace(utils.SanitizeText(content))
	if content == "" && image == "" {
		return nil, invalidInputErr("Post content or image is required")
	}

	post := models.Post{
		UserID:  actor.ID,
		Content: content,
		Image:   image,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	invalidateSearchCache()
	return s.hydratePost(&post)
}

// UpdatePost is a content-only mutation, owner-only.
func (s *EngagementService) UpdatePost(actor *models.User, postID uint, content string) (*models.Post, error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return nil, notFoundErr("Post not found")
	}
	if post.UserID != actor.ID {
		return nil, unauthorizedErr("Not authorized to edit this post")
	}

	content = strings.TrimSpace(utils.SanitizeText(content))
	if content != "" {
		post.Content = content
	}
	if err := db.DB.Save(&post).Error; err != nil {
		return nil, err
	}
	invalidateSearchCache()
	return s.hydratePost(&post)
}

// DeletePost removes a post and cascades to its comments and likes. Owner or
// admin only. The cascade is transactional in intent: the post delete is the
// primary step, and a cleanup failure after it is logged, not rolled back.
func (s *EngagementService) DeletePost(actor *models.User, postID uint) error {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return notFoundErr("Post not found")
	}
	if post.UserID != actor.ID && !actor.IsAdmin {
		return unauthorizedErr("Not authorized to delete this post")
	}

	if err := db.DB.Delete(&models.Post{}, post.ID).Error; err != nil {
		return err
	}
	s.cleanupPostDependents(post.ID)
	invalidateSearchCache()
	return nil
}

// cleanupPostDependents removes a deleted post's comments and like rows.
// Failures here leave orphans behind; they are logged and swallowed.
func (s *EngagementService) cleanupPostDependents(postID uint) {
	var commentIDs []uint
	if err := db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).
		Pluck("id", &commentIDs).Error; err != nil {
		log.Printf("Post %d cascade: listing comments failed: %v", postID, err)
	}
	if len(commentIDs) > 0 {
		if err := db.DB.Where("comment_id IN ?", commentIDs).Delete(&models.Like{}).Error; err != nil {
			log.Printf("Post %d cascade: deleting comment likes failed: %v", postID, err)
		}
	}
	if err := db.DB.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		log.Printf("Post %d cascade: deleting comments failed: %v", postID, err)
	}
	if err := db.DB.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		log.Printf("Post %d cascade: deleting likes failed: %v", postID, err)
	}
}

// Feed returns posts authored by the caller or anyone they follow, newest
// first.
func (s *EngagementService) Feed(actor *models.User) ([]models.Post, error) {
	ids, err := s.graph.FollowingIDs(actor.ID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, actor.ID)

	var posts []models.Post
	if err := db.DB.Where("user_id IN ?", ids).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return s.hydratePosts(posts)
}

// UserPosts returns one author's posts, newest first.
func (s *EngagementService) UserPosts(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := db.DB.Where("user_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return s.hydratePosts(posts)
}

// ToggleLikePost toggles the actor's membership in the post's like set.
// A like notification is emitted only on the absent -> present transition,
// and never for the post's own author.
func (s *EngagementService) ToggleLikePost(actor *models.User, postID uint) (*models.Post, error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return nil, notFoundErr("Post not found")
	}

	var existing models.Like
	err := db.DB.Where("user_id = ? AND post_id = ?", actor.ID, post.ID).First(&existing).Error
	if err == nil {
		if err := db.DB.Delete(&models.Like{}, existing.ID).Error; err != nil {
			return nil, err
		}
	} else {
		like := models.Like{UserID: actor.ID, PostID: &post.ID}
		if err := db.DB.Create(&like).Error; err != nil {
			return nil, err
		}
		if post.UserID != actor.ID {
			notify(post.UserID, actor.ID, models.NotificationTypeLike,
				fmt.Sprintf("%s liked your post.", actor.Name),
				fmt.Sprintf("/posts/%d", post.ID))
		}
	}
	return s.hydratePost(&post)
}

// ToggleLikeComment toggles the actor's membership in the comment's like
// set. No notification is emitted for comment likes.
func (s *EngagementService) ToggleLikeComment(actor *models.User, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		return nil, notFoundErr("Comment not found")
	}

	var existing models.Like
	err := db.DB.Where("user_id = ? AND comment_id = ?", actor.ID, comment.ID).First(&existing).Error
	if err == nil {
		if err := db.DB.Delete(&models.Like{}, existing.ID).Error; err != nil {
			return nil, err
		}
	} else {
		like := models.Like{UserID: actor.ID, CommentID: &comment.ID}
		if err := db.DB.Create(&like).Error; err != nil {
			return nil, err
		}
	}
	return s.hydrateComment(&comment)
}

// AddComment appends a comment to a post and emits a comment notification
// unless the actor owns the post.
func (s *EngagementService) AddComment(actor *models.User, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(utils.SanitizeText(content))
	if content == "" {
		return nil, invalidInputErr("Comment content is required")
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return nil, notFoundErr("Post not found")
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  actor.ID,
		Content: content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	if post.UserID != actor.ID {
		notify(post.UserID, actor.ID, models.NotificationTypeComment,
			fmt.Sprintf("%s commented on your post.", actor.Name),
			fmt.Sprintf("/posts/%d", post.ID))
	}
	return s.hydrateComment(&comment)
}

// Comments lists a post's comments, newest first, hydrated with authors.
func (s *EngagementService) Comments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.DB.Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return s.hydrateComments(comments)
}

// UpdateComment is owner-only.
func (s *EngagementService) UpdateComment(actor *models.User, commentID uint, content string) (*models.Comment, error) {
	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		return nil, notFoundErr("Comment not found")
	}
	if comment.UserID != actor.ID {
		return nil, unauthorizedErr("Not authorized to edit this comment")
	}

	content = strings.TrimSpace(utils.SanitizeText(content))
	if content != "" {
		comment.Content = content
	}
	if err := db.DB.Save(&comment).Error; err != nil {
		return nil, err
	}
	return s.hydrateComment(&comment)
}

// DeleteComment is authorized for the comment owner, the parent post's owner
// or an admin. Removing the row also removes it from the parent post's
// comment list, which is derived from these rows.
func (s *EngagementService) DeleteComment(actor *models.User, commentID uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		return notFoundErr("Comment not found")
	}

	var post models.Post
	postOwner := false
	if err := db.DB.First(&post, comment.PostID).Error; err == nil {
		postOwner = post.UserID == actor.ID
	}

	if comment.UserID != actor.ID && !postOwner && !actor.IsAdmin {
		return unauthorizedErr("Not authorized to delete this comment")
	}

	if err := db.DB.Delete(&models.Comment{}, comment.ID).Error; err != nil {
		return err
	}
	if err := db.DB.Where("comment_id = ?", comment.ID).Delete(&models.Like{}).Error; err != nil {
		log.Printf("Comment %d cascade: deleting likes failed: %v", comment.ID, err)
	}
	return nil
}

// hydratePost fills the derived fields of a single post.
func (s *EngagementService) hydratePost(post *models.Post) (*models.Post, error) {
	hydrated, err := s.hydratePosts([]models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// hydratePosts batch-fills like sets, comment id lists, author summaries and
// rendered HTML. Posts whose author was deleted keep a nil author.
func (s *EngagementService) hydratePosts(posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return []models.Post{}, nil
	}

	postIDs := make([]uint, len(posts))
	authorIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
		authorIDs[i] = p.UserID
	}

	var likes []models.Like
	if err := db.DB.Where("post_id IN ?", postIDs).Order("id ASC").Find(&likes).Error; err != nil {
		return nil, err
	}
	likesByPost := make(map[uint][]uint)
	for _, l := range likes {
		likesByPost[*l.PostID] = append(likesByPost[*l.PostID], l.UserID)
	}

	var comments []models.Comment
	if err := db.DB.Where("post_id IN ?", postIDs).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	commentsByPost := make(map[uint][]uint)
	for _, c := range comments {
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], c.ID)
	}

	summaries, err := userSummaries(authorIDs)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		p := &posts[i]
		p.Likes = likesByPost[p.ID]
		if p.Likes == nil {
			p.Likes = []uint{}
		}
		p.CommentIDs = commentsByPost[p.ID]
		if p.CommentIDs == nil {
			p.CommentIDs = []uint{}
		}
		p.ContentHTML = utils.RenderMarkdown(p.Content)
		if s, ok := summaries[p.UserID]; ok {
			author := s
			p.Author = &author
		}
	}
	return posts, nil
}

func (s *EngagementService) hydrateComment(comment *models.Comment) (*models.Comment, error) {
	hydrated, err := s.hydrateComments([]models.Comment{*comment})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

func (s *EngagementService) hydrateComments(comments []models.Comment) ([]models.Comment, error) {
	if len(comments) == 0 {
		return []models.Comment{}, nil
	}

	commentIDs := make([]uint, len(comments))
	authorIDs := make([]uint, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
		authorIDs[i] = c.UserID
	}

	var likes []models.Like
	if err := db.DB.Where("comment_id IN ?", commentIDs).Order("id ASC").Find(&likes).Error; err != nil {
		return nil, err
	}
	likesByComment := make(map[uint][]uint)
	for _, l := range likes {
		likesByComment[*l.CommentID] = append(likesByComment[*l.CommentID], l.UserID)
	}

	summaries, err := userSummaries(authorIDs)
	if err != nil {
		return nil, err
	}

	for i := range comments {
		c := &comments[i]
		c.Likes = likesByComment[c.ID]
		if c.Likes == nil {
			c.Likes = []uint{}
		}
		c.ContentHTML = utils.RenderMarkdown(c.Content)
		if s, ok := summaries[c.UserID]; ok {
			author := s
			c.Author = &author
		}
	}
	return comments, nil
}
