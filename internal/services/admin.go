package services

import (
	"log"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
)

// AdminService backs the administrative surface. Authorization (admin flag)
// is enforced by middleware before any of these run.
type AdminService struct {
	engagement *EngagementService
}

func NewAdminService() *AdminService {
	return &AdminService{engagement: NewEngagementService()}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return s.engagement.hydratePosts(posts)
}

// DeleteUser removes a user and cascades to every post, comment and like
// they own, plus their tokens. The deleted id is deliberately NOT purged
// from other users' relationship sets; populated reads filter the dangling
// ids instead.
func (s *AdminService) DeleteUser(userID uint) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return notFoundErr("User not found")
	}

	var postIDs []uint
	if err := db.DB.Model(&models.Post{}).Where("user_id = ?", user.ID).
		Pluck("id", &postIDs).Error; err != nil {
		return err
	}

	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Post{}).Error; err != nil {
		return err
	}
	for _, postID := range postIDs {
		s.engagement.cleanupPostDependents(postID)
	}

	// Comments the user left on other people's posts, and their like rows.
	var commentIDs []uint
	if err := db.DB.Model(&models.Comment{}).Where("user_id = ?", user.ID).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := db.DB.Where("comment_id IN ?", commentIDs).Delete(&models.Like{}).Error; err != nil {
			log.Printf("User %d cascade: deleting comment likes failed: %v", user.ID, err)
		}
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
		log.Printf("User %d cascade: deleting comments failed: %v", user.ID, err)
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Like{}).Error; err != nil {
		log.Printf("User %d cascade: deleting likes failed: %v", user.ID, err)
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.AuthToken{}).Error; err != nil {
		log.Printf("User %d cascade: deleting tokens failed: %v", user.ID, err)
	}

	if err := db.DB.Delete(&models.User{}, user.ID).Error; err != nil {
		return err
	}
	invalidateSearchCache()
	return nil
}
