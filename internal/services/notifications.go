package services

import (
	"log"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
)

// notify appends one fan-out record. A failed write is logged and swallowed:
// the triggering action has already been applied and is not rolled back.
func notify(recipientID, actorID uint, typ models.NotificationType, content, link string) {
	n := models.Notification{
		UserID:  recipientID,
		ActorID: actorID,
		Type:    typ,
		Content: content,
		Link:    link,
	}
	if err := db.DB.Create(&n).Error; err != nil {
		log.Printf("Notification fan-out failed (type=%s recipient=%d): %v", typ, recipientID, err)
	}
}

type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// List returns all notifications for the user, newest first, with actor
// summaries attached. Notifications whose actor no longer exists keep a nil
// actor rather than failing.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	actorIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		actorIDs = append(actorIDs, n.ActorID)
	}
	summaries, err := userSummaries(actorIDs)
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if s, ok := summaries[notifications[i].ActorID]; ok {
			actor := s
			notifications[i].Actor = &actor
		}
	}
	return notifications, nil
}

// MarkAllRead flips every unread record for the user in one bulk update.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// userSummaries batch-loads the short user shapes for the given ids. Ids of
// deleted users are simply absent from the result.
func userSummaries(ids []uint) (map[uint]models.UserSummary, error) {
	result := make(map[uint]models.UserSummary)
	if len(ids) == 0 {
		return result, nil
	}
	var users []models.User
	if err := db.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		result[users[i].ID] = users[i].Summary()
	}
	return result, nil
}
