package services

import (
	"strings"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/utils"
)

// MessageService handles direct messages. No follow relationship is required
// between sender and receiver.
type MessageService struct{}

func NewMessageService() *MessageService {
	return &MessageService{}
}

// Send stores a new message, unread.
func (s *MessageService) Send(actor *models.User, receiverID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(utils.SanitizeText(content))
	if content == "" {
		return nil, invalidInputErr("Message content is required")
	}
	var receiver models.User
	if err := db.DB.First(&receiver, receiverID).Error; err != nil {
		return nil, notFoundErr("User not found")
	}

	message := models.Message{
		SenderID:   actor.ID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// Conversations groups all messages touching the caller by the other
// participant, keeping the most recent message per partner plus a count of
// unread messages addressed to the caller, ordered by last-message recency.
// Partners that no longer exist are filtered out.
func (s *MessageService) Conversations(userID uint) ([]models.Conversation, error) {
	var messages []models.Message
	if err := db.DB.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").Order("id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		last   models.Message
		unread int
	}
	order := make([]uint, 0)
	buckets := make(map[uint]*bucket)
	for _, m := range messages {
		partner := m.SenderID
		if m.SenderID == userID {
			partner = m.ReceiverID
		}
		b, ok := buckets[partner]
		if !ok {
			// First hit is the most recent message for this partner.
			b = &bucket{last: m}
			buckets[partner] = b
			order = append(order, partner)
		}
		if !m.Read && m.ReceiverID == userID {
			b.unread++
		}
	}

	summaries, err := userSummaries(order)
	if err != nil {
		return nil, err
	}

	conversations := make([]models.Conversation, 0, len(order))
	for _, partner := range order {
		summary, ok := summaries[partner]
		if !ok {
			continue // partner account was deleted
		}
		b := buckets[partner]
		conversations = append(conversations, models.Conversation{
			WithUser:    summary,
			LastMessage: b.last,
			UnreadCount: b.unread,
		})
	}
	return conversations, nil
}

// ChatMessages returns the full history with one partner, oldest first.
func (s *MessageService) ChatMessages(userID, otherID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := db.DB.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	senderIDs := make([]uint, 0, len(messages))
	for _, m := range messages {
		senderIDs = append(senderIDs, m.SenderID)
	}
	summaries, err := userSummaries(senderIDs)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		if s, ok := summaries[messages[i].SenderID]; ok {
			sender := s
			messages[i].Sender = &sender
		}
	}
	return messages, nil
}

// MarkRead flips the read flag on every unread message from otherID to the
// caller in one bulk update. Messages in the opposite direction are left
// untouched.
func (s *MessageService) MarkRead(userID, otherID uint) error {
	return db.DB.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", otherID, userID, false).
		Update("read", true).Error
}
