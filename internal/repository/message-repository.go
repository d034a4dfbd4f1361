package repository

import (
	"errors"
	"log"

	"github.com/messageapps/message_service/internal/domain"
	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateMessage(msg *domain.Message) (*domain.Message, error)
	FindChatMessages(userA, userB uint) ([]domain.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(msg *domain.Message) (*domain.Message, error) {
	if msg == nil {
		return nil, errors.New("nil message")
	}

	if err := r.db.Create(msg).Error; err != nil {
		log.Printf("create message error: %v", err)
		return nil, err
	}

	return msg, nil
}

// FindChatMessages returns the conversation between two users in both
// directions, oldest first.
func (r *messageRepository) FindChatMessages(userA, userB uint) ([]domain.Message, error) {
	var messages []domain.Message

	err := r.db.Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("find chat messages error: %v", err)
		return nil, err
	}

	return messages, nil
}
