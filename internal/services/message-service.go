package services

import (
	"fmt"
	"time"

	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/interfaces"
	"github.com/messageapps/message_service/internal/repository"
)

type MessageService interface {
	SendMessage(fromUserID, toUserID uint, content string) bool
	GetChatMessages(fromUserID, toUserID uint) ([]dto.MessageDto, error)
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository, producer interfaces.ProducerHandler) MessageService {
	return &messageService{
		repo:     repo,
		userRepo: userRepo,
		producer: producer,
	}
}

// SendMessage persists an unread message between two existing users. Sender
// and receiver need not be friends. Returns false when either id does not
// resolve, without persisting anything.
func (s *messageService) SendMessage(fromUserID, toUserID uint, content string) bool {
	sender, err := s.userRepo.FindUserById(fromUserID)
	if err != nil || sender == nil {
		return false
	}
	receiver, err := s.userRepo.FindUserById(toUserID)
	if err != nil || receiver == nil {
		return false
	}

	msg := &domain.Message{
		SenderID:    sender.UserID,
		ReceiverID:  receiver.UserID,
		MessageText: content,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}

	saved, err := s.repo.CreateMessage(msg)
	if err != nil {
		return false
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"message_id":%d,"sender_id":%d,"receiver_id":%d}`,
			saved.MessageID, saved.SenderID, saved.ReceiverID)
		_ = s.producer.PublishMessage([]byte("message.sent"), []byte(payload))
	}

	return true
}

// GetChatMessages returns the full two-way history between the users,
// oldest first. Argument order does not affect the result.
func (s *messageService) GetChatMessages(fromUserID, toUserID uint) ([]dto.MessageDto, error) {
	messages, err := s.repo.FindChatMessages(fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	return dto.ToMessageDtos(messages), nil
}
