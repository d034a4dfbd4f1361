package dto

import (
	"time"

	"github.com/messageapps/message_service/internal/domain"
)

type MessageDto struct {
	MessageID   uint    `json:"messageId"`
	Sender      UserDto `json:"sender"`
	Receiver    UserDto `json:"receiver"`
	MessageText string  `json:"messageText"`
	IsRead      bool    `json:"isRead"`
	CreatedAt   string  `json:"createdAt"`
}

func ToMessageDto(m *domain.Message) MessageDto {
	return MessageDto{
		MessageID:   m.MessageID,
		Sender:      ToUserDto(&m.Sender),
		Receiver:    ToUserDto(&m.Receiver),
		MessageText: m.MessageText,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func ToMessageDtos(messages []domain.Message) []MessageDto {
	out := make([]MessageDto, 0, len(messages))
	for i := range messages {
		out = append(out, ToMessageDto(&messages[i]))
	}
	return out
}
