package dto

import (
	"time"

	"github.com/messageapps/message_service/internal/domain"
)

type FriendRequestDto struct {
	RequestID uint    `json:"requestId"`
	Sender    UserDto `json:"sender"`
	Receiver  UserDto `json:"receiver"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

func ToFriendRequestDto(r *domain.FriendRequest) FriendRequestDto {
	return FriendRequestDto{
		RequestID: r.RequestID,
		Sender:    ToUserDto(&r.Sender),
		Receiver:  ToUserDto(&r.Receiver),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToFriendRequestDtos(requests []domain.FriendRequest) []FriendRequestDto {
	out := make([]FriendRequestDto, 0, len(requests))
	for i := range requests {
		out = append(out, ToFriendRequestDto(&requests[i]))
	}
	return out
}
