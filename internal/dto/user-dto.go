package dto

import (
	"time"

	"github.com/messageapps/message_service/internal/domain"
)

// UserDto is the public view of a user. Password hash and refresh token
// never leave the service.
type UserDto struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func ToUserDto(u *domain.User) UserDto {
	return UserDto{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserDtos(users []domain.User) []UserDto {
	out := make([]UserDto, 0, len(users))
	for i := range users {
		out = append(out, ToUserDto(&users[i]))
	}
	return out
}
