package services

import (
	"errors"
	"fmt"

	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/interfaces"
	"github.com/messageapps/message_service/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	FindUser(query string) (*dto.UserDto, error)
	SetStatus(userID uint, status string) error
}

type userService struct {
	repo     repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewUserService(repo repository.UserRepository, producer interfaces.ProducerHandler) UserService {
	return &userService{
		repo:     repo,
		producer: producer,
	}
}

// FindUser looks the query up as a username first, then as an email.
// Returns nil without error when neither matches.
func (s *userService) FindUser(query string) (*dto.UserDto, error) {
	user, err := s.repo.FindUserByUsername(query)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user, err = s.repo.FindUserByEmail(query)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
	}

	out := dto.ToUserDto(user)
	return &out, nil
}

func (s *userService) SetStatus(userID uint, status string) error {
	st := domain.UserStatus(status)
	if !st.Valid() {
		return errors.New("invalid status")
	}

	user, err := s.repo.FindUserById(userID)
	if err != nil {
		return err
	}

	user.Status = st
	if err := s.repo.SaveUser(user); err != nil {
		return err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"status":"%s"}`, user.UserID, user.Status)
		_ = s.producer.PublishMessage([]byte("user.status_changed"), []byte(payload))
	}

	return nil
}
