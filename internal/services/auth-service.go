package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/helper"
	"github.com/messageapps/message_service/internal/interfaces"
	"github.com/messageapps/message_service/internal/repository"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(username, password string) (*dto.LoginResponse, error)
	Register(input dto.RegisterRequest) error
	ValidateAccessToken(token string) (string, error)
	CurrentUser(token string) (*domain.User, error)
	RefreshSession(refreshToken string) (*dto.RefreshResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewAuthService(repo repository.UserRepository, auth helper.Auth, producer interfaces.ProducerHandler) AuthService {
	return &authService{
		repo:     repo,
		auth:     auth,
		producer: producer,
	}
}

// Login checks the credentials and issues a fresh access/refresh token pair.
// The new refresh token overwrites whatever was stored, revoking the previous
// session's refresh capability. Unknown username and wrong password report
// the same error so callers cannot enumerate usernames.
func (s *authService) Login(username, password string) (*dto.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("login lookup error: %v", err)
		return nil, ErrAuthentication
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.Username)
	if err != nil {
		log.Printf("generate token error: %v", err)
		return nil, ErrAuthentication
	}

	refresh := s.auth.GenerateRefreshToken()
	user.RefreshToken = &refresh
	if err := s.repo.SaveUser(user); err != nil {
		return nil, ErrAuthentication
	}

	log.Printf("user %s logged in successfully", user.Username)

	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Message:      "Login successful",
	}, nil
}

// Register creates the user with a hashed password, Offline status and the
// current creation time. Username and email must both be unused; the store's
// unique indexes backstop the explicit checks.
func (s *authService) Register(input dto.RegisterRequest) error {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if username == "" || email == "" || input.PasswordHash == "" {
		return errors.New("invalid inputs")
	}

	taken, err := s.repo.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hashed, err := s.auth.HashPassword(input.PasswordHash)
	if err != nil {
		return err
	}

	newUser := &domain.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
		Status:       domain.StatusOffline,
		CreatedAt:    time.Now(),
	}

	usr, err := s.repo.CreateUser(newUser)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if usr == nil || usr.UserID == 0 {
		return errors.New("failed to create user")
	}

	log.Printf("user registered successfully with ID: %d", usr.UserID)

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"username":"%s","email":"%s"}`,
			usr.UserID, usr.Username, usr.Email)
		_ = s.producer.PublishMessage([]byte("user.registered"), []byte(payload))
	}

	return nil
}

// ValidateAccessToken returns the username embedded in a valid token.
func (s *authService) ValidateAccessToken(token string) (string, error) {
	username, err := s.auth.VerifyToken(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return username, nil
}

// CurrentUser resolves the token's username to a user record. A valid token
// for a user that has since disappeared yields nil without error.
func (s *authService) CurrentUser(token string) (*domain.User, error) {
	username, err := s.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// RefreshSession redeems a refresh token for a new token pair. The presented
// token is rotated out immediately, so each refresh token can be redeemed
// exactly once.
func (s *authService) RefreshSession(refreshToken string) (*dto.RefreshResponse, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.FindUserByRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	token, err := s.auth.GenerateToken(user.Username)
	if err != nil {
		log.Printf("generate token error: %v", err)
		return nil, ErrAuthentication
	}

	next := s.auth.GenerateRefreshToken()
	user.RefreshToken = &next
	if err := s.repo.SaveUser(user); err != nil {
		return nil, ErrAuthentication
	}

	return &dto.RefreshResponse{
		AccessToken:  token,
		RefreshToken: next,
	}, nil
}
