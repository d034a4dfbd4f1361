package repository

import (
	"errors"
	"log"

	"github.com/messageapps/message_service/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserById(userID uint) (*domain.User, error)
	FindUserByUsername(username string) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByRefreshToken(token string) (*domain.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	SaveUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Printf("create user error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserById(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(username string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "username = ?", username).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByRefreshToken(token string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "refresh_token = ?", token).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		log.Printf("exists by username error: %v", err)
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("exists by email error: %v", err)
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}
