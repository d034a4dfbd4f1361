package repository

import (
	"errors"
	"log"

	"github.com/messageapps/message_service/internal/domain"
	"gorm.io/gorm"
)

type FriendRequestRepository interface {
	CreateRequest(req *domain.FriendRequest) (*domain.FriendRequest, error)
	FindRequestById(requestID uint) (*domain.FriendRequest, error)
	SaveRequest(req *domain.FriendRequest) error
	FindRequestsByReceiver(userID uint) ([]domain.FriendRequest, error)
	ExistsBySenderAndReceiver(senderID, receiverID uint) (bool, error)
	FindAcceptedFriends(userID uint) ([]domain.User, error)
}

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) CreateRequest(req *domain.FriendRequest) (*domain.FriendRequest, error) {
	if req == nil {
		return nil, errors.New("nil friend request")
	}

	if err := r.db.Create(req).Error; err != nil {
		log.Printf("create friend request error: %v", err)
		return nil, err
	}

	return req, nil
}

func (r *friendRequestRepository) FindRequestById(requestID uint) (*domain.FriendRequest, error) {
	req := &domain.FriendRequest{}

	if err := r.db.Preload("Sender").Preload("Receiver").First(req, requestID).Error; err != nil {
		return nil, err
	}

	return req, nil
}

func (r *friendRequestRepository) SaveRequest(req *domain.FriendRequest) error {
	if req == nil {
		return errors.New("nil friend request")
	}

	if err := r.db.Save(req).Error; err != nil {
		log.Printf("save friend request error: %v", err)
		return err
	}
	return nil
}

// FindRequestsByReceiver lists requests addressed to the user. Requests the
// user sent are deliberately not included.
func (r *friendRequestRepository) FindRequestsByReceiver(userID uint) ([]domain.FriendRequest, error) {
	var requests []domain.FriendRequest

	err := r.db.Preload("Sender").Preload("Receiver").
		Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		log.Printf("find friend requests by receiver error: %v", err)
		return nil, err
	}

	return requests, nil
}

func (r *friendRequestRepository) ExistsBySenderAndReceiver(senderID, receiverID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		Count(&count).Error
	if err != nil {
		log.Printf("exists by sender and receiver error: %v", err)
		return false, err
	}
	return count > 0, nil
}

// FindAcceptedFriends returns the counterpart of every accepted request that
// involves the user, whichever side they were on.
func (r *friendRequestRepository) FindAcceptedFriends(userID uint) ([]domain.User, error) {
	var friends []domain.User

	err := r.db.Raw(`
		SELECT u.* FROM users u
		JOIN friend_requests fr ON u.user_id = fr.sender_id
		WHERE fr.receiver_id = ? AND fr.status = ?
		UNION
		SELECT u.* FROM users u
		JOIN friend_requests fr ON u.user_id = fr.receiver_id
		WHERE fr.sender_id = ? AND fr.status = ?`,
		userID, domain.FriendAccepted, userID, domain.FriendAccepted,
	).Scan(&friends).Error
	if err != nil {
		log.Printf("find accepted friends error: %v", err)
		return nil, err
	}

	return friends, nil
}
