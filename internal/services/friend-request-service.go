package services

import (
	"time"

	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/repository"
)

type FriendRequestService interface {
	GetFriendRequestsForUser(userID uint) ([]dto.FriendRequestDto, error)
	SendFriendRequest(fromUserID, toUserID uint) bool
	AcceptFriendRequest(requestID uint) bool
	RejectFriendRequest(requestID uint) bool
	GetAcceptedFriends(userID uint) ([]dto.UserDto, error)
}

type friendRequestService struct {
	repo repository.FriendRequestRepository
}

func NewFriendRequestService(repo repository.FriendRequestRepository) FriendRequestService {
	return &friendRequestService{repo: repo}
}

func (s *friendRequestService) GetFriendRequestsForUser(userID uint) ([]dto.FriendRequestDto, error) {
	requests, err := s.repo.FindRequestsByReceiver(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToFriendRequestDtos(requests), nil
}

// SendFriendRequest refuses a second request for the same ordered
// sender/receiver pair, regardless of the existing request's status.
func (s *friendRequestService) SendFriendRequest(fromUserID, toUserID uint) bool {
	exists, err := s.repo.ExistsBySenderAndReceiver(fromUserID, toUserID)
	if err != nil || exists {
		return false
	}

	req := &domain.FriendRequest{
		SenderID:   fromUserID,
		ReceiverID: toUserID,
		Status:     domain.FriendPending,
		CreatedAt:  time.Now(),
	}

	if _, err := s.repo.CreateRequest(req); err != nil {
		return false
	}
	return true
}

// AcceptFriendRequest flips the request to Accepted. The current status is
// not checked first, so an already-rejected request can still be accepted.
func (s *friendRequestService) AcceptFriendRequest(requestID uint) bool {
	return s.setStatus(requestID, domain.FriendAccepted)
}

func (s *friendRequestService) RejectFriendRequest(requestID uint) bool {
	return s.setStatus(requestID, domain.FriendRejected)
}

func (s *friendRequestService) setStatus(requestID uint, status domain.FriendStatus) bool {
	req, err := s.repo.FindRequestById(requestID)
	if err != nil {
		return false
	}

	req.Status = status
	if err := s.repo.SaveRequest(req); err != nil {
		return false
	}
	return true
}

func (s *friendRequestService) GetAcceptedFriends(userID uint) ([]dto.UserDto, error) {
	friends, err := s.repo.FindAcceptedFriends(userID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDtos(friends), nil
}
