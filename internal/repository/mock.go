package repository

import (
	"github.com/messageapps/message_service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	args := m.Called(user)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserById(userID uint) (*domain.User, error) {
	args := m.Called(userID)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshToken(token string) (*domain.User, error) {
	args := m.Called(token)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type MockFriendRequestRepository struct {
	mock.Mock
}

func (m *MockFriendRequestRepository) CreateRequest(req *domain.FriendRequest) (*domain.FriendRequest, error) {
	args := m.Called(req)
	if r, ok := args.Get(0).(*domain.FriendRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFriendRequestRepository) FindRequestById(requestID uint) (*domain.FriendRequest, error) {
	args := m.Called(requestID)
	if r, ok := args.Get(0).(*domain.FriendRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFriendRequestRepository) SaveRequest(req *domain.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockFriendRequestRepository) FindRequestsByReceiver(userID uint) ([]domain.FriendRequest, error) {
	args := m.Called(userID)
	if r, ok := args.Get(0).([]domain.FriendRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFriendRequestRepository) ExistsBySenderAndReceiver(senderID, receiverID uint) (bool, error) {
	args := m.Called(senderID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRequestRepository) FindAcceptedFriends(userID uint) ([]domain.User, error) {
	args := m.Called(userID)
	if u, ok := args.Get(0).([]domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateMessage(msg *domain.Message) (*domain.Message, error) {
	args := m.Called(msg)
	if r, ok := args.Get(0).(*domain.Message); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageRepository) FindChatMessages(userA, userB uint) ([]domain.Message, error) {
	args := m.Called(userA, userB)
	if r, ok := args.Get(0).([]domain.Message); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
