package services

import (
	"testing"
	"time"

	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSendFriendRequestDuplicatePair(t *testing.T) {
	repo := &repository.MockFriendRequestRepository{}
	repo.On("ExistsBySenderAndReceiver", uint(1), uint(2)).Return(true, nil)

	svc := NewFriendRequestService(repo)

	assert.False(t, svc.SendFriendRequest(1, 2))
	repo.AssertNotCalled(t, "CreateRequest", mock.Anything)
}

func TestSendFriendRequestCreatesPending(t *testing.T) {
	repo := &repository.MockFriendRequestRepository{}
	repo.On("ExistsBySenderAndReceiver", uint(1), uint(2)).Return(false, nil)

	var created *domain.FriendRequest
	repo.On("CreateRequest", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.FriendRequest)
	}).Return(&domain.FriendRequest{RequestID: 3}, nil)

	svc := NewFriendRequestService(repo)

	assert.True(t, svc.SendFriendRequest(1, 2))
	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.SenderID)
	assert.Equal(t, uint(2), created.ReceiverID)
	assert.Equal(t, domain.FriendPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAcceptAndRejectByRequestId(t *testing.T) {
	tcases := []struct {
		name       string
		current    domain.FriendStatus
		accept     bool
		wantStatus domain.FriendStatus
	}{
		{name: "accept pending", current: domain.FriendPending, accept: true, wantStatus: domain.FriendAccepted},
		{name: "reject pending", current: domain.FriendPending, accept: false, wantStatus: domain.FriendRejected},
		// Status is not checked before the transition.
		{name: "reject accepted", current: domain.FriendAccepted, accept: false, wantStatus: domain.FriendRejected},
		{name: "accept rejected", current: domain.FriendRejected, accept: true, wantStatus: domain.FriendAccepted},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			req := &domain.FriendRequest{RequestID: 9, SenderID: 1, ReceiverID: 2, Status: tc.current}

			repo := &repository.MockFriendRequestRepository{}
			repo.On("FindRequestById", uint(9)).Return(req, nil)
			repo.On("SaveRequest", req).Return(nil)

			svc := NewFriendRequestService(repo)

			var ok bool
			if tc.accept {
				ok = svc.AcceptFriendRequest(9)
			} else {
				ok = svc.RejectFriendRequest(9)
			}

			assert.True(t, ok)
			assert.Equal(t, tc.wantStatus, req.Status)
			repo.AssertCalled(t, "SaveRequest", req)
		})
	}
}

func TestAcceptMissingRequest(t *testing.T) {
	repo := &repository.MockFriendRequestRepository{}
	repo.On("FindRequestById", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewFriendRequestService(repo)

	assert.False(t, svc.AcceptFriendRequest(404))
	assert.False(t, svc.RejectFriendRequest(404))
	repo.AssertNotCalled(t, "SaveRequest", mock.Anything)
}

func TestGetFriendRequestsForUserReceiverOnly(t *testing.T) {
	now := time.Now()
	requests := []domain.FriendRequest{
		{
			RequestID: 1,
			Sender:    domain.User{UserID: 2, Username: "bob"},
			Receiver:  domain.User{UserID: 1, Username: "alice"},
			Status:    domain.FriendPending,
			CreatedAt: now,
		},
	}

	repo := &repository.MockFriendRequestRepository{}
	repo.On("FindRequestsByReceiver", uint(1)).Return(requests, nil)

	svc := NewFriendRequestService(repo)

	out, err := svc.GetFriendRequestsForUser(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "bob", out[0].Sender.Username)
	assert.Equal(t, "Pending", out[0].Status)
	repo.AssertCalled(t, "FindRequestsByReceiver", uint(1))
}

func TestGetAcceptedFriends(t *testing.T) {
	repo := &repository.MockFriendRequestRepository{}
	repo.On("FindAcceptedFriends", uint(1)).Return([]domain.User{
		{UserID: 2, Username: "bob", Email: "bob@example.com"},
		{UserID: 3, Username: "carol", Email: "carol@example.com"},
	}, nil)

	svc := NewFriendRequestService(repo)

	friends, err := svc.GetAcceptedFriends(1)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "bob", friends[0].Username)
	assert.Equal(t, "carol", friends[1].Username)
}
