package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/domain"
	"github.com/messageapps/message_service/internal/repository"
	"github.com/messageapps/message_service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessagingApp(userRepo repository.UserRepository, friendRepo repository.FriendRequestRepository, msgRepo repository.MessageRepository) *fiber.App {
	friendSvc := services.NewFriendRequestService(friendRepo)
	messageSvc := services.NewMessageService(msgRepo, userRepo, nil)

	app := fiber.New()
	NewFriendRequestHandler(friendSvc).SetupRoutes(app)
	NewMessageHandler(messageSvc, friendSvc).SetupRoutes(app)
	return app
}

func testRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp
}

func decodeBool(t *testing.T, resp *http.Response) bool {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out bool
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestSendFriendRequestEndpoint(t *testing.T) {
	friendRepo := &repository.MockFriendRequestRepository{}
	friendRepo.On("ExistsBySenderAndReceiver", uint(1), uint(2)).Return(false, nil)
	friendRepo.On("CreateRequest", mock.Anything).Return(&domain.FriendRequest{RequestID: 1}, nil)
	friendRepo.On("ExistsBySenderAndReceiver", uint(1), uint(3)).Return(true, nil)

	app := newMessagingApp(&repository.MockUserRepository{}, friendRepo, &repository.MockMessageRepository{})

	fresh := testRequest(t, app, http.MethodPost, "/api/friend-requests/send?fromUserId=1&toUserId=2")
	assert.Equal(t, http.StatusOK, fresh.StatusCode)
	assert.True(t, decodeBool(t, fresh))

	dup := testRequest(t, app, http.MethodPost, "/api/friend-requests/send?fromUserId=1&toUserId=3")
	assert.False(t, decodeBool(t, dup))

	missing := testRequest(t, app, http.MethodPost, "/api/friend-requests/send?fromUserId=1")
	assert.False(t, decodeBool(t, missing))
}

func TestAcceptFriendRequestEndpoint(t *testing.T) {
	req := &domain.FriendRequest{RequestID: 9, Status: domain.FriendPending}

	friendRepo := &repository.MockFriendRequestRepository{}
	friendRepo.On("FindRequestById", uint(9)).Return(req, nil)
	friendRepo.On("SaveRequest", req).Return(nil)
	friendRepo.On("FindRequestById", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	app := newMessagingApp(&repository.MockUserRepository{}, friendRepo, &repository.MockMessageRepository{})

	accepted := testRequest(t, app, http.MethodPost, "/api/friend-requests/accept?requestId=9")
	assert.True(t, decodeBool(t, accepted))
	assert.Equal(t, domain.FriendAccepted, req.Status)

	missing := testRequest(t, app, http.MethodPost, "/api/friend-requests/reject?requestId=404")
	assert.False(t, decodeBool(t, missing))
}

func TestSendMessageEndpoint(t *testing.T) {
	userRepo := &repository.MockUserRepository{}
	userRepo.On("FindUserById", uint(1)).Return(&domain.User{UserID: 1}, nil)
	userRepo.On("FindUserById", uint(2)).Return(&domain.User{UserID: 2}, nil)
	userRepo.On("FindUserById", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	msgRepo := &repository.MockMessageRepository{}
	msgRepo.On("CreateMessage", mock.Anything).Return(&domain.Message{MessageID: 1}, nil)

	app := newMessagingApp(userRepo, &repository.MockFriendRequestRepository{}, msgRepo)

	sent := testRequest(t, app, http.MethodPost, "/api/messages/send?fromUserId=1&toUserId=2&content=hi")
	assert.True(t, decodeBool(t, sent))

	unknown := testRequest(t, app, http.MethodPost, "/api/messages/send?fromUserId=1&toUserId=99&content=hi")
	assert.False(t, decodeBool(t, unknown))
	msgRepo.AssertNumberOfCalls(t, "CreateMessage", 1)
}

func TestListFriendsEndpoint(t *testing.T) {
	friendRepo := &repository.MockFriendRequestRepository{}
	friendRepo.On("FindAcceptedFriends", uint(1)).Return([]domain.User{
		{UserID: 2, Username: "bob"},
	}, nil)

	app := newMessagingApp(&repository.MockUserRepository{}, friendRepo, &repository.MockMessageRepository{})

	resp := testRequest(t, app, http.MethodGet, "/api/friends/list/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var friends []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0]["username"])
}
