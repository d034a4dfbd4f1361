package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/helper/utils"
	"github.com/messageapps/message_service/internal/services"
)

type FriendRequestHandler struct {
	svc services.FriendRequestService
}

func NewFriendRequestHandler(svc services.FriendRequestService) *FriendRequestHandler {
	return &FriendRequestHandler{svc: svc}
}

func (h *FriendRequestHandler) SetupRoutes(app *fiber.App) {
	requests := app.Group("/api/friend-requests")

	requests.Get("/:userId", h.GetFriendRequests)
	requests.Post("/send", h.SendFriendRequest)
	requests.Post("/accept", h.AcceptFriendRequest)
	requests.Post("/reject", h.RejectFriendRequest)
}

// GetFriendRequests lists requests where the user is the receiver. Outgoing
// requests are not part of this view.
func (h *FriendRequestHandler) GetFriendRequests(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	requests, err := h.svc.GetFriendRequestsForUser(uint(userID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list friend requests")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, requests)
}

func (h *FriendRequestHandler) SendFriendRequest(ctx *fiber.Ctx) error {
	fromUserID := ctx.QueryInt("fromUserId")
	toUserID := ctx.QueryInt("toUserId")
	if fromUserID <= 0 || toUserID <= 0 {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, false)
	}

	ok := h.svc.SendFriendRequest(uint(fromUserID), uint(toUserID))
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ok)
}

func (h *FriendRequestHandler) AcceptFriendRequest(ctx *fiber.Ctx) error {
	requestID := ctx.QueryInt("requestId")
	if requestID <= 0 {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, false)
	}

	ok := h.svc.AcceptFriendRequest(uint(requestID))
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ok)
}

func (h *FriendRequestHandler) RejectFriendRequest(ctx *fiber.Ctx) error {
	requestID := ctx.QueryInt("requestId")
	if requestID <= 0 {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, false)
	}

	ok := h.svc.RejectFriendRequest(uint(requestID))
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ok)
}
