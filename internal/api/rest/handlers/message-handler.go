package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/helper/utils"
	"github.com/messageapps/message_service/internal/services"
)

type MessageHandler struct {
	svc       services.MessageService
	friendSvc services.FriendRequestService
}

func NewMessageHandler(svc services.MessageService, friendSvc services.FriendRequestService) *MessageHandler {
	return &MessageHandler{svc: svc, friendSvc: friendSvc}
}

func (h *MessageHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/friends/list/:userId", h.GetFriends)
	api.Get("/messages/:fromUserId/:toUserId", h.GetMessages)
	api.Post("/messages/send", h.SendMessage)
}

// GetFriends lists the user's accepted friends as chat contacts.
func (h *MessageHandler) GetFriends(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	friends, err := h.friendSvc.GetAcceptedFriends(uint(userID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list friends")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, friends)
}

func (h *MessageHandler) GetMessages(ctx *fiber.Ctx) error {
	fromUserID, err := ctx.ParamsInt("fromUserId")
	if err != nil || fromUserID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}
	toUserID, err := ctx.ParamsInt("toUserId")
	if err != nil || toUserID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	messages, err := h.svc.GetChatMessages(uint(fromUserID), uint(toUserID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list messages")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, messages)
}

func (h *MessageHandler) SendMessage(ctx *fiber.Ctx) error {
	fromUserID := ctx.QueryInt("fromUserId")
	toUserID := ctx.QueryInt("toUserId")
	content := ctx.Query("content")
	if fromUserID <= 0 || toUserID <= 0 {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, false)
	}

	ok := h.svc.SendMessage(uint(fromUserID), uint(toUserID), content)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ok)
}
