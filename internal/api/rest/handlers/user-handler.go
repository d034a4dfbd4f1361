package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/helper/utils"
	"github.com/messageapps/message_service/internal/services"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	users.Get("/find", h.FindUser)
	users.Put("/:userId/status", h.SetStatus)
}

// FindUser resolves a username or an email to a user, returning null when
// neither matches.
func (h *UserHandler) FindUser(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	if query == "" {
		return ctx.Status(fiber.StatusOK).JSON(nil)
	}

	user, err := h.svc.FindUser(query)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to find user")
	}
	if user == nil {
		return ctx.Status(fiber.StatusOK).JSON(nil)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) SetStatus(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var requestBody dto.SetStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Status == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	if err := h.svc.SetStatus(uint(userID), requestBody.Status); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Status updated",
	})
}
