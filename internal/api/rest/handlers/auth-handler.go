package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/api/rest/middleware"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/helper/utils"
	"github.com/messageapps/message_service/internal/services"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/login", h.Login)
	auth.Post("/register", h.Register)
	auth.Post("/refresh", h.Refresh)

	protected := auth.Use(middleware.AuthMiddleware(h.svc))
	protected.Get("/validate", h.Validate)
	protected.Get("/me", h.Me)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	resp, err := h.svc.Login(requestBody.Username, requestBody.PasswordHash)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, services.ErrAuthentication.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if requestBody.Username == "" || requestBody.Email == "" || requestBody.PasswordHash == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Register(requestBody); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Registration failed")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Registration successful",
	})
}

func (h *AuthHandler) Refresh(ctx *fiber.Ctx) error {
	var requestBody dto.RefreshRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, services.ErrInvalidRefreshToken.Error())
	}

	resp, err := h.svc.RefreshSession(requestBody.RefreshToken)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Validate(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).SendString("Token is valid")
}

// Me returns the authenticated user, or null when the record has since
// disappeared.
func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.svc.CurrentUser(ctx.Get("Authorization"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, services.ErrInvalidToken.Error())
	}
	if user == nil {
		return ctx.Status(fiber.StatusOK).JSON(nil)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ToUserDto(user))
}
