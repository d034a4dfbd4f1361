package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/messageapps/message_service/internal/dto"
	"github.com/messageapps/message_service/internal/services"
)

// PageHandler serves the static pages and the non-AJAX registration form.
type PageHandler struct {
	authSvc services.AuthService
	webDir  string
}

func NewPageHandler(authSvc services.AuthService, webDir string) *PageHandler {
	return &PageHandler{authSvc: authSvc, webDir: webDir}
}

func (h *PageHandler) SetupRoutes(app *fiber.App) {
	app.Get("/", h.Home)
	app.Get("/login", h.LoginPage)
	app.Get("/register", h.RegisterPage)
	app.Post("/register", h.RegisterForm)
}

func (h *PageHandler) Home(ctx *fiber.Ctx) error {
	return ctx.SendFile(h.webDir + "/home.html")
}

func (h *PageHandler) LoginPage(ctx *fiber.Ctx) error {
	return ctx.SendFile(h.webDir + "/login.html")
}

func (h *PageHandler) RegisterPage(ctx *fiber.Ctx) error {
	return ctx.SendFile(h.webDir + "/register.html")
}

// RegisterForm handles the urlencoded form submission and answers with a
// redirect rather than JSON.
func (h *PageHandler) RegisterForm(ctx *fiber.Ctx) error {
	input := dto.RegisterRequest{
		Username:     ctx.FormValue("username"),
		Email:        ctx.FormValue("email"),
		PasswordHash: ctx.FormValue("passwordHash"),
	}

	if err := h.authSvc.Register(input); err != nil {
		return ctx.Redirect("/register?error="+url.QueryEscape(err.Error()), fiber.StatusFound)
	}

	return ctx.Redirect("/login?registered=true", fiber.StatusFound)
}
