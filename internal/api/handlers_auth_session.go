package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := handler.parseRegistration(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "all fields are required", "/register")
	}

	user, err := handler.authService.Register(input)
	if errors.Is(err, services.ErrValidation) {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "all fields are required", "/register")
	}
	if errors.Is(err, services.ErrUsernameTaken) {
		return handler.respondAuthError(c, fiber.StatusConflict, "username already taken", "/register")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "username": user.Username})
	}
	return redirectOrJSON(c, "/user/"+user.Username)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseLogin(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid username/password", "/login")
	}

	// One generic message for unknown username and wrong password.
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid username/password", "/login")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/user/"+user.Username)
}

// Logout clears the session cookie. Safe to call without one.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string, redirectPath string) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{
		AuthError: message,
		Username:  c.FormValue("username"),
	})
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}
