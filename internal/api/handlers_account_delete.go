package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDeleteAccountPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return handler.render(c, "delete_account", fiber.Map{
		"Title": "LiftLog | Delete Account",
		"User":  user,
	})
}

// DeleteAccount removes the account and its goal record, then ends the
// session. RequireSelf has already checked ownership.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.authService.DeleteAccount(user.Username); err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, "Failed to delete the account.")
	}

	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login")
}
