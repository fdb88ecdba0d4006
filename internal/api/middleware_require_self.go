package api

import (
	"github.com/gofiber/fiber/v2"
)

// RequireSelf rejects any request whose :username route parameter does
// not match the session identity. The rejection is an explicit 403 on
// every verb, never a redirect that implies success.
func (handler *Handler) RequireSelf(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if c.Params("username") != user.Username {
		if acceptsJSON(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return handler.renderError(c, fiber.StatusForbidden, "You can only manage your own account.")
	}
	return c.Next()
}
