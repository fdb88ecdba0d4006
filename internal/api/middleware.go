package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/models"
)

const (
	authCookieName  = "liftlog_auth"
	flashCookieName = "liftlog_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
