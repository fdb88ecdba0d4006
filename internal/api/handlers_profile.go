package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/models"
	"github.com/mwhitlam/liftlog/internal/services"
)

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	var goal *models.Goal
	found, err := handler.goalService.GoalFor(user.Username)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return handler.renderError(c, fiber.StatusInternalServerError, "Failed to load your goal.")
	}
	if err == nil {
		goal = &found
	}

	if acceptsJSON(c) {
		payload := fiber.Map{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"birthday":   user.Birthday.Format("2006-01-02"),
		}
		if goal != nil {
			payload["goal"] = fiber.Map{
				"current_weight": goal.CurrentWeight,
				"target_weight":  goal.TargetWeight,
			}
		}
		return c.JSON(payload)
	}

	return handler.render(c, "profile", fiber.Map{
		"Title": "LiftLog | " + user.FirstName + " " + user.LastName,
		"User":  user,
		"Goal":  goal,
	})
}
