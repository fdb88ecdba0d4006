package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/services"
)

func (handler *Handler) ShowGoalForm(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	// An existing goal is edited, not recreated.
	if _, err := handler.goalService.GoalFor(user.Username); err == nil {
		return c.Redirect("/user/"+user.Username+"/goals/update", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "goal_new", fiber.Map{
		"Title":     "LiftLog | Set Goals",
		"User":      user,
		"FormError": flash.FormError,
	})
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	currentWeight, targetWeight, err := parseGoalWeights(c)
	if err != nil {
		return handler.respondGoalError(c, fiber.StatusBadRequest, err.Error(), "/user/"+user.Username+"/goals")
	}

	_, err = handler.goalService.SetGoal(user.Username, currentWeight, targetWeight)
	if errors.Is(err, services.ErrValidation) {
		return handler.respondGoalError(c, fiber.StatusBadRequest, "weights must be positive", "/user/"+user.Username+"/goals")
	}
	if errors.Is(err, services.ErrGoalExists) {
		return handler.respondGoalError(c, fiber.StatusConflict, "goal already exists", "/user/"+user.Username+"/goals/update")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}

	return redirectOrJSON(c, "/user/"+user.Username)
}

func (handler *Handler) ShowGoalEditForm(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	goal, err := handler.goalService.GoalFor(user.Username)
	if errors.Is(err, services.ErrNotFound) {
		return c.Redirect("/user/"+user.Username+"/goals", fiber.StatusSeeOther)
	}
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, "Failed to load your goal.")
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "goal_edit", fiber.Map{
		"Title":     "LiftLog | Update Goals",
		"User":      user,
		"Goal":      goal,
		"FormError": flash.FormError,
	})
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	currentWeight, targetWeight, err := parseGoalWeights(c)
	if err != nil {
		return handler.respondGoalError(c, fiber.StatusBadRequest, err.Error(), "/user/"+user.Username+"/goals/update")
	}

	_, err = handler.goalService.UpdateGoal(user.Username, currentWeight, targetWeight)
	if errors.Is(err, services.ErrValidation) {
		return handler.respondGoalError(c, fiber.StatusBadRequest, "weights must be positive", "/user/"+user.Username+"/goals/update")
	}
	if errors.Is(err, services.ErrNotFound) {
		return handler.respondGoalError(c, fiber.StatusNotFound, "no goal to update", "/user/"+user.Username+"/goals")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}

	return redirectOrJSON(c, "/user/"+user.Username)
}

func (handler *Handler) respondGoalError(c *fiber.Ctx, status int, message string, redirectPath string) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{FormError: message})
	return c.Redirect(redirectPath, fiber.StatusSeeOther)
}
