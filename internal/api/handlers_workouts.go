package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/models"
	"github.com/mwhitlam/liftlog/internal/services"
)

func (handler *Handler) ShowMuscleGroups(c *fiber.Ctx) error {
	groups := models.MuscleGroups()
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"muscle_groups": groups})
	}
	return handler.render(c, "muscles", fiber.Map{
		"Title":        "LiftLog | Workouts",
		"MuscleGroups": groups,
	})
}

// ShowMuscleWorkouts lists the catalog exercises for one muscle group
// together with the comments left on that workout. A catalog failure
// is a visible error page, never an empty exercise list.
func (handler *Handler) ShowMuscleWorkouts(c *fiber.Ctx) error {
	group, ok := models.MuscleGroupByKey(c.Params("group"))
	if !ok {
		return handler.renderError(c, fiber.StatusNotFound, "Unknown muscle group.")
	}

	exercises, err := handler.exercises.FetchExercises(c.UserContext(), group.WgerID)
	if err != nil {
		return handler.renderError(c, fiber.StatusBadGateway, "The exercise catalog is unavailable right now.")
	}

	comments, err := handler.commentService.CommentsForWorkout(group.Key)
	if err != nil {
		return handler.renderError(c, fiber.StatusInternalServerError, "Failed to load comments.")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"muscle_group": group,
			"exercises":    exercises,
			"comments":     comments,
		})
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "workout", fiber.Map{
		"Title":        "LiftLog | " + group.DisplayName,
		"MuscleGroup":  group,
		"Exercises":    exercises,
		"Comments":     comments,
		"CommentError": flash.CommentError,
	})
}

// PostComment attaches an anonymous comment to the workout and
// redirects back to the page it was posted from.
func (handler *Handler) PostComment(c *fiber.Ctx) error {
	group, ok := models.MuscleGroupByKey(c.Params("group"))
	if !ok {
		return handler.renderError(c, fiber.StatusNotFound, "Unknown muscle group.")
	}

	input, err := handler.parseComment(c, group.Key)
	if err != nil {
		return handler.respondCommentError(c, fiber.StatusBadRequest, "invalid comment", group.Key)
	}

	comment, err := handler.commentService.PostComment(input)
	if errors.Is(err, services.ErrValidation) {
		return handler.respondCommentError(c, fiber.StatusBadRequest, "title and content are required", group.Key)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save comment")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": comment.ID})
	}
	return c.Redirect("/muscle/"+group.Key, fiber.StatusSeeOther)
}

func (handler *Handler) respondCommentError(c *fiber.Ctx, status int, message string, groupKey string) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{CommentError: message})
	return c.Redirect("/muscle/"+groupKey, fiber.StatusSeeOther)
}
