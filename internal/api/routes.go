package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowHomePage)

	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.Logout)

	user := app.Group("/user/:username", handler.AuthRequired, handler.RequireSelf)
	user.Get("", handler.ShowProfile)
	user.Get("/delete", handler.ShowDeleteAccountPage)
	user.Post("/delete", handler.DeleteAccount)
	user.Get("/goals", handler.ShowGoalForm)
	user.Post("/goals", handler.CreateGoal)
	user.Get("/goals/update", handler.ShowGoalEditForm)
	user.Post("/goals/update", handler.UpdateGoal)

	app.Get("/workouts", handler.ShowMuscleGroups)
	app.Get("/muscle/:group", handler.ShowMuscleWorkouts)
	app.Post("/muscle/:group", handler.PostComment)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
