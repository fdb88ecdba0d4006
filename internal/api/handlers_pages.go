package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowHomePage(c *fiber.Ctx) error {
	return handler.render(c, "home", fiber.Map{
		"Title": "LiftLog | Home",
	})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if redirected, err := handler.redirectAuthenticatedUser(c); redirected {
		return err
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":     "LiftLog | Log In",
		"AuthError": flash.AuthError,
		"Username":  flash.Username,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if redirected, err := handler.redirectAuthenticatedUser(c); redirected {
		return err
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":     "LiftLog | Register",
		"AuthError": flash.AuthError,
		"Username":  flash.Username,
	})
}

// Already-authenticated visitors of /login and /register land on their
// profile instead.
func (handler *Handler) redirectAuthenticatedUser(c *fiber.Ctx) (bool, error) {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return false, nil
	}
	return true, c.Redirect("/user/"+user.Username, fiber.StatusSeeOther)
}
