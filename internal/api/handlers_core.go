package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, ok := payload["CSRFToken"]; !ok {
		payload["CSRFToken"] = csrfToken(c)
	}
	if _, ok := payload["CurrentUser"]; !ok {
		if user, authed := currentUser(c); authed {
			payload["CurrentUser"] = user
		}
	}
	if _, ok := payload["CurrentPath"]; !ok {
		payload["CurrentPath"] = c.Path()
	}
	return payload
}

func (handler *Handler) renderError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	c.Status(status)
	return handler.render(c, "error", fiber.Map{
		"Title":   "LiftLog | Error",
		"Message": message,
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return handler.renderError(c, fiber.StatusNotFound, "Page not found.")
}
