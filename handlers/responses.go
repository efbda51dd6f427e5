package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const appTitle = "Pixfold"

// render wraps c.Render, attaching the fields the base layout expects.
func render(c *fiber.Ctx, view, title string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["PageTitle"] = title + " :: " + appTitle
	bind["ServerVersion"] = serverVersion
	return c.Render(view, bind)
}

// handleError renders the generic error page for persistence and I/O
// failures. The request terminates with a message; the process stays up.
func handleError(c *fiber.Ctx, err error) error {
	log.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	return render(c.Status(fiber.StatusInternalServerError), "error", "Error", fiber.Map{
		"Message": err.Error(),
	})
}

// sendNotFound renders the 404 page with a matching status code.
func sendNotFound(c *fiber.Ctx) error {
	return render(c.Status(fiber.StatusNotFound), "404", "Error 404", nil)
}
