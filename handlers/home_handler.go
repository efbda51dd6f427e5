package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHome renders the homepage with the list of folders.
func HandleHome(c *fiber.Ctx) error {
	folders, err := store.GetFolders()
	if err != nil {
		return handleError(c, err)
	}
	return render(c, "home", "Home", fiber.Map{
		"Folders": folders,
	})
}

// HandleNotFound renders the not-found page for unrouted paths.
func HandleNotFound(c *fiber.Ctx) error {
	return sendNotFound(c)
}
