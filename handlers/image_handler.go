package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pixfold/pixfold/models"
)

// HandleImage renders the single-image view.
func HandleImage(c *fiber.Ctx) error {
	id := c.Params("id")

	image, err := store.GetFile(id)
	if err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			return sendNotFound(c)
		}
		return handleError(c, err)
	}

	return render(c, "image", "Image", fiber.Map{
		"Image": image,
	})
}

// HandleImageRaw serves the stored image bytes with the content type they
// were uploaded with. The image view embeds this route as its img src.
func HandleImageRaw(c *fiber.Ctx) error {
	id := c.Params("id")

	image, err := store.GetFile(id)
	if err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, image.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(image.Data)
}
