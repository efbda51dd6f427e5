package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/pixfold/pixfold/models"
)

// HandleAddFolderForm renders the create-folder form.
func HandleAddFolderForm(c *fiber.Ctx) error {
	return render(c, "add", "Add new folder", nil)
}

// HandleCreateFolder creates a folder from the submitted form and redirects
// to the homepage. Duplicate names are permitted.
func HandleCreateFolder(c *fiber.Ctx) error {
	folder := models.Folder{Name: c.FormValue("createFolderInput")}

	if err := folder.Validate(); err != nil {
		return render(c.Status(fiber.StatusBadRequest), "error", "Error", fiber.Map{
			"Message": err.Error(),
		})
	}

	if err := store.CreateFolder(folder); err != nil {
		return handleError(c, err)
	}

	log.Infof("%s has created folder %q", c.IP(), folder.Name)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// folderParam returns the :name route parameter with URL escapes resolved,
// so folder names containing spaces round-trip through links.
func folderParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// HandleFolder renders a folder view with the images it contains.
func HandleFolder(c *fiber.Ctx) error {
	name := folderParam(c)

	exists, err := store.FolderExists(name)
	if err != nil {
		return handleError(c, err)
	}
	if !exists {
		return sendNotFound(c)
	}

	images, err := store.GetFilesByFolder(name)
	if err != nil {
		return handleError(c, err)
	}

	return render(c, "folder", "Folder", fiber.Map{
		"FolderName": name,
		"Images":     images,
	})
}

// HandleDeleteFolderForm renders the delete-folder page listing all folders.
func HandleDeleteFolderForm(c *fiber.Ctx) error {
	folders, err := store.GetFolders()
	if err != nil {
		return handleError(c, err)
	}
	return render(c, "delete", "Delete", fiber.Map{
		"Folders": folders,
	})
}

// HandleDeleteFolder deletes a folder together with its images and redirects
// to the homepage. The cascade runs in a single transaction.
func HandleDeleteFolder(c *fiber.Ctx) error {
	name := folderParam(c)

	if err := store.DeleteFolder(name); err != nil {
		if errors.Is(err, models.ErrFolderNotFound) {
			return sendNotFound(c)
		}
		return handleError(c, err)
	}

	log.Infof("%s has deleted folder %q and its images", c.IP(), name)
	return c.Redirect("/", fiber.StatusSeeOther)
}
