package handlers

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/pixfold/pixfold/models"
)

// HandleUploadForm renders the upload form.
func HandleUploadForm(c *fiber.Ctx) error {
	return render(c, "upload", "Upload new photo", nil)
}

// HandleUploadError renders the upload page with an error message, the
// redirect target for uploads naming a folder that does not exist.
func HandleUploadError(c *fiber.Ctx) error {
	return render(c, "upload-error", "Upload new photo", nil)
}

// HandleUpload accepts a multipart image upload targeting an existing
// folder. The file is staged on disk first, then its bytes are copied into
// the database; the staged copy is removed on every exit path.
func HandleUpload(c *fiber.Ctx) error {
	folderName := c.FormValue("folderInput")

	file, err := c.FormFile("fileInput")
	if err != nil {
		log.Warnf("Upload without file field from %s: %v", c.IP(), err)
		return c.Redirect("/upload-error", fiber.StatusSeeOther)
	}

	stagedPath, err := uploads.Stage(file.Filename, func(dst string) error {
		return c.SaveFile(file, dst)
	})
	if err != nil {
		return handleError(c, err)
	}
	defer func() {
		if err := uploads.Remove(stagedPath); err != nil {
			log.Warnf("Failed to remove staged file %s: %v", stagedPath, err)
		}
	}()

	exists, err := store.FolderExists(folderName)
	if err != nil {
		return handleError(c, err)
	}
	if !exists {
		log.Warnf("Upload from %s rejected: folder %q does not exist", c.IP(), folderName)
		return c.Redirect("/upload-error", fiber.StatusSeeOther)
	}

	data, err := os.ReadFile(stagedPath)
	if err != nil {
		return handleError(c, err)
	}

	img := models.File{
		Folder:       folderName,
		OriginalName: file.Filename,
		ContentType:  detectContentType(file.Header.Get("Content-Type"), data),
		Data:         data,
	}
	if err := store.CreateFile(&img); err != nil {
		return handleError(c, err)
	}

	log.Infof("%s has uploaded %q to folder %q (%d bytes)", c.IP(), file.Filename, folderName, img.Size)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// detectContentType keeps the content type the client declared, sniffing the
// bytes only when the declaration is absent or generic.
func detectContentType(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(data)
}
