package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"

	"github.com/pixfold/pixfold/models"
	"github.com/pixfold/pixfold/staging"
)

// newTestApp builds a fiber app rendering the real views, backed by a
// sqlmock store injected into the handler package.
func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	store = models.NewStore(mockDB)
	serverVersion = "test"

	st, err := staging.New(t.TempDir())
	assert.NoError(t, err)
	uploads = st

	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "base",
	})
	return app, mock
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(data)
}

// multipartUpload builds a multipart body with the upload form's field
// names, declaring contentType on the file part.
func multipartUpload(t *testing.T, folder, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	assert.NoError(t, writer.WriteField("folderInput", folder))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="fileInput"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
