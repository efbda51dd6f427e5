package handlers

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pixfold/pixfold/config"
	"github.com/pixfold/pixfold/models"
	"github.com/pixfold/pixfold/staging"
)

// store is the persistence client handlers operate on. It is constructed in
// main and injected through Initialize.
var store *models.Store

// uploads is the staging directory for incoming files.
var uploads *staging.Staging

// serverVersion is shown in every rendered view.
var serverVersion string

// Initialize configures middleware, routes, and static assets, then serves
// until the listener fails. It blocks.
func Initialize(app *fiber.App, st *models.Store, up *staging.Staging, assets fs.FS, cfg *config.Config) error {
	log.Info("Initializing application routes and middleware")

	store = st
	uploads = up
	serverVersion = cfg.Server.Version

	// ========================================
	// Middleware Configuration
	// ========================================
	app.Use(recover.New())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(RequestIDMiddleware())

	// ========================================
	// Health and Metrics Endpoints
	// ========================================
	app.Get("/ready", HandleReady)
	app.Get("/health", HandleHealth)
	app.Get("/metrics", HandleMetrics)

	// ========================================
	// Static Assets
	// ========================================
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:       http.FS(assets),
		PathPrefix: "assets",
		MaxAge:     86400,
	}))

	// ========================================
	// Folder Routes
	// ========================================
	app.Get("/", HandleHome)
	app.Get("/add", HandleAddFolderForm)
	app.Post("/api/add", HandleCreateFolder)
	app.Get("/folder/:name", HandleFolder)
	app.Get("/delete", HandleDeleteFolderForm)
	app.Get("/delete/:name", HandleDeleteFolder)

	// ========================================
	// Image Routes
	// ========================================
	app.Get("/image/:id", HandleImage)
	app.Get("/image/:id/raw", HandleImageRaw)
	app.Get("/upload", HandleUploadForm)
	app.Get("/upload-error", HandleUploadError)
	app.Post("/api/upload", HandleUpload)

	// ========================================
	// Fallback Route
	// ========================================
	app.Use(HandleNotFound)

	// ========================================
	// Start Server
	// ========================================
	addr := cfg.Address()
	log.Infof("Listening on %s", addr)
	return app.Listen(addr)
}
