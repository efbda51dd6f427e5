package main

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	"github.com/pixfold/pixfold/cmd"
	"github.com/pixfold/pixfold/config"
	"github.com/pixfold/pixfold/handlers"
	"github.com/pixfold/pixfold/models"
	"github.com/pixfold/pixfold/staging"
)

//go:embed views/*
var viewsfs embed.FS

//go:embed assets/*
var assetsfs embed.FS

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "pixfold",
		Short:         "Pixfold organizes uploaded images into named folders",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runServer()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("PIXFOLD_CONFIG"), "Path to the YAML settings file")

	root.AddCommand(
		cmd.NewVersionCmd(&configPath),
		cmd.NewFolderCmd(&configPath),
	)

	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func runServer() error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	setLogLevel(cfg.Logging.Level)

	log.Infof("Pixfold %s", cfg.Server.Version)
	log.Debugf("Using '%s' as the database location", cfg.Database.Path)
	log.Debugf("Using '%s' as the upload staging location", cfg.Staging.Directory)

	store, err := models.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}()

	uploads, err := staging.New(cfg.Staging.Directory)
	if err != nil {
		return err
	}

	maxAge, err := cfg.StagingMaxAge()
	if err != nil {
		return err
	}
	sweeper, err := staging.NewSweeper(uploads, cfg.Staging.SweepCron, maxAge)
	if err != nil {
		return fmt.Errorf("failed to schedule staging sweeper: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	viewsSub, err := fs.Sub(viewsfs, "views")
	if err != nil {
		return err
	}
	engine := html.NewFileSystem(http.FS(viewsSub), ".html")

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		ServerHeader:  "Pixfold",
		AppName:       fmt.Sprintf("Pixfold %s", cfg.Server.Version),
		Views:         engine,
		ViewsLayout:   "base",
		BodyLimit:     32 * 1024 * 1024,
	})

	return handlers.Initialize(app, store, uploads, assetsfs, cfg)
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}
